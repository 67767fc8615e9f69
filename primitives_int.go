package foo

import "fmt"

// pop2Int pops b then a (a was pushed first), the standard order for binary
// stack operators.
func (in *Interp) pop2Int() (a, b int64, err error) {
	if b, err = in.Ints.Pop(); err != nil {
		return 0, 0, err
	}
	if a, err = in.Ints.Pop(); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func primAdd(in *Interp) error {
	a, b, err := in.pop2Int()
	if err != nil {
		return err
	}
	return in.Ints.Push(a + b)
}

func primSub(in *Interp) error {
	a, b, err := in.pop2Int()
	if err != nil {
		return err
	}
	return in.Ints.Push(a - b)
}

func primMul(in *Interp) error {
	a, b, err := in.pop2Int()
	if err != nil {
		return err
	}
	return in.Ints.Push(a * b)
}

// primDiv and primMod implement the interactive recovery behavior of
// spec.md §7: on division by zero in interactive mode, the divisor is pushed
// back and a traceback notice is printed instead of halting; in
// non-interactive mode nothing is pushed back and ErrDivisionByZero is
// returned.
func primDiv(in *Interp) error {
	a, b, err := in.pop2Int()
	if err != nil {
		return err
	}
	if b == 0 {
		return in.divideByZero(b)
	}
	return in.Ints.Push(a / b)
}

func primMod(in *Interp) error {
	a, b, err := in.pop2Int()
	if err != nil {
		return err
	}
	if b == 0 {
		return in.divideByZero(b)
	}
	return in.Ints.Push(a % b)
}

func (in *Interp) divideByZero(b int64) error {
	if in.mode == Interactive {
		if err := in.Ints.Push(b); err != nil {
			return err
		}
		in.notice("Traceback...")
		return nil
	}
	return ErrDivisionByZero
}

func primGt(in *Interp) error {
	a, b, err := in.pop2Int()
	if err != nil {
		return err
	}
	return in.Ints.Push(boolInt(a > b))
}

func primLt(in *Interp) error {
	a, b, err := in.pop2Int()
	if err != nil {
		return err
	}
	return in.Ints.Push(boolInt(a < b))
}

func primGe(in *Interp) error {
	a, b, err := in.pop2Int()
	if err != nil {
		return err
	}
	return in.Ints.Push(boolInt(a >= b))
}

func primLe(in *Interp) error {
	a, b, err := in.pop2Int()
	if err != nil {
		return err
	}
	return in.Ints.Push(boolInt(a <= b))
}

func primEq(in *Interp) error {
	a, b, err := in.pop2Int()
	if err != nil {
		return err
	}
	return in.Ints.Push(boolInt(a == b))
}

func primNe(in *Interp) error {
	a, b, err := in.pop2Int()
	if err != nil {
		return err
	}
	return in.Ints.Push(boolInt(a != b))
}

// primDot implements `.`: pop and print, followed by a newline.
func primDot(in *Interp) error {
	v, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	fmt.Fprintf(in.out, "%d\n", v)
	return nil
}

// primDotX implements `.x`: pop silently, no output.
func primDotX(in *Interp) error {
	_, err := in.Ints.Pop()
	return err
}

// primDotS implements `.s`: print the stack depth and contents without
// consuming it, `<size> v0 v1 ... vn`.
func primDotS(in *Interp) error {
	vals := in.Ints.Values()
	fmt.Fprintf(in.out, "<%d> ", len(vals))
	for _, v := range vals {
		fmt.Fprintf(in.out, "%d ", v)
	}
	fmt.Fprintln(in.out)
	return nil
}

func primDup(in *Interp) error {
	v, err := in.Ints.Top()
	if err != nil {
		return err
	}
	return in.Ints.Push(v)
}

// primSwp implements `swp`, an involution on the top two stack elements.
func primSwp(in *Interp) error {
	a, b, err := in.pop2Int()
	if err != nil {
		return err
	}
	if err := in.Ints.Push(b); err != nil {
		return err
	}
	return in.Ints.Push(a)
}

// primPick implements `pick`: pop an index and push a copy of the element
// that many positions from the top.
func primPick(in *Interp) error {
	i, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	v, err := in.Ints.Pick(int(i))
	if err != nil {
		return err
	}
	return in.Ints.Push(v)
}

// primSetPick implements `!pick`: pop an index and a value, and overwrite
// the stack element that many positions from the (post-pop) top.
func primSetPick(in *Interp) error {
	i, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	v, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	return in.Ints.SetPick(int(i), v)
}

func primDepth(in *Interp) error {
	return in.Ints.Push(int64(in.Ints.Len()))
}
