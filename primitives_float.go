package foo

import "fmt"

func (in *Interp) pop2Float() (a, b float64, err error) {
	if b, err = in.Floats.Pop(); err != nil {
		return 0, 0, err
	}
	if a, err = in.Floats.Pop(); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func primFAdd(in *Interp) error {
	a, b, err := in.pop2Float()
	if err != nil {
		return err
	}
	return in.Floats.Push(a + b)
}

func primFSub(in *Interp) error {
	a, b, err := in.pop2Float()
	if err != nil {
		return err
	}
	return in.Floats.Push(a - b)
}

func primFMul(in *Interp) error {
	a, b, err := in.pop2Float()
	if err != nil {
		return err
	}
	return in.Floats.Push(a * b)
}

func primFDiv(in *Interp) error {
	a, b, err := in.pop2Float()
	if err != nil {
		return err
	}
	if b == 0 {
		return in.divideByZeroFloat(b)
	}
	return in.Floats.Push(a / b)
}

// primFMod implements `f%` as fmod-style floating remainder, matching the
// language's `%` word family rather than Go's `math.Mod` naming.
func primFMod(in *Interp) error {
	a, b, err := in.pop2Float()
	if err != nil {
		return err
	}
	if b == 0 {
		return in.divideByZeroFloat(b)
	}
	return in.Floats.Push(fmod(a, b))
}

func (in *Interp) divideByZeroFloat(b float64) error {
	if in.mode == Interactive {
		if err := in.Floats.Push(b); err != nil {
			return err
		}
		in.notice("Traceback...")
		return nil
	}
	return ErrDivisionByZero
}

func primFGt(in *Interp) error {
	a, b, err := in.pop2Float()
	if err != nil {
		return err
	}
	return in.Ints.Push(boolInt(a > b))
}

func primFLt(in *Interp) error {
	a, b, err := in.pop2Float()
	if err != nil {
		return err
	}
	return in.Ints.Push(boolInt(a < b))
}

func primFGe(in *Interp) error {
	a, b, err := in.pop2Float()
	if err != nil {
		return err
	}
	return in.Ints.Push(boolInt(a >= b))
}

func primFLe(in *Interp) error {
	a, b, err := in.pop2Float()
	if err != nil {
		return err
	}
	return in.Ints.Push(boolInt(a <= b))
}

func primFEq(in *Interp) error {
	a, b, err := in.pop2Float()
	if err != nil {
		return err
	}
	return in.Ints.Push(boolInt(a == b))
}

func primFNe(in *Interp) error {
	a, b, err := in.pop2Float()
	if err != nil {
		return err
	}
	return in.Ints.Push(boolInt(a != b))
}

func primFDot(in *Interp) error {
	v, err := in.Floats.Pop()
	if err != nil {
		return err
	}
	fmt.Fprintf(in.out, "%f\n", v)
	return nil
}

func primFDotX(in *Interp) error {
	_, err := in.Floats.Pop()
	return err
}

func primFDotS(in *Interp) error {
	vals := in.Floats.Values()
	fmt.Fprintf(in.out, "<%d> ", len(vals))
	for _, v := range vals {
		fmt.Fprintf(in.out, "%f ", v)
	}
	fmt.Fprintln(in.out)
	return nil
}

func primFDup(in *Interp) error {
	v, err := in.Floats.Top()
	if err != nil {
		return err
	}
	return in.Floats.Push(v)
}

func primFSwp(in *Interp) error {
	a, b, err := in.pop2Float()
	if err != nil {
		return err
	}
	if err := in.Floats.Push(b); err != nil {
		return err
	}
	return in.Floats.Push(a)
}

func primFPick(in *Interp) error {
	i, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	v, err := in.Floats.Pick(int(i))
	if err != nil {
		return err
	}
	return in.Floats.Push(v)
}

func primFSetPick(in *Interp) error {
	i, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	v, err := in.Floats.Pop()
	if err != nil {
		return err
	}
	return in.Floats.SetPick(int(i), v)
}

func primFDepth(in *Interp) error {
	return in.Ints.Push(int64(in.Floats.Len()))
}
