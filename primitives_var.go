package foo

// Integer and float variables occupy disjoint slot spaces (dictionary.go's
// resolution of spec.md §9's Open Question), but a bare slot index, once
// pushed by a variable word and popped back off the integer stack, carries
// no tag identifying which array it addresses. As in the flat-memory
// original, `@`/`!` and `f@`/`f!` simply trust that the program indexes the
// array matching the variable word it named; the only check made here is
// the slot bound itself, reported as a type mismatch since an out-of-range
// index is, in practice, almost always a value that was never a variable
// slot for this array to begin with.

func primAt(in *Interp) error {
	slot, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	if slot < 0 || int(slot) >= in.Dict.IntVarCount() {
		return ErrTypeMismatch
	}
	return in.Ints.Push(in.Dict.IntVar(int(slot)))
}

func primBang(in *Interp) error {
	slot, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	val, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	if slot < 0 || int(slot) >= in.Dict.IntVarCount() {
		return ErrTypeMismatch
	}
	in.Dict.SetIntVar(int(slot), val)
	return nil
}

// primQuery implements `?`: fetch and print in one step.
func primQuery(in *Interp) error {
	if err := primAt(in); err != nil {
		return err
	}
	return primDot(in)
}

func primIncr(in *Interp) error {
	slot, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	if slot < 0 || int(slot) >= in.Dict.IntVarCount() {
		return ErrTypeMismatch
	}
	in.Dict.SetIntVar(int(slot), in.Dict.IntVar(int(slot))+1)
	return nil
}

func primDecr(in *Interp) error {
	slot, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	if slot < 0 || int(slot) >= in.Dict.IntVarCount() {
		return ErrTypeMismatch
	}
	in.Dict.SetIntVar(int(slot), in.Dict.IntVar(int(slot))-1)
	return nil
}

// intCompound implements the `+! -! *! /!` family: pop a slot and an
// operand, and combine the operand into the variable in place using op.
func (in *Interp) intCompound(op func(cur, operand int64) (int64, error)) error {
	slot, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	operand, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	if slot < 0 || int(slot) >= in.Dict.IntVarCount() {
		return ErrTypeMismatch
	}
	next, err := op(in.Dict.IntVar(int(slot)), operand)
	if err != nil {
		return err
	}
	in.Dict.SetIntVar(int(slot), next)
	return nil
}

func primPlusBang(in *Interp) error {
	return in.intCompound(func(cur, operand int64) (int64, error) { return cur + operand, nil })
}

func primMinusBang(in *Interp) error {
	return in.intCompound(func(cur, operand int64) (int64, error) { return cur - operand, nil })
}

func primStarBang(in *Interp) error {
	return in.intCompound(func(cur, operand int64) (int64, error) { return cur * operand, nil })
}

func primSlashBang(in *Interp) error {
	return in.intCompound(func(cur, operand int64) (int64, error) {
		if operand == 0 {
			return 0, ErrDivisionByZero
		}
		return cur / operand, nil
	})
}

func primFAt(in *Interp) error {
	slot, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	if slot < 0 || int(slot) >= in.Dict.FloatVarCount() {
		return ErrTypeMismatch
	}
	return in.Floats.Push(in.Dict.FloatVar(int(slot)))
}

func primFBang(in *Interp) error {
	slot, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	val, err := in.Floats.Pop()
	if err != nil {
		return err
	}
	if slot < 0 || int(slot) >= in.Dict.FloatVarCount() {
		return ErrTypeMismatch
	}
	in.Dict.SetFloatVar(int(slot), val)
	return nil
}

func primFQuery(in *Interp) error {
	if err := primFAt(in); err != nil {
		return err
	}
	return primFDot(in)
}

// floatCompound is intCompound's float counterpart for `f+! f-! f*! f/!`.
func (in *Interp) floatCompound(op func(cur, operand float64) (float64, error)) error {
	slot, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	operand, err := in.Floats.Pop()
	if err != nil {
		return err
	}
	if slot < 0 || int(slot) >= in.Dict.FloatVarCount() {
		return ErrTypeMismatch
	}
	next, err := op(in.Dict.FloatVar(int(slot)), operand)
	if err != nil {
		return err
	}
	in.Dict.SetFloatVar(int(slot), next)
	return nil
}

func primFPlusBang(in *Interp) error {
	return in.floatCompound(func(cur, operand float64) (float64, error) { return cur + operand, nil })
}

func primFMinusBang(in *Interp) error {
	return in.floatCompound(func(cur, operand float64) (float64, error) { return cur - operand, nil })
}

func primFStarBang(in *Interp) error {
	return in.floatCompound(func(cur, operand float64) (float64, error) { return cur * operand, nil })
}

func primFSlashBang(in *Interp) error {
	return in.floatCompound(func(cur, operand float64) (float64, error) {
		if operand == 0 {
			return 0, ErrDivisionByZero
		}
		return cur / operand, nil
	})
}
