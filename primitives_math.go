package foo

import "math"

// fmod is the shared remainder function behind `f%`, named to match the
// word rather than Go's math.Mod.
func fmod(a, b float64) float64 { return math.Mod(a, b) }

func floatUnary(in *Interp, fn func(float64) float64) error {
	v, err := in.Floats.Pop()
	if err != nil {
		return err
	}
	return in.Floats.Push(fn(v))
}

func primSqrt(in *Interp) error { return floatUnary(in, math.Sqrt) }
func primSin(in *Interp) error  { return floatUnary(in, math.Sin) }
func primCos(in *Interp) error  { return floatUnary(in, math.Cos) }
func primTan(in *Interp) error  { return floatUnary(in, math.Tan) }
func primCeil(in *Interp) error { return floatUnary(in, math.Ceil) }
func primFloor(in *Interp) error { return floatUnary(in, math.Floor) }
func primFabs(in *Interp) error { return floatUnary(in, math.Abs) }
func primLog(in *Interp) error  { return floatUnary(in, math.Log) }
func primLog10(in *Interp) error { return floatUnary(in, math.Log10) }

func primPow(in *Interp) error {
	a, b, err := in.pop2Float()
	if err != nil {
		return err
	}
	return in.Floats.Push(math.Pow(a, b))
}

// primF2I implements `f2i`: pop a float, truncate toward zero, push an int.
func primF2I(in *Interp) error {
	v, err := in.Floats.Pop()
	if err != nil {
		return err
	}
	return in.Ints.Push(int64(v))
}

// primI2F implements `i2f`: pop an int, widen to float, push a float.
func primI2F(in *Interp) error {
	v, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	return in.Floats.Push(float64(v))
}
