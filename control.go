package foo

// scanMatch advances i (a local cursor copy, not *pos) past tokens in s
// until it finds, at nesting depth 1, either "then" (always stops, the skip
// is done) or, when stopOnElse is true, "else" (stops there so the caller
// can resume from the else-branch). Nested `if`s increment depth; `then`
// decrements it. This single scanner implements both `if`'s and `else`'s
// skip-ahead behavior from spec.md §4.4.
func scanMatch(s string, start int, stopOnElse bool) int {
	depth := 1
	i := start
	for depth > 0 {
		skipSpace(s, &i)
		if atEnd(s, i) {
			return i
		}
		wordStart := i
		for i < len(s) && !isSpace(s[i]) {
			i++
		}
		word := s[wordStart:i]
		switch word {
		case "if":
			depth++
		case "then":
			depth--
		case "else":
			if stopOnElse && depth == 1 {
				return i
			}
		}
	}
	return i
}

// ctlIf implements `if`: pop the top of the integer stack as a boolean; if
// truthy, fall through (the evaluator continues right after `if`); if
// falsy, skip to the matching `else` (if any, stopping just past it) or
// `then`.
func ctlIf(in *Interp, s string, pos *int) error {
	cond, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	if cond != 0 {
		return nil
	}
	*pos = scanMatch(s, *pos, true)
	return nil
}

// ctlElse implements `else`, reached only by falling through a truthy `if`
// branch: skip forward to the matching `then`.
func ctlElse(in *Interp, s string, pos *int) error {
	*pos = scanMatch(s, *pos, false)
	return nil
}

// ctlThen is a runtime no-op; it exists only as a landing point for the
// skip-scanner in ctlIf/ctlElse.
func ctlThen(in *Interp, s string, pos *int) error {
	return nil
}

// ctlBegin pushes the current cursor position onto the loop stack, marking
// the top of a begin/until loop.
func ctlBegin(in *Interp, s string, pos *int) error {
	if err := in.Loop.Push(*pos); err != nil {
		return ErrLoopOverflow
	}
	return nil
}

// ctlUntil pops the integer top as a boolean: if falsy, rewind the cursor to
// the position saved by the matching `begin` (leaving the loop-stack entry
// in place for the next iteration); if truthy, the loop is done, so the
// loop-stack entry is popped and execution falls through.
func ctlUntil(in *Interp, s string, pos *int) error {
	top, err := in.Loop.Top()
	if err != nil {
		return ErrLoopUnderflow
	}
	cond, err := in.Ints.Pop()
	if err != nil {
		return err
	}
	if cond == 0 {
		*pos = top
		return nil
	}
	_, err = in.Loop.Pop()
	return err
}

// scanWordName reads one whitespace-delimited token starting at *pos,
// skipping any leading spaces first, used by `var`/`fvar`/`show` to consume
// the name that follows them in the source string.
func scanWordName(s string, pos *int) string {
	skipSpace(s, pos)
	start := *pos
	for *pos < len(s) && !isSpace(s[*pos]) {
		*pos++
	}
	return s[start:*pos]
}

// ctlVar implements `var`: read the next token as a name, then create or
// overwrite an integer variable slot, initialized from the integer stack
// top (popped if available, otherwise 0), per spec.md §4.4.
func ctlVar(in *Interp, s string, pos *int) error {
	name := scanWordName(s, pos)
	var val int64
	if in.Ints.Len() > 0 {
		v, _ := in.Ints.Pop()
		val = v
	}
	return in.Dict.AddIntVar(name, val)
}

// ctlFVar is ctlVar's float-stack counterpart, per spec.md §4.4.
func ctlFVar(in *Interp, s string, pos *int) error {
	name := scanWordName(s, pos)
	var val float64
	if in.Floats.Len() > 0 {
		v, _ := in.Floats.Pop()
		val = v
	}
	return in.Dict.AddFloatVar(name, val)
}
