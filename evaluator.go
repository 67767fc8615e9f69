package foo

// Eval scans s from the beginning and dispatches each token in turn,
// implementing spec.md §4.3. It is re-entrant: user-defined words recurse
// into Eval with their own body string and a fresh cursor, and control
// words are handed the *same* string along with a mutable cursor into it.
func (in *Interp) Eval(s string) error {
	pos := 0
	for {
		skipSpace(s, &pos)
		if atEnd(s, pos) {
			return nil
		}
		if err := in.evalOne(s, &pos); err != nil {
			return err
		}
	}
}

// evalOne consumes exactly one token (or one control word's worth of input)
// starting at *pos.
func (in *Interp) evalOne(s string, pos *int) error {
	tok, err := next(s, pos, in.Line())
	if err != nil {
		return in.wrap(err)
	}

	switch tok.Kind {
	case TokEOF:
		return nil

	case TokInt:
		return in.wrap(in.Ints.Push(tok.Int))

	case TokFloat:
		return in.wrap(in.Floats.Push(tok.Float))

	case TokString:
		for _, b := range tok.Str {
			if err := in.Ints.Push(int64(b)); err != nil {
				return in.wrap(err)
			}
		}
		return in.wrap(in.Ints.Push(0))

	case TokIdent:
		return in.dispatch(tok.Ident, s, pos)

	default:
		return nil
	}
}

// dispatch looks up name and runs it according to its DictEntry kind, per
// the table in spec.md §4.3.
func (in *Interp) dispatch(name string, s string, pos *int) error {
	entry, ok := in.Dict.Lookup(name)
	if !ok {
		return in.wrap(newErr(KindUndefinedWord, in.Line(), "`"+name+"`"))
	}

	switch entry.Kind {
	case KindIntVariable:
		return in.wrap(in.Ints.Push(int64(entry.Slot)))

	case KindFloatVariable:
		// A float variable addressed without `f@`/`f!` still only has one
		// natural representation: its slot index, pushed on the integer
		// stack like any other variable word (spec.md §4.3 "Variable" row).
		return in.wrap(in.Ints.Push(int64(entry.Slot)))

	case KindModule:
		return in.wrap(in.Ints.Push(int64(entry.Index)))

	case KindUserDefined:
		if err := in.Eval(entry.Body); err != nil {
			return err
		}
		return nil

	case KindPrimitive:
		return in.wrap(entry.Prim(in))

	case KindControl:
		return in.wrap(entry.Ctl(in, s, pos))

	default:
		return in.wrap(newErr(KindSyntax, in.Line(), "word `"+name+"` has no runnable kind"))
	}
}
