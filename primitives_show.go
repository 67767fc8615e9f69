package foo

import "fmt"

// ctlShow implements the `show` family of spec.md §4.4 introspection words.
// It is a control word because it must consume the selector token (`*`,
// `*p`, `*f`, `*m`, `*v`, or a bare word name) itself from the source
// cursor, the same way `var`/`fvar` consume the name that follows them.
func ctlShow(in *Interp, s string, pos *int) error {
	switch sel := scanWordName(s, pos); sel {
	case "*":
		for _, e := range in.Dict.Entries() {
			in.showEntry(e)
		}
	case "*p":
		in.showKind(KindPrimitive)
	case "*f":
		in.showKind(KindUserDefined)
	case "*m":
		in.showKind(KindModule)
	case "*v":
		for _, e := range in.Dict.Entries() {
			if e.Kind == KindIntVariable || e.Kind == KindFloatVariable {
				in.showEntry(e)
			}
		}
	default:
		e, ok := in.Dict.Lookup(sel)
		if !ok {
			return newErr(KindUndefinedWord, in.Line(), "`"+sel+"`")
		}
		in.showEntry(*e)
	}
	return nil
}

func (in *Interp) showKind(kind EntryKind) {
	for _, e := range in.Dict.Entries() {
		if e.Kind == kind {
			in.showEntry(e)
		}
	}
}

func (in *Interp) showEntry(e DictEntry) {
	switch e.Kind {
	case KindUserDefined:
		fmt.Fprintf(in.out, "%s: %s\n", e.Name, e.Body)
	case KindIntVariable:
		fmt.Fprintf(in.out, "%s: var[%d] = %d\n", e.Name, e.Slot, in.Dict.IntVar(e.Slot))
	case KindFloatVariable:
		fmt.Fprintf(in.out, "%s: fvar[%d] = %f\n", e.Name, e.Slot, in.Dict.FloatVar(e.Slot))
	case KindModule:
		fmt.Fprintf(in.out, "%s: module\n", e.Name)
	default:
		fmt.Fprintf(in.out, "%s: %s\n", e.Name, e.Kind)
	}
}

// primBye implements `bye`: clear the running flag so the driver loop exits
// after the current line.
func primBye(in *Interp) error {
	in.running = false
	return nil
}
