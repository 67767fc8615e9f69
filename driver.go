package foo

import (
	"io"

	"github.com/coccusq/foo/internal/flushio"
)

// drive implements the top-level loop of spec.md §4.8: read a line; if it
// begins with `:` compile it, if with `#` import it, otherwise evaluate it.
// Stops on EOF or when running is cleared (by `bye`, or by a fatal error in
// non-interactive mode).
func (in *Interp) drive() error {
	flush := flushio.WriteFlushers(in.out, in.errOut)

	defer func() {
		if f := flush.Flush(); f != nil && in.logf != nil {
			in.logTrace("flush error: %v", f)
		}
	}()

	for in.running {
		// flush before every blocking read (teacher pattern:
		// jcorbin/gothird core.go readRune) so an interactive user sees a
		// line's output before being asked for the next one.
		if f := flush.Flush(); f != nil {
			return f
		}

		line, err := in.in.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		var lineErr error
		switch firstNonSpace(line) {
		case ':':
			lineErr = in.Compile(line)
		case '#':
			lineErr = in.Import(line)
		default:
			lineErr = in.Eval(line)
		}

		if lineErr != nil {
			in.reportError(lineErr)
		}
	}
	return nil
}

func firstNonSpace(s string) byte {
	pos := 0
	skipSpace(s, &pos)
	if pos >= len(s) {
		return 0
	}
	return s[pos]
}

// reportError implements the halt policy of spec.md §7: in non-interactive
// mode nearly any error halts the driver; in interactive mode the REPL
// stays alive except for the kinds flagged Fatal() (loop-stack and
// variable-limit errors).
func (in *Interp) reportError(err error) {
	fe, ok := err.(*FooError)
	if !ok {
		fe = newErr(KindSyntax, in.Line(), err.Error())
	}
	in.reportErr("%s", fe.Error())

	if in.mode == NonInteractive || fe.Kind.Fatal() {
		in.running = false
	} else {
		// interactive mode keeps the REPL alive; the data/float stacks are
		// left as-is per spec.md §4.3 ("the default after an error is to
		// return without touching the cursor further") except where a
		// specific primitive (division) defines its own recovery.
	}
}
