package foo

import (
	"bufio"
	"io"
	"strings"

	"github.com/coccusq/foo/internal/flushio"
	"github.com/coccusq/foo/internal/panicerr"
)

// New builds an Interp with the given options applied over sane defaults,
// installs the built-in word set, and leaves it ready for Run.
func New(opts ...Option) *Interp {
	in := &Interp{
		Dict:    NewDictionary(DefaultIntVarCap, DefaultFloatVarCap),
		Ints:    NewStack[int64](DefaultIntStackCap),
		Floats:  NewStack[float64](DefaultFloatStackCap),
		Loop:    NewStack[int](DefaultLoopStackCap),
		out:     flushio.NewWriteFlusher(io.Discard),
		errOut:  flushio.NewWriteFlusher(io.Discard),
		stdin:   bufio.NewReader(strings.NewReader("")),
		mode:    Interactive,
		running: true,
		wordMax: DefaultWordMax,
		exprMax: DefaultExprMax,
	}
	Options(opts...).apply(in)
	installBuiltins(in.Dict)
	return in
}

// Run drives the top-level loop (spec.md §4.8) to completion, isolating it
// in its own goroutine so that an internal bug (a Go panic, or a runtime
// Goexit from a misbehaving test double) surfaces as a reported error
// instead of taking the whole process down with it (teacher pattern:
// internal/panicerr.Recover).
func (in *Interp) Run() error {
	return panicerr.Recover("foo", func() error {
		return in.drive()
	})
}
