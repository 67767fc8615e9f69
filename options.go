package foo

import (
	"bufio"
	"io"

	"github.com/coccusq/foo/internal/flushio"
	"github.com/coccusq/foo/internal/lineio"
)

// Option configures an Interp at construction time, following the teacher's
// functional-options pattern (jcorbin/gothird's VMOption).
type Option interface{ apply(in *Interp) }

type optionFunc func(in *Interp)

func (f optionFunc) apply(in *Interp) { f(in) }

// Options combines any number of Option values into one, flattening nested
// Options and dropping nils, matching the teacher's VMOptions helper.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	return res
}

type options []Option

func (opts options) apply(in *Interp) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(in)
		}
	}
}

// WithInput queues r as the next input stream to read lines from.
func WithInput(name string, r io.Reader) Option {
	return optionFunc(func(in *Interp) {
		in.in.Push(lineio.NamedReader(name, r))
	})
}

// WithOutput sets the interpreter's output stream.
func WithOutput(w io.Writer) Option {
	return optionFunc(func(in *Interp) {
		in.out = flushio.NewWriteFlusher(w)
	})
}

// WithErrorOutput sets the interpreter's error stream (spec.md §7: errors
// are "emitted to standard error with the current line number").
func WithErrorOutput(w io.Writer) Option {
	return optionFunc(func(in *Interp) {
		in.errOut = flushio.NewWriteFlusher(w)
	})
}

// WithStdin sets the source read by `geti`/`getf`/`getc`, independent of the
// script reader that WithInput feeds.
func WithStdin(r io.Reader) Option {
	return optionFunc(func(in *Interp) { in.stdin = bufio.NewReader(r) })
}

// WithMode sets the initial interactive/non-interactive mode.
func WithMode(m Mode) Option {
	return optionFunc(func(in *Interp) { in.mode = m })
}

// WithCapacities overrides the fixed stack/variable capacities of
// spec.md §3/§5. Zero values keep the default.
type Capacities struct {
	IntStack   int
	FloatStack int
	LoopStack  int
	IntVars    int
	FloatVars  int
	WordMax    int
	ExprMax    int
}

func WithCapacities(c Capacities) Option {
	return optionFunc(func(in *Interp) {
		if c.IntStack > 0 {
			in.Ints = NewStack[int64](c.IntStack)
		}
		if c.FloatStack > 0 {
			in.Floats = NewStack[float64](c.FloatStack)
		}
		if c.LoopStack > 0 {
			in.Loop = NewStack[int](c.LoopStack)
		}
		if c.WordMax > 0 {
			in.wordMax = c.WordMax
		}
		if c.ExprMax > 0 {
			in.exprMax = c.ExprMax
		}
		intVarCap, floatVarCap := in.Dict.intVarCap, in.Dict.floatVarCap
		if c.IntVars > 0 {
			intVarCap = c.IntVars
		}
		if c.FloatVars > 0 {
			floatVarCap = c.FloatVars
		}
		in.Dict.intVarCap, in.Dict.floatVarCap = intVarCap, floatVarCap
	})
}

// WithModulePath sets the directories searched, in order, for `# name`
// module imports.
func WithModulePath(dirs ...string) Option {
	return optionFunc(func(in *Interp) { in.modulePath = dirs })
}

// WithTraceLogf installs a leveled trace sink (the teacher's internal/logio
// facility, wired up by cmd/foo's --trace flag).
func WithTraceLogf(logf func(mess string, args ...interface{})) Option {
	return optionFunc(func(in *Interp) { in.logf = logf })
}
