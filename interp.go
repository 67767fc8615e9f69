package foo

import (
	"bufio"
	"fmt"

	"github.com/coccusq/foo/internal/flushio"
	"github.com/coccusq/foo/internal/lineio"
)

// Default capacities per spec.md §3/§5.
const (
	DefaultIntStackCap  = 65536
	DefaultFloatStackCap = 65536
	DefaultLoopStackCap = 64
	DefaultIntVarCap    = 4096
	DefaultFloatVarCap  = 4096
	DefaultWordMax      = 64
	DefaultExprMax      = 4096
)

// Mode governs the halt/continue policy of spec.md §4.3 and §7.
type Mode int

const (
	Interactive Mode = iota
	NonInteractive
)

// Interp is the single, explicitly-threaded interpreter state (spec.md §9
// Design Notes: "keep a single state object threaded explicitly through
// every operation; avoid process-wide singletons").
type Interp struct {
	Dict *Dictionary

	Ints   *Stack[int64]
	Floats *Stack[float64]
	Loop   *Stack[int]

	in     lineio.Reader
	out    flushio.WriteFlusher
	errOut flushio.WriteFlusher
	stdin  *bufio.Reader // source for geti/getf/getc, distinct from the script reader

	mode    Mode
	running bool

	wordMax int
	exprMax int

	modulePath []string // directories searched for `# name` imports
	loadedPath map[string]bool

	logf func(mess string, args ...interface{})
}

// Line returns the current source line number of the active input.
func (in *Interp) Line() int { return in.in.Location().Line }

// Running reports whether the interpreter has not yet been told to stop
// (via `bye` or a fatal error in non-interactive mode).
func (in *Interp) Running() bool { return in.running }

// Mode returns the interpreter's current interactive/non-interactive mode.
func (in *Interp) Mode() Mode { return in.mode }

// SetMode overrides the mode; used by the module loader, which always runs
// non-interactively regardless of the caller's mode (spec.md §4.6), saving
// and restoring the caller's mode around the load.
func (in *Interp) SetMode(m Mode) Mode {
	old := in.mode
	in.mode = m
	return old
}

func (in *Interp) logTrace(mess string, args ...interface{}) {
	if in.logf != nil {
		in.logf(mess, args...)
	}
}

// notice writes an interactive-mode informational message (redefinition
// announcements, "already loaded", division-by-zero recovery) straight to
// the interpreter's output stream, the same place ordinary `.`/`.s` output
// goes, per spec.md §3/§4.6/§7.
func (in *Interp) notice(format string, args ...interface{}) {
	fmt.Fprintf(in.out, format+"\n", args...)
}

// reportErr writes an error message to the error stream, per spec.md §7
// ("emitted to standard error with the current line number").
func (in *Interp) reportErr(format string, args ...interface{}) {
	fmt.Fprintf(in.errOut, format+"\n", args...)
}
