package foo

import (
	"os"
	"path/filepath"

	"github.com/coccusq/foo/internal/lineio"
)

// Import handles a source line whose first byte is `#` (spec.md §4.6): take
// the next token, suffix it with ".foo", and either short-circuit if
// already loaded, or open the file and compile every `:`-line in it.
// Module loading always runs in non-interactive mode regardless of the
// caller's mode; the caller's mode and line counter are saved and restored
// around the load, so that a module importing a module cannot leak its
// reset back out (spec.md §9 Design Notes).
func (in *Interp) Import(line string) error {
	pos := 0
	skipSpace(line, &pos)
	if pos >= len(line) || line[pos] != '#' {
		return newErr(KindSyntax, in.Line(), "not an import line")
	}
	pos++
	name := scanWordName(line, &pos)
	if name == "" {
		return newErr(KindSyntax, in.Line(), "import is missing a module name")
	}
	moduleName := name + ".foo"

	if !in.Dict.AddModule(moduleName) {
		if in.mode == Interactive {
			in.notice("[INFO] module `%s` already loaded", moduleName)
		}
		return nil
	}

	path, f, err := in.openModule(moduleName)
	if err != nil {
		return newErr(KindModuleOpenFailure, in.Line(), moduleName)
	}
	defer f.Close()

	savedMode := in.SetMode(NonInteractive)
	savedReader := in.in
	defer func() {
		in.mode = savedMode
		in.in = savedReader
	}()

	in.in = lineio.Reader{}
	in.in.Push(lineio.NamedReader(path, f))

	for {
		moduleLine, rerr := in.in.ReadLine()
		if rerr != nil {
			break
		}
		p := 0
		skipSpace(moduleLine, &p)
		if p < len(moduleLine) && moduleLine[p] == ':' {
			if cerr := in.Compile(moduleLine); cerr != nil {
				return cerr
			}
		}
		// non-colon lines in module files are ignored, per spec.md §4.6
	}
	return nil
}

func (in *Interp) openModule(name string) (string, *os.File, error) {
	dirs := in.modulePath
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	var lastErr error
	for _, dir := range dirs {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err == nil {
			return path, f, nil
		}
		lastErr = err
	}
	return "", nil, lastErr
}
