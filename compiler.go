package foo

// Compile handles a source line whose first non-whitespace byte is `:`
// (spec.md §4.5): skip the `:`, skip spaces, read the word name up to the
// next space, skip spaces, then copy the remainder up to `;` verbatim as
// the body. The body is stored unparsed; it is parsed fresh on every
// invocation, and multi-line definitions are not supported.
func (in *Interp) Compile(line string) error {
	pos := 0
	skipSpace(line, &pos)
	if pos >= len(line) || line[pos] != ':' {
		return newErr(KindSyntax, in.Line(), "not a definition line")
	}
	pos++
	skipSpace(line, &pos)

	name := scanWordName(line, &pos)
	if name == "" {
		return newErr(KindSyntax, in.Line(), "definition is missing a word name")
	}
	if len(name) > in.wordMax {
		return newErr(KindSyntax, in.Line(), "word name `"+name+"` exceeds the maximum word length")
	}
	skipSpace(line, &pos)

	semi := pos
	for semi < len(line) && line[semi] != ';' {
		semi++
	}
	if semi >= len(line) {
		return newErr(KindSyntax, in.Line(), "definition of `"+name+"` is missing a terminating `;`")
	}
	body := line[pos:semi]
	if len(body) > in.exprMax {
		return newErr(KindSyntax, in.Line(), "definition of `"+name+"` exceeds the maximum expression length")
	}

	result, err := in.Dict.Define(name, body)
	if err != nil {
		return in.wrap(err)
	}
	if result == Redefined && in.mode == Interactive {
		in.notice("[INFO] Redefined word `%s` at line %d", name, in.Line())
	}
	return nil
}
