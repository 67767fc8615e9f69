package foo

// installBuiltins registers the full built-in word set of spec.md §6 into a
// freshly constructed dictionary. Order follows the grouping of the spec's
// own built-in word table.
func installBuiltins(d *Dictionary) {
	// integer arithmetic
	d.AddPrimitive("+", primAdd)
	d.AddPrimitive("-", primSub)
	d.AddPrimitive("*", primMul)
	d.AddPrimitive("/", primDiv)
	d.AddPrimitive("%", primMod)

	// float arithmetic
	d.AddPrimitive("f+", primFAdd)
	d.AddPrimitive("f-", primFSub)
	d.AddPrimitive("f*", primFMul)
	d.AddPrimitive("f/", primFDiv)
	d.AddPrimitive("f%", primFMod)

	// integer comparison
	d.AddPrimitive(">", primGt)
	d.AddPrimitive("<", primLt)
	d.AddPrimitive(">=", primGe)
	d.AddPrimitive("<=", primLe)
	d.AddPrimitive("==", primEq)
	d.AddPrimitive("~=", primNe)

	// float comparison
	d.AddPrimitive("f>", primFGt)
	d.AddPrimitive("f<", primFLt)
	d.AddPrimitive("f>=", primFGe)
	d.AddPrimitive("f<=", primFLe)
	d.AddPrimitive("f==", primFEq)
	d.AddPrimitive("f~=", primFNe)

	// integer stack ops
	d.AddPrimitive(".", primDot)
	d.AddPrimitive(".x", primDotX)
	d.AddPrimitive(".s", primDotS)
	d.AddPrimitive("dup", primDup)
	d.AddPrimitive("swp", primSwp)
	d.AddPrimitive("pick", primPick)
	d.AddPrimitive("!pick", primSetPick)
	d.AddPrimitive("depth", primDepth)

	// float stack ops
	d.AddPrimitive("f.", primFDot)
	d.AddPrimitive("f.x", primFDotX)
	d.AddPrimitive("f.s", primFDotS)
	d.AddPrimitive("fdup", primFDup)
	d.AddPrimitive("fswp", primFSwp)
	d.AddPrimitive("fpick", primFPick)
	d.AddPrimitive("f!pick", primFSetPick)
	d.AddPrimitive("fdepth", primFDepth)

	// control
	d.AddControl("if", ctlIf)
	d.AddControl("else", ctlElse)
	d.AddControl("then", ctlThen)
	d.AddControl("begin", ctlBegin)
	d.AddControl("until", ctlUntil)

	// integer variables
	d.AddControl("var", ctlVar)
	d.AddPrimitive("@", primAt)
	d.AddPrimitive("!", primBang)
	d.AddPrimitive("?", primQuery)
	d.AddPrimitive("++", primIncr)
	d.AddPrimitive("--", primDecr)
	d.AddPrimitive("+!", primPlusBang)
	d.AddPrimitive("-!", primMinusBang)
	d.AddPrimitive("*!", primStarBang)
	d.AddPrimitive("/!", primSlashBang)

	// float variables
	d.AddControl("fvar", ctlFVar)
	d.AddPrimitive("f@", primFAt)
	d.AddPrimitive("f!", primFBang)
	d.AddPrimitive("f?", primFQuery)
	d.AddPrimitive("f+!", primFPlusBang)
	d.AddPrimitive("f-!", primFMinusBang)
	d.AddPrimitive("f*!", primFStarBang)
	d.AddPrimitive("f/!", primFSlashBang)

	// conversion
	d.AddPrimitive("f2i", primF2I)
	d.AddPrimitive("i2f", primI2F)

	// I/O
	d.AddPrimitive("emit", primEmit)
	d.AddPrimitive("<cr>", primCR)
	d.AddPrimitive("<space>", primSpace)
	d.AddPrimitive("<tab>", primTab)
	d.AddPrimitive("geti", primGetI)
	d.AddPrimitive("getf", primGetF)
	d.AddPrimitive("getc", primGetC)

	// math
	d.AddPrimitive("sqrt", primSqrt)
	d.AddPrimitive("sin", primSin)
	d.AddPrimitive("cos", primCos)
	d.AddPrimitive("tan", primTan)
	d.AddPrimitive("ceil", primCeil)
	d.AddPrimitive("floor", primFloor)
	d.AddPrimitive("fabs", primFabs)
	d.AddPrimitive("log", primLog)
	d.AddPrimitive("log10", primLog10)
	d.AddPrimitive("pow", primPow)

	// introspection
	d.AddControl("show", ctlShow)

	// termination
	d.AddPrimitive("bye", primBye)
}
