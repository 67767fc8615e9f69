package foo

// EntryKind tags the payload of a DictEntry. spec.md §9 flags the source's
// single `var_index` field as ambiguous between int and float variables;
// this repo resolves that Open Question as two disjoint kinds rather than
// one kind with a shared index space.
type EntryKind int

const (
	KindPrimitive EntryKind = iota
	KindControl
	KindUserDefined
	KindIntVariable
	KindFloatVariable
	KindModule
)

func (k EntryKind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindControl:
		return "control"
	case KindUserDefined:
		return "user-defined"
	case KindIntVariable:
		return "int variable"
	case KindFloatVariable:
		return "float variable"
	case KindModule:
		return "module"
	default:
		return "unknown"
	}
}

// Primitive is a built-in word with no access to the token cursor.
type Primitive func(in *Interp) error

// Control is a built-in word that receives the enclosing source string and a
// mutable cursor into it, and may advance the cursor itself (if/else/then,
// begin/until, var/fvar, show).
type Control func(in *Interp, src string, pos *int) error

// DictEntry is the dictionary's tagged-union entry, matching the
// {name, kind, payload} shape of spec.md §3.
type DictEntry struct {
	Name  string
	Kind  EntryKind
	Prim  Primitive
	Ctl   Control
	Body  string // UserDefined
	Slot  int    // IntVariable / FloatVariable
	Index int    // Module dedup marker
}

// Dictionary is the ordered, append-only table of known words plus the flat
// integer and float variable arrays it addresses into (spec.md §2.2, §3).
type Dictionary struct {
	entries []DictEntry

	intVars   []int64
	floatVars []float64

	intVarCap   int
	floatVarCap int
}

// NewDictionary returns an empty dictionary whose variable arrays are capped
// at the given sizes (spec.md §5: "fixed capacities... part of the
// specification").
func NewDictionary(intVarCap, floatVarCap int) *Dictionary {
	return &Dictionary{intVarCap: intVarCap, floatVarCap: floatVarCap}
}

// Lookup performs the first-match linear scan described in spec.md §4.2.
func (d *Dictionary) Lookup(name string) (*DictEntry, bool) {
	for i := range d.entries {
		if d.entries[i].Name == name {
			return &d.entries[i], true
		}
	}
	return nil, false
}

// AddPrimitive appends a new primitive word. Redefining a primitive is not
// supported (spec.md §3 Invariants); it is the caller's job (the built-in
// initializer) never to do so twice.
func (d *Dictionary) AddPrimitive(name string, fn Primitive) {
	d.entries = append(d.entries, DictEntry{Name: name, Kind: KindPrimitive, Prim: fn})
}

// AddControl appends a new control word.
func (d *Dictionary) AddControl(name string, fn Control) {
	d.entries = append(d.entries, DictEntry{Name: name, Kind: KindControl, Ctl: fn})
}

// DefineResult reports whether Define created a new word or updated an
// existing one, so the caller can announce redefinition per spec.md §3.
type DefineResult int

const (
	Defined DefineResult = iota
	Redefined
)

// Define installs or updates a user-defined word's body. Redefining an
// existing user-defined word updates it in place, preserving its position
// (spec.md §3 Invariants); defining over a primitive or control word is
// rejected.
func (d *Dictionary) Define(name, body string) (DefineResult, error) {
	if e, ok := d.Lookup(name); ok {
		switch e.Kind {
		case KindUserDefined:
			e.Body = body
			return Redefined, nil
		case KindPrimitive, KindControl:
			return Defined, newErr(KindSyntax, 0, "cannot redefine built-in word `"+name+"`")
		default:
			// falls through: a variable/module name being redefined as a word
			// is allowed; the old payload is abandoned, same as the variable
			// adders below.
			e.Kind = KindUserDefined
			e.Body = body
			return Redefined, nil
		}
	}
	d.entries = append(d.entries, DictEntry{Name: name, Kind: KindUserDefined, Body: body})
	return Defined, nil
}

// AddIntVar creates or reuses an integer variable slot for name, per the
// "variable adders" rule in spec.md §4.2: if name already names an
// IntVariable its slot is reused (and overwritten); otherwise a fresh slot
// is allocated and any previous payload is abandoned.
func (d *Dictionary) AddIntVar(name string, val int64) error {
	if e, ok := d.Lookup(name); ok && e.Kind == KindIntVariable {
		d.intVars[e.Slot] = val
		return nil
	}
	if len(d.intVars) >= d.intVarCap {
		return ErrVariableLimit
	}
	slot := len(d.intVars)
	d.intVars = append(d.intVars, val)
	if e, ok := d.Lookup(name); ok {
		e.Kind = KindIntVariable
		e.Slot = slot
		return nil
	}
	d.entries = append(d.entries, DictEntry{Name: name, Kind: KindIntVariable, Slot: slot})
	return nil
}

// AddFloatVar is AddIntVar's counterpart for the float variable array.
func (d *Dictionary) AddFloatVar(name string, val float64) error {
	if e, ok := d.Lookup(name); ok && e.Kind == KindFloatVariable {
		d.floatVars[e.Slot] = val
		return nil
	}
	if len(d.floatVars) >= d.floatVarCap {
		return ErrVariableLimit
	}
	slot := len(d.floatVars)
	d.floatVars = append(d.floatVars, val)
	if e, ok := d.Lookup(name); ok {
		e.Kind = KindFloatVariable
		e.Slot = slot
		return nil
	}
	d.entries = append(d.entries, DictEntry{Name: name, Kind: KindFloatVariable, Slot: slot})
	return nil
}

// AddModule registers a module marker entry so future `#name` imports of the
// same module short-circuit (spec.md §4.6). Returns false, adding nothing,
// if name is already in the dictionary under any kind (caller should report
// "already loaded").
func (d *Dictionary) AddModule(name string) bool {
	if _, ok := d.Lookup(name); ok {
		return false
	}
	d.entries = append(d.entries, DictEntry{Name: name, Kind: KindModule, Index: len(d.entries)})
	return true
}

// IntVar reads an integer variable slot.
func (d *Dictionary) IntVar(slot int) int64 { return d.intVars[slot] }

// SetIntVar writes an integer variable slot.
func (d *Dictionary) SetIntVar(slot int, val int64) { d.intVars[slot] = val }

// FloatVar reads a float variable slot.
func (d *Dictionary) FloatVar(slot int) float64 { return d.floatVars[slot] }

// SetFloatVar writes a float variable slot.
func (d *Dictionary) SetFloatVar(slot int, val float64) { d.floatVars[slot] = val }

// IntVarCount reports how many integer variable slots are allocated, the
// bound a bare slot index popped off the stack must respect before `@`/`!`
// index into intVars.
func (d *Dictionary) IntVarCount() int { return len(d.intVars) }

// FloatVarCount is IntVarCount's counterpart for the float variable array.
func (d *Dictionary) FloatVarCount() int { return len(d.floatVars) }

// Entries returns the dictionary in insertion order, for `show`.
func (d *Dictionary) Entries() []DictEntry { return d.entries }
