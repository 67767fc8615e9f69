package foo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryDefineAndRedefine(t *testing.T) {
	d := NewDictionary(4, 4)

	res, err := d.Define("sq", "dup *")
	require.NoError(t, err)
	assert.Equal(t, Defined, res)

	res, err = d.Define("sq", "dup dup * *")
	require.NoError(t, err)
	assert.Equal(t, Redefined, res)

	e, ok := d.Lookup("sq")
	require.True(t, ok)
	assert.Equal(t, "dup dup * *", e.Body)
}

func TestDictionaryCannotRedefinePrimitive(t *testing.T) {
	d := NewDictionary(4, 4)
	d.AddPrimitive("+", primAdd)
	_, err := d.Define("+", "1 1")
	assert.Error(t, err)
}

func TestDictionaryIntVarSlotReuse(t *testing.T) {
	d := NewDictionary(2, 2)
	require.NoError(t, d.AddIntVar("x", 1))
	e, ok := d.Lookup("x")
	require.True(t, ok)
	firstSlot := e.Slot

	require.NoError(t, d.AddIntVar("x", 2))
	e, ok = d.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, firstSlot, e.Slot)
	assert.Equal(t, int64(2), d.IntVar(e.Slot))
}

func TestDictionaryIntVarLimit(t *testing.T) {
	d := NewDictionary(1, 1)
	require.NoError(t, d.AddIntVar("a", 0))
	assert.ErrorIs(t, d.AddIntVar("b", 0), ErrVariableLimit)
}

func TestDictionaryModuleDedup(t *testing.T) {
	d := NewDictionary(4, 4)
	assert.True(t, d.AddModule("geometry.foo"))
	assert.False(t, d.AddModule("geometry.foo"))
}
