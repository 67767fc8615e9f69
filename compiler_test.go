package foo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileDefinesWord(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	require.NoError(t, in.Compile(": double dup + ;"))
	e, ok := in.Dict.Lookup("double")
	require.True(t, ok)
	assert.Equal(t, KindUserDefined, e.Kind)
	assert.Equal(t, "dup + ", e.Body)
}

func TestCompileMissingSemicolon(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	err := in.Compile(": oops dup +")
	require.Error(t, err)
	fe, ok := err.(*FooError)
	require.True(t, ok)
	assert.Equal(t, KindSyntax, fe.Kind)
}

func TestCompileRedefinitionAnnouncesInInteractiveMode(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	require.NoError(t, in.Compile(": sq dup * ;"))
	require.NoError(t, in.Compile(": sq dup dup * * ;"))
	assert.Contains(t, out.String(), "Redefined word `sq`")
}

func TestCompileCannotRedefinePrimitive(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	err := in.Compile(": + 1 1 ;")
	assert.Error(t, err)
}

func TestCompileWordNameTooLong(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out), WithErrorOutput(&out), WithCapacities(Capacities{WordMax: 4}))
	err := in.Compile(": reallylongname dup ;")
	require.Error(t, err)
	fe, ok := err.(*FooError)
	require.True(t, ok)
	assert.Equal(t, KindSyntax, fe.Kind)
}
