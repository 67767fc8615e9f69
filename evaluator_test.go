package foo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterp(out *bytes.Buffer) *Interp {
	return New(WithOutput(out), WithErrorOutput(out))
}

func TestEvalArithmetic(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	require.NoError(t, in.Eval("1 2 + ."))
	assert.Equal(t, "3\n", out.String())
}

func TestEvalStringLiteralPushesBytesAndTerminator(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	require.NoError(t, in.Eval(`"hi"`))
	assert.Equal(t, []int64{int64('h'), int64('i'), 0}, in.Ints.Values())
}

func TestEvalUndefinedWord(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	err := in.Eval("frobnicate")
	require.Error(t, err)
	fe, ok := err.(*FooError)
	require.True(t, ok)
	assert.Equal(t, KindUndefinedWord, fe.Kind)
}

func TestEvalUserDefinedWord(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	require.NoError(t, in.Compile(": sq dup * ;"))
	require.NoError(t, in.Eval("5 sq ."))
	assert.Equal(t, "25\n", out.String())
}
