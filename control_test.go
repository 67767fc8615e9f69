package foo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIfElseThen(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	require.NoError(t, in.Eval("1 if 11 . else 22 . then"))
	assert.Equal(t, "11\n", out.String())

	out.Reset()
	require.NoError(t, in.Eval("0 if 11 . else 22 . then"))
	assert.Equal(t, "22\n", out.String())
}

func TestBeginUntilCountsDown(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	require.NoError(t, in.Compile(": countdown var n begin n @ . n -- n @ 0 == until ;"))
	require.NoError(t, in.Eval("3 countdown"))
	assert.Equal(t, "3\n2\n1\n", out.String())
}

func TestVarFetchStoreIncrement(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	require.NoError(t, in.Eval("5 var x x @ ."))
	assert.Equal(t, "5\n", out.String())

	out.Reset()
	require.NoError(t, in.Eval("x ++ x @ ."))
	assert.Equal(t, "6\n", out.String())
}

func TestFvarFetchStore(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	require.NoError(t, in.Eval("2.5 fvar y y f@ f."))
	assert.Equal(t, "2.500000\n", out.String())
}
