package lineio_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coccusq/foo/internal/lineio"
)

func TestReadLine(t *testing.T) {
	var lr lineio.Reader
	lr.Push(lineio.NamedReader("t", strings.NewReader("1 2 +\n: sq dup * ;\nhi \\ a comment\nbye\n")))

	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "1 2 +", line)

	line, err = lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, ": sq dup * ;", line)

	line, err = lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hi ", line)

	line, err = lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "bye", line)

	_, err = lr.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLineQueue(t *testing.T) {
	var lr lineio.Reader
	lr.Push(lineio.NamedReader("a", strings.NewReader("one")))
	lr.Push(lineio.NamedReader("b", strings.NewReader("two\n")))

	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "one", line)

	line, err = lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "two", line)

	_, err = lr.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLineCommentEndsAtNewline(t *testing.T) {
	var lr lineio.Reader
	lr.Push(lineio.NamedReader("t", strings.NewReader("a \\ dropped\nb\n")))

	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "a ", line)

	line, err = lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "b", line)
}
