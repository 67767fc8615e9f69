package foo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack[int64](2)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	assert.ErrorIs(t, s.Push(3), ErrStackOverflow)

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	v, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	_, err = s.Pop()
	assert.ErrorIs(t, err, ErrStackUnderflow)
}

func TestStackPick(t *testing.T) {
	s := NewStack[int64](8)
	require.NoError(t, s.Push(10))
	require.NoError(t, s.Push(20))
	require.NoError(t, s.Push(30))

	v, err := s.Pick(0)
	require.NoError(t, err)
	assert.Equal(t, int64(30), v)

	v, err = s.Pick(2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), v)

	_, err = s.Pick(3)
	assert.ErrorIs(t, err, ErrStackUnderflow)

	require.NoError(t, s.SetPick(1, 99))
	assert.Equal(t, []int64{10, 99, 30}, s.Values())
}

func TestStackTopDoesNotPop(t *testing.T) {
	s := NewStack[int64](4)
	require.NoError(t, s.Push(7))
	v, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
	assert.Equal(t, 1, s.Len())
}
