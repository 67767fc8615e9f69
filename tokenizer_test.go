package foo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextClassifiesLiterals(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want Token
	}{
		{"int", "42", Token{Kind: TokInt, Int: 42}},
		{"negative int", "-7", Token{Kind: TokInt, Int: -7}},
		{"float", "3.25", Token{Kind: TokFloat, Float: 3.25}},
		{"char", "'a'", Token{Kind: TokInt, Int: int64('a')}},
		{"ident", "dup", Token{Kind: TokIdent, Ident: "dup"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos := 0
			tok, err := next(c.src, &pos, 1)
			require.NoError(t, err)
			assert.Equal(t, c.want.Kind, tok.Kind)
			switch tok.Kind {
			case TokInt:
				assert.Equal(t, c.want.Int, tok.Int)
			case TokFloat:
				assert.Equal(t, c.want.Float, tok.Float)
			case TokIdent:
				assert.Equal(t, c.want.Ident, tok.Ident)
			}
			assert.Equal(t, len(c.src), pos)
		})
	}
}

func TestNextString(t *testing.T) {
	pos := 0
	tok, err := next(`"hi"`, &pos, 1)
	require.NoError(t, err)
	require.Equal(t, TokString, tok.Kind)
	assert.Equal(t, []byte("hi"), tok.Str)
}

func TestNextUnterminatedChar(t *testing.T) {
	pos := 0
	_, err := next("'ax", &pos, 3)
	require.Error(t, err)
	fe, ok := err.(*FooError)
	require.True(t, ok)
	assert.Equal(t, KindUnterminatedChar, fe.Kind)
	assert.Equal(t, 3, fe.Line)
}
