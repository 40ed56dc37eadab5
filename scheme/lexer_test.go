package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenize(t *testing.T, source string) []token {
	tok := NewTokenizer(source)
	var toks []token
	for !tok.AtEnd() {
		toks = append(toks, tok.Peek())
		tok.Advance()
	}
	return toks
}

func TestTokenizerLiterals(t *testing.T) {
	tests := []struct {
		in   string
		want []token
	}{
		{"4", []token{{typ: tokConst, num: 4}}},
		{"+4", []token{{typ: tokConst, num: 4}}},
		{"-4", []token{{typ: tokConst, num: -4}}},
		{"+", []token{{typ: tokSym, text: "+"}}},
		{"-", []token{{typ: tokSym, text: "-"}}},
		{"#t", []token{{typ: tokBool, b: true}}},
		{"#f", []token{{typ: tokBool, b: false}}},
		{"foo?", []token{{typ: tokSym, text: "foo?"}}},
		{"list-ref", []token{{typ: tokSym, text: "list-ref"}}},
		{"'", []token{{typ: tokQuote}}},
		{"(", []token{{typ: tokLParen}}},
		{")", []token{{typ: tokRParen}}},
		{".", []token{{typ: tokDot}}},
		{"(+ 1 2)", []token{
			{typ: tokLParen}, {typ: tokSym, text: "+"}, {typ: tokConst, num: 1},
			{typ: tokConst, num: 2}, {typ: tokRParen},
		}},
	}
	for _, test := range tests {
		got := tokenize(t, test.in)
		assert.Equal(t, test.want, got, test.in)
	}
}

func TestTokenizerSignDisambiguation(t *testing.T) {
	got := tokenize(t, "(- 3 -2 +2)")
	want := []token{
		{typ: tokLParen}, {typ: tokSym, text: "-"}, {typ: tokConst, num: 3},
		{typ: tokConst, num: -2}, {typ: tokConst, num: 2}, {typ: tokRParen},
	}
	assert.Equal(t, want, got)
}

func TestTokenizerUnrecognizedChar(t *testing.T) {
	assert.Panics(t, func() { tokenize(t, "@") })
}

func TestTokenizerPeekIsIdempotent(t *testing.T) {
	tok := NewTokenizer("42")
	first := tok.Peek()
	second := tok.Peek()
	assert.Equal(t, first, second)
	tok.Advance()
	assert.True(t, tok.AtEnd())
}
