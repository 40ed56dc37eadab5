package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parse(source string) *Value {
	return NewParser(NewTokenizer(source)).ParseExpr()
}

func TestParserAtomsAndLists(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"4", "4"},
		{"-4", "-4"},
		{"#t", "#t"},
		{"#f", "#f"},
		{"foo", "foo"},
		{"()", "()"},
		{"(1 2 3)", "(1 2 3)"},
		{"(1 . 2)", "(1 . 2)"},
		{"(1 2 . 3)", "(1 2 . 3)"},
		{"'a", "(quote a)"},
		{"'(a b)", "(quote (a b))"},
		{"((1 2) 3)", "((1 2) 3)"},
	}
	for _, test := range tests {
		got := String(parse(test.in))
		assert.Equal(t, test.out, got, test.in)
	}
}

func TestParserSyntaxErrors(t *testing.T) {
	tests := []string{
		"(",
		")",
		"(1 2",
		"(. 1)",
		"(1 .)",
		"quote",
		"(quote 1 2)",
	}
	for _, in := range tests {
		assert.Panics(t, func() { parse(in) }, in)
	}
}
