package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringFormatting(t *testing.T) {
	tests := []struct {
		v    *Value
		want string
	}{
		{nil, "()"},
		{Num(42), "42"},
		{Num(-7), "-7"},
		{Bool(true), "#t"},
		{Bool(false), "#f"},
		{Sym("foo"), "foo"},
		{QuoteValue(Sym("a")), "(quote a)"},
		{Cons(Num(1), Cons(Num(2), nil)), "(1 2)"},
		{Cons(Num(1), Num(2)), "(1 . 2)"},
		{Cons(Num(1), Cons(Num(2), Num(3))), "(1 2 . 3)"},
		{Cons(nil, Cons(Num(1), nil)), "(() 1)"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, String(test.v))
	}
}
