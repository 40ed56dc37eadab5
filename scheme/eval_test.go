package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func evalStr(t *testing.T, source string) *Value {
	t.Helper()
	return Apply(parse(source))
}

func TestApplySelfEvaluating(t *testing.T) {
	assert.Equal(t, "5", String(evalStr(t, "5")))
	assert.Equal(t, "#t", String(evalStr(t, "#t")))
}

func TestApplyArityErrors(t *testing.T) {
	tests := []string{
		"(car)",
		"(car 1 2)",
		"(cons 1)",
		"(cons 1 2 3)",
		"(list-ref '(1 2))",
		"(list-ref '(1 2) 0 0)",
		"(abs)",
		"(abs 1 2)",
		"(not)",
		"(not 1 2)",
	}
	for _, in := range tests {
		assert.Panics(t, func() { evalStr(t, in) }, in)
	}
}

func TestApplyTypeErrors(t *testing.T) {
	tests := []string{
		"(+ 1 #t)",
		"(car #t)",
		"(list-ref '(1 . 2) 0)",
		"(list-ref '(1 2 3) #t)",
		"(abs #t)",
	}
	for _, in := range tests {
		assert.Panics(t, func() { evalStr(t, in) }, in)
	}
}

func TestRecursionDepthGuard(t *testing.T) {
	ev := newEvaluator()
	ev.maxDepth = 3
	assert.Panics(t, func() {
		ev.Apply(parse("(+ 1 (+ 1 (+ 1 1)))"))
	})
}
