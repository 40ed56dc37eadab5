package scheme

import "fmt"

// Run tokenizes, parses, evaluates, and prints source, returning the
// rendered result of the single expression it contains. It is the package's
// one entry point and its one recover boundary: SyntaxError and
// RuntimeError are the interpreter's normal error vocabulary and are
// returned as errors; any other panic is a bug and is allowed to propagate.
func Run(source string) (result string, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case *SyntaxError, *RuntimeError:
			err = e.(error)
		default:
			panic(r)
		}
	}()

	tok := NewTokenizer(source)
	parser := NewParser(tok)

	ast := parser.ParseExpr()
	if !tok.AtEnd() {
		syntaxf("extra expressions after the first")
	}

	value := Apply(ast)
	return String(value), nil
}

// MustRun is a convenience wrapper for callers that want a formatted error
// instead of a typed one.
func MustRun(source string) string {
	result, err := Run(source)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return result
}
