package scheme

// lexer turns a rune stream into tokens, one at a time, with a single
// rune of pushback so the sign character ('+'/'-') can be classified by
// looking at what follows it without consuming that rune.
type lexer struct {
	src      []rune
	pos      int
	peeking  bool
	peekRune rune
}

const eofRune rune = -1

func newLexer(source string) *lexer {
	return &lexer{src: []rune(source)}
}

func (l *lexer) read() rune {
	if l.peeking {
		l.peeking = false
		return l.peekRune
	}
	if l.pos >= len(l.src) {
		return eofRune
	}
	r := l.src[l.pos]
	l.pos++
	return r
}

func (l *lexer) back(r rune) {
	l.peeking = true
	l.peekRune = r
}

func isWhitespace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' }

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isLetter(r rune) bool { return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') }

func isStartSymbol(r rune) bool {
	return isLetter(r) || r == '<' || r == '=' || r == '>' || r == '*' || r == '/' || r == '#'
}

func isInnerSymbol(r rune) bool {
	return isStartSymbol(r) || isDigit(r) || r == '?' || r == '!' || r == '-'
}

func isSign(r rune) bool { return r == '+' || r == '-' }

// skipSpace consumes leading whitespace and returns the first non-whitespace
// rune found (without consuming it), or eofRune.
func (l *lexer) skipSpace() rune {
	for {
		r := l.read()
		if r == eofRune {
			return eofRune
		}
		if !isWhitespace(r) {
			l.back(r)
			return r
		}
	}
}

// atEnd reports whether, after skipping whitespace, no further rune remains.
func (l *lexer) atEnd() bool {
	return l.skipSpace() == eofRune
}

// next lexes and returns the next token, per the §4.1 algorithm.
func (l *lexer) next() token {
	r := l.skipSpace()
	if r == eofRune {
		return token{typ: tokEOF}
	}
	l.read() // consume the rune skipSpace left buffered.

	switch {
	case isSign(r):
		digits := []rune{r}
		for {
			d := l.read()
			if d == eofRune {
				break
			}
			if !isDigit(d) {
				l.back(d)
				break
			}
			digits = append(digits, d)
		}
		if len(digits) == 1 {
			return token{typ: tokSym, text: string(r)}
		}
		return token{typ: tokConst, num: parseSignedInt(digits)}
	case isDigit(r):
		digits := []rune{r}
		for {
			d := l.read()
			if d == eofRune {
				break
			}
			if !isDigit(d) {
				l.back(d)
				break
			}
			digits = append(digits, d)
		}
		return token{typ: tokConst, num: parseSignedInt(digits)}
	case isStartSymbol(r):
		runes := []rune{r}
		for {
			d := l.read()
			if d == eofRune {
				break
			}
			if !isInnerSymbol(d) {
				l.back(d)
				break
			}
			runes = append(runes, d)
		}
		lexeme := string(runes)
		switch lexeme {
		case "#t":
			return token{typ: tokBool, b: true}
		case "#f":
			return token{typ: tokBool, b: false}
		default:
			return token{typ: tokSym, text: lexeme}
		}
	case r == '\'':
		return token{typ: tokQuote}
	case r == '(':
		return token{typ: tokLParen}
	case r == ')':
		return token{typ: tokRParen}
	case r == '.':
		return token{typ: tokDot}
	default:
		syntaxf("unrecognized character %q", r)
		panic("unreachable")
	}
}

// parseSignedInt converts a run of ['+'|'-']digit+ or digit+ into an int64,
// wrapping on overflow the same way Go's native int64 arithmetic wraps
// everywhere else in this package.
func parseSignedInt(digits []rune) int64 {
	neg := false
	start := 0
	switch digits[0] {
	case '+':
		start = 1
	case '-':
		neg = true
		start = 1
	}
	var v int64
	for _, d := range digits[start:] {
		v = v*10 + int64(d-'0')
	}
	if neg {
		v = -v
	}
	return v
}

// Tokenizer exposes one-token lookahead over a source string, matching the
// contract in SPEC_FULL.md §4.1: Peek, Advance, AtEnd.
type Tokenizer struct {
	lex     *lexer
	current *token
}

// NewTokenizer returns a tokenizer positioned before the first token of source.
func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{lex: newLexer(source)}
}

// Peek returns the currently buffered token, lexing one if none is buffered.
// It fails with a *SyntaxError if the stream is exhausted.
func (t *Tokenizer) Peek() token {
	if t.current == nil {
		if t.lex.atEnd() {
			syntaxf("unexpected end of input")
		}
		tok := t.lex.next()
		t.current = &tok
	}
	return *t.current
}

// Advance consumes the current token so the next Peek lexes a fresh one.
func (t *Tokenizer) Advance() {
	t.current = nil
}

// AtEnd reports whether, after skipping whitespace, no further token remains.
func (t *Tokenizer) AtEnd() bool {
	if t.current != nil {
		return false
	}
	return t.lex.atEnd()
}
