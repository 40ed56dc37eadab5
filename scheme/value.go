package scheme

// kind tags the alternative held by a Value.
type kind int

const (
	kindNum kind = iota
	kindBool
	kindSym
	kindQuote
	kindPair
)

// Value is the recursive sum type described in SPEC_FULL.md §3: Nil, Num,
// Bool, Sym, Quote, and Pair. Nil is the Go nil *Value, distinct from every
// non-nil Value the way the original's nullptr is distinct from every
// non-null Object. Values are immutable once constructed; every operation
// that conceptually mutates one builds and returns a new Value instead.
type Value struct {
	kind kind

	num  int64  // kindNum
	b    bool   // kindBool
	sym  string // kindSym
	quot *Value // kindQuote: the unevaluated child

	car, cdr *Value // kindPair
}

// Num returns a Value holding the integer n.
func Num(n int64) *Value { return &Value{kind: kindNum, num: n} }

// Bool returns a Value holding the boolean b.
func Bool(b bool) *Value { return &Value{kind: kindBool, b: b} }

// Sym returns a Value holding the symbol name s.
func Sym(s string) *Value { return &Value{kind: kindSym, sym: s} }

// QuoteValue returns a Value wrapping v as an unevaluated quoted child.
func QuoteValue(v *Value) *Value { return &Value{kind: kindQuote, quot: v} }

// Cons returns the pair (car . cdr).
func Cons(car, cdr *Value) *Value { return &Value{kind: kindPair, car: car, cdr: cdr} }

var (
	valTrue  = Bool(true)
	valFalse = Bool(false)
)

// boolValue returns the canonical #t/#f Value for b.
func boolValue(b bool) *Value {
	if b {
		return valTrue
	}
	return valFalse
}

func (v *Value) isNum() bool   { return v != nil && v.kind == kindNum }
func (v *Value) isBool() bool  { return v != nil && v.kind == kindBool }
func (v *Value) isSym() bool   { return v != nil && v.kind == kindSym }
func (v *Value) isQuote() bool { return v != nil && v.kind == kindQuote }
func (v *Value) isPair() bool  { return v != nil && v.kind == kindPair }

// isFalse reports whether v is the boolean #f. Every other value, including
// Nil, is truthy.
func (v *Value) isFalse() bool { return v.isBool() && !v.b }

// Car returns the first element of a pair, or Nil if v is not a pair.
func Car(v *Value) *Value {
	if !v.isPair() {
		return nil
	}
	return v.car
}

// Cdr returns the second element of a pair, or Nil if v is not a pair.
func Cdr(v *Value) *Value {
	if !v.isPair() {
		return nil
	}
	return v.cdr
}

// isProperList reports whether v is Nil or a chain of pairs ending in Nil.
func isProperList(v *Value) bool {
	for {
		if v == nil {
			return true
		}
		if !v.isPair() {
			return false
		}
		v = v.cdr
	}
}

// listLen reports the number of elements in the proper-list prefix of v,
// stopping at the first non-pair cdr (including Nil).
func listLen(v *Value) int {
	n := 0
	for v.isPair() {
		n++
		v = v.cdr
	}
	return n
}
