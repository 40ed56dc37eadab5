package scheme

import (
	"strconv"
	"strings"
)

// String renders v in the read syntax described in SPEC_FULL.md §4.4: Nil as
// "()", numbers and booleans in their literal form, a quote as "(quote x)",
// and a pair chain as a parenthesized list, with an improper tail rendered
// as a trailing ". x" element. Grounded on the original's AsString.
func String(v *Value) string {
	switch {
	case v == nil:
		return "()"
	case v.isNum():
		return strconv.FormatInt(v.num, 10)
	case v.isBool():
		if v.b {
			return "#t"
		}
		return "#f"
	case v.isSym():
		return v.sym
	case v.isQuote():
		return "(quote " + String(v.quot) + ")"
	case v.isPair():
		var elems []string
		cur := v
		for {
			if cur == nil {
				break
			}
			if !cur.isPair() {
				elems = append(elems, ". "+String(cur))
				break
			}
			elems = append(elems, String(cur.car))
			cur = cur.cdr
		}
		return "(" + strings.Join(elems, " ") + ")"
	default:
		runtimef("unknown literal")
		panic("unreachable")
	}
}
