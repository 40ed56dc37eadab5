package scheme

func opIsBoolean(ev *evaluator, args *Value) *Value {
	v := unaryArg(ev, args, "boolean?")
	return boolValue(v.isBool())
}

// opNot returns #t only for the literal value #f; every other value,
// including #t, numbers, symbols, pairs, and the empty list, is truthy and
// yields #f (SPEC_FULL.md §4.3, Open Question decision preserved).
func opNot(ev *evaluator, args *Value) *Value {
	v := unaryArg(ev, args, "not")
	return boolValue(v.isFalse())
}

// opAnd evaluates its operands left to right, stopping and returning the
// first #f it sees; otherwise it returns the last operand evaluated
// (preserved verbatim, including non-boolean results — see Open Questions).
func opAnd(ev *evaluator, args *Value) *Value {
	result := valTrue
	for args != nil {
		if !args.isPair() {
			runtimef("expected expression in and")
		}
		result = ev.Apply(args.car)
		if result.isFalse() {
			return result
		}
		args = args.cdr
	}
	return result
}

// opOr evaluates its operands left to right, stopping and returning the
// first truthy value; otherwise it returns the last operand evaluated.
func opOr(ev *evaluator, args *Value) *Value {
	result := valFalse
	for args != nil {
		if !args.isPair() {
			runtimef("expected expression in or")
		}
		result = ev.Apply(args.car)
		if !result.isFalse() {
			return result
		}
		args = args.cdr
	}
	return result
}
