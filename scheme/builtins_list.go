package scheme

// opIsList reports whether the evaluated operand is Nil or a proper list —
// a straight walk of the cdr chain, equivalent to the original's OpIsList
// loop (which checks the same chain one cdr at a time).
func opIsList(ev *evaluator, args *Value) *Value {
	v := unaryArg(ev, args, "list?")
	return boolValue(isProperList(v))
}

func opIsNull(ev *evaluator, args *Value) *Value {
	v := unaryArg(ev, args, "null?")
	return boolValue(v == nil)
}

// opIsPair reports whether the operand is a Pair whose car and cdr are both
// non-Nil — so (pair? '(1)) is #f, since its cdr is Nil, but (pair? '(1 2))
// and (pair? '(1 . 2)) are both #t. Matches the original's OpIsPair exactly.
func opIsPair(ev *evaluator, args *Value) *Value {
	v := unaryArg(ev, args, "pair?")
	if !v.isPair() {
		return boolValue(false)
	}
	return boolValue(v.car != nil && v.cdr != nil)
}

// opList returns the call's own argument tail verbatim, with no evaluation
// of its elements — the Open Question decision preserved from spec.md §9.
func opList(_ *evaluator, args *Value) *Value {
	return args
}

func opCons(ev *evaluator, args *Value) *Value {
	const name = "cons"
	if args == nil {
		runtimef("%s expects 1st operand", name)
	}
	if !args.isPair() {
		runtimef("expected expression in %s", name)
	}
	first := ev.Apply(args.car)

	rest := args.cdr
	if rest == nil {
		runtimef("%s expects 2nd operand", name)
	}
	if !rest.isPair() {
		runtimef("expected expression in %s", name)
	}
	if rest.cdr != nil {
		runtimef("%s expected only 2 arguments", name)
	}
	second := ev.Apply(rest.car)

	return Cons(first, second)
}

func opCar(ev *evaluator, args *Value) *Value {
	v := unaryArg(ev, args, "car")
	if !v.isPair() {
		runtimef("car expected a non-empty list")
	}
	return v.car
}

func opCdr(ev *evaluator, args *Value) *Value {
	v := unaryArg(ev, args, "cdr")
	if !v.isPair() {
		runtimef("cdr expected a non-empty list")
	}
	return v.cdr
}

// listIndexArgs parses and evaluates the two operands shared by list-ref and
// list-tail: a list expression and a non-negative integer index. It mirrors
// the original's arity checks (performed before either operand is
// evaluated) followed by its list-ness and index-type checks.
func listIndexArgs(ev *evaluator, args *Value, name string) (list *Value, index int64) {
	if args == nil {
		runtimef("%s expects 1st operand", name)
	}
	if !args.isPair() {
		runtimef("expected expression in %s", name)
	}
	listSyntax := args.car

	rest := args.cdr
	if rest == nil {
		runtimef("%s expects 2nd operand", name)
	}
	if !rest.isPair() {
		runtimef("expected expression in %s", name)
	}
	if rest.cdr != nil {
		runtimef("%s expected only 2 arguments", name)
	}
	indexSyntax := rest.car

	list = ev.Apply(listSyntax)
	if list == nil || !list.isPair() || !isProperList(list) {
		runtimef("%s: invalid list", name)
	}

	indexVal := ev.Apply(indexSyntax)
	if !indexVal.isNum() {
		runtimef("invalid index in %s", name)
	}
	if indexVal.num < 0 {
		runtimef("invalid index in %s", name)
	}
	return list, indexVal.num
}

func opListRef(ev *evaluator, args *Value) *Value {
	const name = "list-ref"
	list, index := listIndexArgs(ev, args, name)
	cur := list
	for i := int64(0); cur != nil; i++ {
		if i == index {
			return cur.car
		}
		cur = cur.cdr
	}
	runtimef("index out of range in %s", name)
	panic("unreachable")
}

func opListTail(ev *evaluator, args *Value) *Value {
	const name = "list-tail"
	list, index := listIndexArgs(ev, args, name)
	cur := list
	for i := int64(0); ; i++ {
		if i == index {
			return cur
		}
		if cur == nil {
			runtimef("index out of range in %s", name)
		}
		cur = cur.cdr
	}
}
