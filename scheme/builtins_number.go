package scheme

import "github.com/samber/lo"

// evalOperands walks a call-form argument tail, evaluating every operand
// left to right. It is only correct for builtins that always evaluate every
// argument regardless of value (+, -, *, /, max, min) — comparison and
// logic builtins short-circuit and must not use it (SPEC_FULL.md §4.3).
func evalOperands(ev *evaluator, args *Value, name string) []*Value {
	var out []*Value
	for args != nil {
		if !args.isPair() {
			runtimef("expected expression in %s", name)
		}
		out = append(out, ev.Apply(args.car))
		args = args.cdr
	}
	return out
}

func requireNumber(v *Value, name string) int64 {
	if !v.isNum() {
		runtimef("expected number in %s", name)
	}
	return v.num
}

func opIsNumber(ev *evaluator, args *Value) *Value {
	v := unaryArg(ev, args, "number?")
	return boolValue(v.isNum())
}

func opAdd(ev *evaluator, args *Value) *Value {
	operands := evalOperands(ev, args, "+")
	sum := lo.Reduce(operands, func(acc int64, v *Value, _ int) int64 {
		return acc + requireNumber(v, "+")
	}, int64(0))
	return Num(sum)
}

func opMul(ev *evaluator, args *Value) *Value {
	operands := evalOperands(ev, args, "*")
	product := lo.Reduce(operands, func(acc int64, v *Value, _ int) int64 {
		return acc * requireNumber(v, "*")
	}, int64(1))
	return Num(product)
}

func opSub(ev *evaluator, args *Value) *Value {
	operands := evalOperands(ev, args, "-")
	if len(operands) == 0 {
		runtimef("- expects operand(s)")
	}
	diff := requireNumber(operands[0], "-")
	for _, v := range operands[1:] {
		diff -= requireNumber(v, "-")
	}
	return Num(diff)
}

func opDiv(ev *evaluator, args *Value) *Value {
	operands := evalOperands(ev, args, "/")
	if len(operands) < 2 {
		runtimef("/ expects two or more operands")
	}
	quot := requireNumber(operands[0], "/")
	for _, v := range operands[1:] {
		d := requireNumber(v, "/")
		if d == 0 {
			runtimef("division by zero in /")
		}
		quot /= d
	}
	return Num(quot)
}

func opMax(ev *evaluator, args *Value) *Value {
	operands := evalOperands(ev, args, "max")
	if len(operands) == 0 {
		runtimef("max expects operand(s)")
	}
	nums := lo.Map(operands, func(v *Value, _ int) int64 { return requireNumber(v, "max") })
	return Num(lo.Max(nums))
}

func opMin(ev *evaluator, args *Value) *Value {
	operands := evalOperands(ev, args, "min")
	if len(operands) == 0 {
		runtimef("min expects operand(s)")
	}
	nums := lo.Map(operands, func(v *Value, _ int) int64 { return requireNumber(v, "min") })
	return Num(lo.Min(nums))
}

func opAbs(ev *evaluator, args *Value) *Value {
	v := unaryArg(ev, args, "abs")
	n := requireNumber(v, "abs")
	if n < 0 {
		n = -n
	}
	return Num(n)
}

// chainCompare evaluates a variadic comparison's operands one at a time,
// stopping at the first adjacent pair that fails cmp — matching the
// original's OpLess/OpGreater/etc, which never evaluates an operand past
// the point the answer is already known.
func chainCompare(ev *evaluator, args *Value, name string, vacuous bool, cmp func(a, b int64) bool) *Value {
	if args == nil {
		return boolValue(vacuous)
	}
	started := false
	var last int64
	for args != nil {
		if !args.isPair() {
			runtimef("expected expression in %s", name)
		}
		v := ev.Apply(args.car)
		n := requireNumber(v, name)
		if started {
			if !cmp(last, n) {
				return boolValue(false)
			}
		}
		last = n
		started = true
		args = args.cdr
	}
	return boolValue(true)
}

func opEqual(ev *evaluator, args *Value) *Value {
	return chainCompare(ev, args, "=", true, func(a, b int64) bool { return a == b })
}

func opLess(ev *evaluator, args *Value) *Value {
	return chainCompare(ev, args, "<", true, func(a, b int64) bool { return a < b })
}

func opGreater(ev *evaluator, args *Value) *Value {
	return chainCompare(ev, args, ">", true, func(a, b int64) bool { return a > b })
}

func opLessEqual(ev *evaluator, args *Value) *Value {
	return chainCompare(ev, args, "<=", true, func(a, b int64) bool { return a <= b })
}

func opGreaterEqual(ev *evaluator, args *Value) *Value {
	return chainCompare(ev, args, ">=", true, func(a, b int64) bool { return a >= b })
}
