package arith

// num is an operand of the left and lex grammars. A division by zero does not
// stop the parse: it poisons the value, and every operation on a poisoned
// value yields the same error. The error surfaces only if the poisoned value
// is the result of the whole parse, so branches ordered choice discards never
// report one.
type num struct {
	n   int
	err *ArithmeticError
}

// fold is the value of a suffix rule: the operators and right operands it
// matched, waiting for the operand on their left.
type fold func(left num) num

func identity(v num) num { return v }

type binop struct {
	symbol  byte
	apply   func(l, r int) int
	partial bool // undefined for a zero right operand
}

var (
	additiveOps = []binop{
		{'+', func(l, r int) int { return l + r }, false},
		{'-', func(l, r int) int { return l - r }, false},
	}
	multitiveOps = []binop{
		{'*', func(l, r int) int { return l * r }, false},
		{'/', floorDiv, true},
		{'%', floorMod, true},
	}
)

// eval applies op, propagating the leftmost poisoned operand.
func (op binop) eval(l, r num) num {
	switch {
	case l.err != nil:
		return l
	case r.err != nil:
		return r
	case op.partial && r.n == 0:
		return num{err: &ArithmeticError{Op: op.symbol, Left: l.n, Right: r.n}}
	}
	return num{n: op.apply(l.n, r.n)}
}

// floorDiv rounds toward negative infinity. b must not be zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod takes the sign of the divisor, so a == b*floorDiv(a, b) + floorMod(a, b).
// b must not be zero.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
