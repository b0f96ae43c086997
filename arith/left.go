package arith

import "github.com/arr-ai/packrat/derivs"

// tokenizer matches one operator or parenthesis.
type tokenizer func(ch byte) derivs.Parser

// The suffix grammar replaces left recursion with a head and a suffix whose
// value is a fold over the operands to its right:
//
//	Additive       ← Multitive AdditiveSuffix
//	AdditiveSuffix ← '+' Multitive AdditiveSuffix
//	               | '-' Multitive AdditiveSuffix
//	               | ε
//
// and likewise for Multitive over '*', '/' and '%'.
var leftGrammar = derivs.NewGrammar("left", Additive, suffixRules(derivs.Symbol, operand(naiveDecimal)))

// operand lifts an int valued parser to the num values suffix rules fold.
func operand(p derivs.Parser) derivs.Parser {
	return p.Map(func(v any) any {
		return num{n: v.(int)}
	})
}

func suffixRules(tok tokenizer, decimal derivs.Parser) []derivs.RuleDef {
	rules := make([]derivs.RuleDef, ruleCount)
	rules[Additive] = derivs.RuleDef{Name: "Additive", Parse: head(Multitive, AdditiveSuffix)}
	rules[AdditiveSuffix] = derivs.RuleDef{Name: "AdditiveSuffix", Parse: suffix(tok, Multitive, AdditiveSuffix, additiveOps)}
	rules[Multitive] = derivs.RuleDef{Name: "Multitive", Parse: head(Primary, MultitiveSuffix)}
	rules[MultitiveSuffix] = derivs.RuleDef{Name: "MultitiveSuffix", Parse: suffix(tok, Primary, MultitiveSuffix, multitiveOps)}
	rules[Primary] = derivs.RuleDef{Name: "Primary", Parse: derivs.Alt(
		tok('(').Then(derivs.Ref(Additive)).Skip(tok(')')),
		derivs.Ref(Decimal),
	)}
	rules[Decimal] = derivs.RuleDef{Name: "Decimal", Parse: decimal}
	return rules
}

// head applies the suffix's fold to the operand before it.
func head(operand, suffix derivs.Rule) derivs.Parser {
	return derivs.Ref(operand).Chain(func(l any) derivs.Parser {
		return derivs.Ref(suffix).Map(func(f any) any {
			return f.(fold)(l.(num))
		})
	})
}

// suffix tries each operator in turn, falling back to the identity fold. Each
// alternative folds its own operator first and hands the result to the fold of
// the suffix after it, which keeps evaluation left associative.
func suffix(tok tokenizer, operand, self derivs.Rule, ops []binop) derivs.Parser {
	alts := make([]derivs.Parser, 0, len(ops)+1)
	for _, op := range ops {
		op := op
		alts = append(alts, tok(op.symbol).Then(derivs.Ref(operand)).Chain(func(r any) derivs.Parser {
			return derivs.Ref(self).Map(func(rest any) any {
				return fold(func(l num) num {
					return rest.(fold)(op.eval(l, r.(num)))
				})
			})
		}))
	}
	return derivs.Alt(append(alts, derivs.Return(fold(identity)))...)
}
