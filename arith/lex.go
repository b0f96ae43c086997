package arith

import "github.com/arr-ai/packrat/derivs"

const (
	digits  = "0123456789"
	symbols = "+-*/%()"
	spaces  = " \t\n\r\f"
)

// digitRun is the value of Digits: the number and how many digits it spans.
type digitRun struct {
	value, width int
}

// The lexical grammar is the suffix grammar over tokens instead of
// characters. Every token consumes the whitespace after it, and numbers may
// have any number of digits.
var lexGrammar = derivs.NewGrammar("lex", Start, lexRules())

func lexRules() []derivs.RuleDef {
	// Decimal ← Digits Whitespace
	decimal := derivs.Ref(Digits).Skip(derivs.Ref(Whitespace)).Map(func(v any) any {
		return num{n: v.(digitRun).value}
	})
	rules := suffixRules(lexToken, decimal)

	// Start ← Whitespace Additive
	rules[Start] = derivs.RuleDef{Name: "Start", Parse: derivs.Ref(Whitespace).Then(derivs.Ref(Additive))}

	// Digits ← Digit Digits | Digit
	rules[Digits] = derivs.RuleDef{Name: "Digits", Parse: derivs.Alt(
		derivs.Ref(Digit).Chain(func(d any) derivs.Parser {
			return derivs.Ref(Digits).Map(func(v any) any {
				run := v.(digitRun)
				return digitRun{value: d.(int)*pow10(run.width) + run.value, width: run.width + 1}
			})
		}),
		derivs.Ref(Digit).Map(func(d any) any {
			return digitRun{value: d.(int), width: 1}
		}),
	)}
	rules[Digit] = derivs.RuleDef{Name: "Digit", Parse: derivs.OneOf(digits).Map(func(v any) any {
		return int(v.(byte) - '0')
	})}

	// Symbol ← [+-*/%()] Whitespace
	rules[Symbol] = derivs.RuleDef{Name: "Symbol", Parse: derivs.OneOf(symbols).Skip(derivs.Ref(Whitespace))}

	// Whitespace ← [ \t\n\r\f] Whitespace | ε
	rules[Whitespace] = derivs.RuleDef{Name: "Whitespace", Parse: derivs.Alt(
		derivs.OneOf(spaces).Then(derivs.Ref(Whitespace)),
		derivs.Return(nil),
	)}
	return rules
}

func lexToken(ch byte) derivs.Parser {
	return derivs.Ref(Symbol).Where(func(v any) bool {
		return v.(byte) == ch
	})
}

func pow10(n int) int {
	p := 1
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}
