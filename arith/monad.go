package arith

import "github.com/arr-ai/packrat/derivs"

// The naive grammar again, stated entirely with combinators.
var monadGrammar = derivs.NewGrammar("monad", Additive, []derivs.RuleDef{
	Additive: {Name: "Additive", Parse: derivs.Alt(
		derivs.Ref(Multitive).Chain(func(l any) derivs.Parser {
			return derivs.Symbol('+').Then(derivs.Ref(Additive)).Map(func(r any) any {
				return l.(int) + r.(int)
			})
		}),
		derivs.Ref(Multitive),
	)},
	Multitive: {Name: "Multitive", Parse: derivs.Alt(
		derivs.Seq(derivs.Ref(Primary), derivs.Symbol('*'), derivs.Ref(Multitive)).Map(func(v any) any {
			vs := v.([]any)
			return vs[0].(int) * vs[2].(int)
		}),
		derivs.Ref(Primary),
	)},
	Primary: {Name: "Primary", Parse: derivs.Alt(
		derivs.Symbol('(').Then(derivs.Ref(Additive)).Skip(derivs.Symbol(')')),
		derivs.Ref(Decimal),
	)},
	Decimal: {Name: "Decimal", Parse: monadDecimal()},
})

func monadDecimal() derivs.Parser {
	alts := make([]derivs.Parser, 0, 10)
	for i := 0; i < 10; i++ {
		alts = append(alts, derivs.Symbol(byte('0'+i)).Then(derivs.Return(i)))
	}
	return derivs.Alt(alts...)
}
