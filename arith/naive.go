package arith

import "github.com/arr-ai/packrat/derivs"

// The naive grammar is right recursive, so it only handles the associative
// operators '+' and '*', and single digit numbers.
var naiveGrammar = derivs.NewGrammar("naive", Additive, []derivs.RuleDef{
	Additive:  {Name: "Additive", Parse: naiveAdditive},
	Multitive: {Name: "Multitive", Parse: naiveMultitive},
	Primary:   {Name: "Primary", Parse: naivePrimary},
	Decimal:   {Name: "Decimal", Parse: naiveDecimal},
})

// Additive ← Multitive '+' Additive | Multitive
func naiveAdditive(d *derivs.Node) derivs.Result {
	if l, ok := d.Apply(Multitive).(derivs.Parsed); ok {
		if next, ok := l.Rest.Match('+'); ok {
			if r, ok := next.Apply(Additive).(derivs.Parsed); ok {
				return derivs.Parsed{Value: l.Value.(int) + r.Value.(int), Rest: r.Rest}
			}
		}
	}
	return d.Apply(Multitive)
}

// Multitive ← Primary '*' Multitive | Primary
func naiveMultitive(d *derivs.Node) derivs.Result {
	if l, ok := d.Apply(Primary).(derivs.Parsed); ok {
		if next, ok := l.Rest.Match('*'); ok {
			if r, ok := next.Apply(Multitive).(derivs.Parsed); ok {
				return derivs.Parsed{Value: l.Value.(int) * r.Value.(int), Rest: r.Rest}
			}
		}
	}
	return d.Apply(Primary)
}

// Primary ← '(' Additive ')' | Decimal
func naivePrimary(d *derivs.Node) derivs.Result {
	if next, ok := d.Match('('); ok {
		if v, ok := next.Apply(Additive).(derivs.Parsed); ok {
			if rest, ok := v.Rest.Match(')'); ok {
				return derivs.Parsed{Value: v.Value, Rest: rest}
			}
		}
	}
	return d.Apply(Decimal)
}

// Decimal ← '0' | … | '9'
func naiveDecimal(d *derivs.Node) derivs.Result {
	if c, ok := d.Char().(derivs.Parsed); ok {
		if ch := c.Value.(byte); '0' <= ch && ch <= '9' {
			return derivs.Parsed{Value: int(ch - '0'), Rest: c.Rest}
		}
	}
	return derivs.NoParse{}
}
