package derivs

import "strings"

// Parser is a parsing function over a derivation node. Rules are Parsers, and
// the combinators below assemble Parsers from smaller ones. None of them
// mutate anything; all state lives in Results and memo slots.
type Parser func(d *Node) Result

// Symbol matches exactly ch and yields it.
func Symbol(ch byte) Parser {
	return func(d *Node) Result {
		if rest, ok := d.Match(ch); ok {
			return Parsed{Value: ch, Rest: rest}
		}
		return NoParse{}
	}
}

// OneOf matches any single character in chars and yields it.
func OneOf(chars string) Parser {
	return func(d *Node) Result {
		if p, ok := d.Char().(Parsed); ok && strings.IndexByte(chars, p.Value.(byte)) >= 0 {
			return p
		}
		return NoParse{}
	}
}

// Ref applies rule r at the current node.
func Ref(r Rule) Parser {
	return func(d *Node) Result {
		return d.Apply(r)
	}
}

// Return succeeds with v without consuming input.
func Return(v any) Parser {
	return func(d *Node) Result {
		return d.Parsed(v)
	}
}

// Fail never matches.
func Fail(*Node) Result {
	return NoParse{}
}

// Alt is ordered choice: each alternative is tried against the same node and
// the first success wins.
func Alt(alts ...Parser) Parser {
	return func(d *Node) Result {
		for _, alt := range alts {
			if r := alt(d); Ok(r) {
				return r
			}
		}
		return NoParse{}
	}
}

// Chain sequences p with the parser f builds from p's value, threading the
// node after p into it.
func (p Parser) Chain(f func(v any) Parser) Parser {
	return func(d *Node) Result {
		if r, ok := p(d).(Parsed); ok {
			return f(r.Value)(r.Rest)
		}
		return NoParse{}
	}
}

// Map transforms p's value.
func (p Parser) Map(f func(v any) any) Parser {
	return p.Chain(func(v any) Parser {
		return Return(f(v))
	})
}

// Then sequences p and q, keeping q's value.
func (p Parser) Then(q Parser) Parser {
	return p.Chain(func(any) Parser {
		return q
	})
}

// Skip sequences p and q, keeping p's value.
func (p Parser) Skip(q Parser) Parser {
	return p.Chain(func(v any) Parser {
		return q.Then(Return(v))
	})
}

// Where keeps p's success only if pred accepts its value.
func (p Parser) Where(pred func(v any) bool) Parser {
	return p.Chain(func(v any) Parser {
		if pred(v) {
			return Return(v)
		}
		return Fail
	})
}

// Seq sequences ps, yielding their values as a []any.
func Seq(ps ...Parser) Parser {
	if len(ps) == 0 {
		return Return([]any{})
	}
	return ps[0].Chain(func(v any) Parser {
		return Seq(ps[1:]...).Map(func(rest any) any {
			return append([]any{v}, rest.([]any)...)
		})
	})
}
