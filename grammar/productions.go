// Package grammar describes grammars declaratively so they can be printed as
// EBNF, verified, and analysed for left recursion.
package grammar

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Symbol is either a reference to a rule or a literal token.
type Symbol struct {
	Rule  string
	Token string
}

// R refers to the rule named name.
func R(name string) Symbol {
	return Symbol{Rule: name}
}

// T is the literal token text.
func T(text string) Symbol {
	return Symbol{Token: text}
}

func (s Symbol) IsRule() bool {
	return s.Rule != ""
}

func (s Symbol) String() string {
	if s.IsRule() {
		return s.Rule
	}
	return strconv.Quote(s.Token)
}

// Alt is one alternative of a production. An empty Alt is ε.
type Alt []Symbol

func (a Alt) String() string {
	if len(a) == 0 {
		return "ε"
	}
	parts := make([]string, 0, len(a))
	for _, s := range a {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, " ")
}

// Production is a rule with its alternatives in priority order.
type Production struct {
	Name string
	Alts []Alt
}

func P(name string, alts ...Alt) Production {
	return Production{Name: name, Alts: alts}
}

func (p Production) String() string {
	alts := make([]string, 0, len(p.Alts))
	for _, a := range p.Alts {
		alts = append(alts, a.String())
	}
	return fmt.Sprintf("%s ← %s", p.Name, strings.Join(alts, " | "))
}

// Productions is an ordered grammar. The first production is the start.
type Productions []Production

func (ps Productions) Get(name string) (Production, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p, true
		}
	}
	return Production{}, false
}

func (ps Productions) String() string {
	lines := make([]string, 0, len(ps))
	for _, p := range ps {
		lines = append(lines, p.String())
	}
	return strings.Join(lines, "\n")
}

// From returns the productions reachable from start, in their original order.
func (ps Productions) From(start string) (Productions, error) {
	if _, has := ps.Get(start); !has {
		return nil, fmt.Errorf("no production %s", start)
	}
	reached := map[string]bool{}
	var visit func(name string)
	visit = func(name string) {
		if reached[name] {
			return
		}
		reached[name] = true
		if p, has := ps.Get(name); has {
			for _, a := range p.Alts {
				for _, s := range a {
					if s.IsRule() {
						visit(s.Rule)
					}
				}
			}
		}
	}
	visit(start)

	var out Productions
	for _, p := range ps {
		if reached[p.Name] {
			out = append(out, p)
		}
	}
	return out, nil
}

// EBNF renders the productions in the notation of golang.org/x/exp/ebnf. An ε
// alternative makes the rest of the production optional.
func (ps Productions) EBNF() string {
	var sb strings.Builder
	for _, p := range ps {
		var alts []string
		optional := false
		for _, a := range p.Alts {
			if len(a) == 0 {
				optional = true
				continue
			}
			alts = append(alts, a.String())
		}
		expr := strings.Join(alts, " | ")
		if optional {
			expr = "[ " + expr + " ]"
		}
		fmt.Fprintf(&sb, "%s = %s .\n", p.Name, expr)
	}
	return sb.String()
}

// Verify checks that the productions reachable from start form a complete,
// well-formed EBNF grammar.
func (ps Productions) Verify(start string) error {
	reachable, err := ps.From(start)
	if err != nil {
		return err
	}
	g, err := ebnf.Parse(start+".ebnf", strings.NewReader(reachable.EBNF()))
	if err != nil {
		return err
	}
	return ebnf.Verify(g, start)
}
