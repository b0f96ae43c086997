package derivs

import (
	"fmt"

	"github.com/arr-ai/packrat/parse"
)

// Rule identifies a rule within a Grammar. Rule ids index the memo arena.
type Rule int

// RuleDef binds a rule id to its name and parsing function.
type RuleDef struct {
	Name  string
	Parse Parser
}

// Grammar is an immutable set of rules and a start rule. It may be shared by
// any number of concurrent parses.
type Grammar struct {
	name  string
	start Rule
	rules []RuleDef
}

// NewGrammar builds a grammar whose rule ids are the indices of rules. Entries
// left zero are undefined, and applying them panics.
func NewGrammar(name string, start Rule, rules []RuleDef) *Grammar {
	g := &Grammar{name: name, start: start, rules: rules}
	if !g.Defines(start) {
		panic(fmt.Errorf("grammar %s: start rule %d undefined", name, start))
	}
	for i, def := range rules {
		if (def.Parse == nil) != (def.Name == "") {
			panic(fmt.Errorf("grammar %s: rule %d half defined: %q", name, i, def.Name))
		}
	}
	return g
}

func (g *Grammar) Name() string {
	return g.name
}

func (g *Grammar) Start() Rule {
	return g.start
}

func (g *Grammar) Defines(r Rule) bool {
	return r >= 0 && int(r) < len(g.rules) && g.rules[r].Parse != nil
}

// RuleName returns the name of r, or a placeholder for undefined rules.
func (g *Grammar) RuleName(r Rule) string {
	if g.Defines(r) {
		return g.rules[r].Name
	}
	return fmt.Sprintf("rule#%d", int(r))
}

// Rules lists the defined rule ids in id order.
func (g *Grammar) Rules() []Rule {
	rules := make([]Rule, 0, len(g.rules))
	for i := range g.rules {
		if g.Defines(Rule(i)) {
			rules = append(rules, Rule(i))
		}
	}
	return rules
}

func (g *Grammar) rule(r Rule) RuleDef {
	if !g.Defines(r) {
		panic(fmt.Errorf("grammar %s: undefined rule %d", g.name, r))
	}
	return g.rules[r]
}

// Derive prepares a fresh table over text. Every call gets its own nodes and
// memo, so derivations never share state.
func (g *Grammar) Derive(src *parse.Source, policy MemoPolicy) *Table {
	positions := src.Len() + 1
	return &Table{
		grammar: g,
		src:     src,
		memo:    policy(positions, len(g.rules)),
		nodes:   make([]*Node, positions),
		evals:   map[int]int{},
	}
}
