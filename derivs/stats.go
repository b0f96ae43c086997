package derivs

import (
	"fmt"

	"github.com/iancoleman/strcase"

	"github.com/arr-ai/packrat/gotree"
)

// Stats counts the work done by one parse.
type Stats struct {
	Positions int // nodes materialised
	Hits      int // rule applications answered from the memo
	Misses    int // rule applications evaluated
	MaxPerKey int // most evaluations of any single (position, rule)
	Rules     []RuleStats
}

type RuleStats struct {
	Name   string
	Misses int
}

// Stats snapshots the table's counters.
func (t *Table) Stats() Stats {
	s := Stats{Hits: t.hits, Misses: t.misses}
	for _, n := range t.nodes {
		if n != nil {
			s.Positions++
		}
	}
	perRule := map[Rule]int{}
	width := len(t.grammar.rules)
	for key, n := range t.evals {
		perRule[Rule(key%width)] += n
		if n > s.MaxPerKey {
			s.MaxPerKey = n
		}
	}
	for _, r := range t.grammar.Rules() {
		s.Rules = append(s.Rules, RuleStats{Name: t.grammar.RuleName(r), Misses: perRule[r]})
	}
	return s
}

func (s Stats) Tree() gotree.Tree {
	tree := gotree.New("stats")
	tree.Add(fmt.Sprintf("positions: %d", s.Positions))
	tree.Add(fmt.Sprintf("hits: %d", s.Hits))
	tree.Add(fmt.Sprintf("misses: %d", s.Misses))
	tree.Add(fmt.Sprintf("max evaluations per key: %d", s.MaxPerKey))
	rules := tree.Add("evaluations")
	for _, r := range s.Rules {
		rules.Add(fmt.Sprintf("%s: %d", strcase.ToSnake(r.Name), r.Misses))
	}
	return tree
}

func (s Stats) String() string {
	return s.Tree().Print()
}
