package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arr-ai/frozen"
)

/*
A rule is left recursive if it can reach itself without first consuming any
input. Recursive descent never terminates on such a rule.

	a ← a "+" b;            direct
	a ← b a; b ← ε;         through a nullable prefix
	a ← b "x"; b ← a "y";   indirect
*/

// Nullable is the set of rules that can derive ε.
func (ps Productions) Nullable() frozen.Set {
	nullable := frozen.NewSet()
	for changed := true; changed; {
		changed = false
		for _, p := range ps {
			if nullable.Has(p.Name) {
				continue
			}
			for _, a := range p.Alts {
				if allNullable(a, nullable) {
					nullable = nullable.With(p.Name)
					changed = true
					break
				}
			}
		}
	}
	return nullable
}

func allNullable(a Alt, nullable frozen.Set) bool {
	for _, s := range a {
		if !s.IsRule() || !nullable.Has(s.Rule) {
			return false
		}
	}
	return true
}

// leftCorners maps every rule to the rules that may be applied at the same
// input position it starts at.
func (ps Productions) leftCorners() map[string]frozen.Set {
	nullable := ps.Nullable()
	corners := map[string]frozen.Set{}
	for _, p := range ps {
		c := frozen.NewSet()
		for _, a := range p.Alts {
			for _, s := range a {
				if !s.IsRule() {
					break
				}
				c = c.With(s.Rule)
				if !nullable.Has(s.Rule) {
					break
				}
			}
		}
		corners[p.Name] = c
	}
	return corners
}

// LeftRecursive lists, sorted, every rule that can reach itself without
// consuming input.
func (ps Productions) LeftRecursive() []string {
	corners := ps.leftCorners()
	var result []string
	for _, p := range ps {
		if reaches(p.Name, p.Name, corners, frozen.NewSet()) {
			result = append(result, p.Name)
		}
	}
	sort.Strings(result)
	return result
}

func reaches(from, target string, corners map[string]frozen.Set, seen frozen.Set) bool {
	for _, next := range sortedSet(corners[from]) {
		if next == target {
			return true
		}
		if !seen.Has(next) && reaches(next, target, corners, seen.With(next)) {
			return true
		}
	}
	return false
}

func sortedSet(s frozen.Set) []string {
	out := make([]string, 0, s.Count())
	for _, e := range s.Elements() {
		out = append(out, e.(string))
	}
	sort.Strings(out)
	return out
}

// CheckLeftRecursion fails if any rule is left recursive.
func (ps Productions) CheckLeftRecursion() error {
	if rules := ps.LeftRecursive(); len(rules) > 0 {
		return fmt.Errorf("left recursive rule(s): %s", strings.Join(rules, ", "))
	}
	return nil
}
