package grammar

// SuffixName is the name given to the suffix rule split off a left recursive
// rule.
func SuffixName(rule string) string {
	return rule + "Suffix"
}

// EliminateLeftRecursion rewrites every directly left recursive production
//
//	A ← A α1 | … | A αn | β1 | … | βm
//
// into a head and a right recursive suffix
//
//	A       ← β1 ASuffix | … | βm ASuffix
//	ASuffix ← α1 ASuffix | … | αn ASuffix | ε
//
// The suffix consumes at least one symbol before recursing, so it is safe
// under recursive descent, and it still sees operands left to right.
// Indirect left recursion is not rewritten; it is reported instead.
func (ps Productions) EliminateLeftRecursion() (Productions, error) {
	out := make(Productions, 0, len(ps))
	for _, p := range ps {
		var recursive, base []Alt
		for _, a := range p.Alts {
			if len(a) > 0 && a[0].IsRule() && a[0].Rule == p.Name {
				recursive = append(recursive, a[1:])
			} else {
				base = append(base, a)
			}
		}
		if len(recursive) == 0 {
			out = append(out, p)
			continue
		}

		suffix := SuffixName(p.Name)
		head := Production{Name: p.Name}
		for _, b := range base {
			head.Alts = append(head.Alts, appendSymbol(b, R(suffix)))
		}
		tail := Production{Name: suffix}
		for _, r := range recursive {
			tail.Alts = append(tail.Alts, appendSymbol(r, R(suffix)))
		}
		tail.Alts = append(tail.Alts, Alt{})
		out = append(out, head, tail)
	}
	return out, out.CheckLeftRecursion()
}

func appendSymbol(a Alt, s Symbol) Alt {
	return append(append(Alt{}, a...), s)
}
