// Package derivs is a packrat parsing engine built on derivation nodes: one
// lazily materialised node per input position, each of which evaluates a
// grammar rule at most once and remembers the result.
package derivs

import "fmt"

// Result is the outcome of applying a rule at a node: either Parsed or
// NoParse. No other implementations exist.
type Result interface {
	isResult()
}

// Parsed is a successful derivation. Rest is the node immediately after the
// consumed text.
type Parsed struct {
	Value any
	Rest  *Node
}

// NoParse is a failed derivation. It is an ordinary branch of ordered choice,
// not an error.
type NoParse struct{}

func (Parsed) isResult()  {}
func (NoParse) isResult() {}

func (p Parsed) String() string {
	return fmt.Sprintf("Parsed(%v)@%d", p.Value, p.Rest.Pos())
}

func (NoParse) String() string {
	return "NoParse"
}

// Ok reports whether r is Parsed.
func Ok(r Result) bool {
	_, ok := r.(Parsed)
	return ok
}
