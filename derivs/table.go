package derivs

import (
	"fmt"

	"github.com/arr-ai/packrat/parse"
)

// Node is the derivation at one input position: "the grammar applied from
// here". Nodes are created on demand by their Table and never copied.
type Node struct {
	t   *Table
	pos int
}

// Table owns every node and memo slot of a single top-level parse.
type Table struct {
	grammar  *Grammar
	src      *parse.Source
	memo     Memo
	nodes    []*Node
	furthest int
	depth    int

	hits   int
	misses int
	evals  map[int]int // evaluations per (position, rule) key
}

// Root is the node at position 0.
func (t *Table) Root() *Node {
	return t.node(0)
}

// Run applies the grammar's start rule at the root.
func (t *Table) Run() Result {
	return t.Root().Apply(t.grammar.start)
}

// Furthest is a view of the input from the furthest position any rule
// inspected, which is where a failed parse is reported.
func (t *Table) Furthest() *parse.Scanner {
	return t.src.Scanner(t.furthest)
}

func (t *Table) node(pos int) *Node {
	if n := t.nodes[pos]; n != nil {
		return n
	}
	n := &Node{t: t, pos: pos}
	t.nodes[pos] = n
	return n
}

func (t *Table) key(pos int, r Rule) int {
	return pos*len(t.grammar.rules) + int(r)
}

func (t *Table) apply(n *Node, r Rule) Result {
	def := t.grammar.rule(r)
	if res, has := t.memo.Lookup(n.pos, r); has {
		t.hits++
		return res
	}
	t.misses++
	t.evals[t.key(n.pos, r)]++

	tr := t.enterf("%s@%d", def.Name, n.pos)
	res := def.Parse(n)
	tr.exitf("%s", res)

	if _, has := t.memo.Lookup(n.pos, r); has {
		panic(fmt.Errorf("%s: rule %s at %d memoized twice", t.grammar.name, def.Name, n.pos))
	}
	t.memo.Store(n.pos, r, res)
	return res
}

func (n *Node) Pos() int {
	return n.pos
}

func (n *Node) AtEnd() bool {
	return n.pos >= n.t.src.Len()
}

// Next is the node one position on. At the end of input it is the node
// itself.
func (n *Node) Next() *Node {
	if n.AtEnd() {
		return n
	}
	return n.t.node(n.pos + 1)
}

// Char yields the current character resting at the next node, or NoParse at
// the end of input.
func (n *Node) Char() Result {
	if n.pos > n.t.furthest {
		n.t.furthest = n.pos
	}
	ch, ok := n.t.src.At(n.pos)
	if !ok {
		return NoParse{}
	}
	return Parsed{Value: ch, Rest: n.Next()}
}

// Match consumes ch if it is the current character.
func (n *Node) Match(ch byte) (*Node, bool) {
	if p, ok := n.Char().(Parsed); ok && p.Value.(byte) == ch {
		return p.Rest, true
	}
	return nil, false
}

// Apply evaluates rule r at this node, at most once per node under a
// memoizing policy.
func (n *Node) Apply(r Rule) Result {
	return n.t.apply(n, r)
}

// Parsed is a success that consumes nothing and rests at n.
func (n *Node) Parsed(v any) Result {
	return Parsed{Value: v, Rest: n}
}

// Scanner is a view of the input from n to the end.
func (n *Node) Scanner() *parse.Scanner {
	return n.t.src.Scanner(n.pos)
}

func (n *Node) String() string {
	return fmt.Sprintf("%s@%d", n.t.grammar.name, n.pos)
}
