package derivs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/packrat/parse"
)

const (
	sum Rule = iota
	term
	digit
)

// sum ← term '+' sum | term
// term ← '(' sum ')' | digit
var testGrammar = NewGrammar("test", sum, []RuleDef{
	sum: {"Sum", Alt(
		Ref(term).Chain(func(l any) Parser {
			return Symbol('+').Then(Ref(sum)).Map(func(r any) any { return l.(int) + r.(int) })
		}),
		Ref(term),
	)},
	term: {"Term", Alt(
		Symbol('(').Then(Ref(sum)).Skip(Symbol(')')),
		Ref(digit),
	)},
	digit: {"DigitValue", OneOf("0123456789").Map(func(v any) any { return int(v.(byte) - '0') })},
})

func derive(policy MemoPolicy, input string) *Table {
	return testGrammar.Derive(parse.NewSource(input), policy)
}

func TestRun(t *testing.T) {
	for _, policy := range []struct {
		name string
		memo MemoPolicy
	}{
		{"unmemoized", Unmemoized},
		{"arena", Arena},
		{"persistent", Persistent},
	} {
		policy := policy
		t.Run(policy.name, func(t *testing.T) {
			t.Parallel()

			tbl := derive(policy.memo, "(1+2)+3")
			r, ok := tbl.Run().(Parsed)
			require.True(t, ok)
			assert.Equal(t, 6, r.Value)
			assert.True(t, r.Rest.AtEnd())

			assert.IsType(t, NoParse{}, derive(policy.memo, "+1").Run())
		})
	}
}

func TestChar(t *testing.T) {
	t.Parallel()

	root := derive(Arena, "ab").Root()
	a, ok := root.Char().(Parsed)
	require.True(t, ok)
	assert.Equal(t, byte('a'), a.Value)
	assert.Equal(t, 1, a.Rest.Pos())
	assert.Same(t, a.Rest, root.Next())

	b := a.Rest.Char().(Parsed)
	assert.Equal(t, byte('b'), b.Value)
	assert.True(t, b.Rest.AtEnd())
	assert.Equal(t, NoParse{}, b.Rest.Char())
	assert.Same(t, b.Rest, b.Rest.Next())
}

func TestSymbol(t *testing.T) {
	t.Parallel()

	root := derive(Arena, "+").Root()
	assert.Equal(t, NoParse{}, Symbol('-')(root))
	r := Symbol('+')(root).(Parsed)
	assert.Equal(t, byte('+'), r.Value)
	assert.Equal(t, NoParse{}, Symbol('+')(r.Rest))
}

func TestAltIsOrdered(t *testing.T) {
	t.Parallel()

	root := derive(Arena, "x").Root()
	r := Alt(Fail, Return("first"), Return("second"))(root).(Parsed)
	assert.Equal(t, "first", r.Value)
	assert.Same(t, root, r.Rest)
	assert.Equal(t, NoParse{}, Alt()(root))
}

func TestSeq(t *testing.T) {
	t.Parallel()

	root := derive(Arena, "1+2").Root()
	r := Seq(Ref(digit), Symbol('+'), Ref(digit))(root).(Parsed)
	assert.Equal(t, []any{1, byte('+'), 2}, r.Value)
	assert.Equal(t, 3, r.Rest.Pos())

	assert.Equal(t, NoParse{}, Seq(Ref(digit), Symbol('*'))(root))
	assert.Equal(t, []any{}, Seq()(root).(Parsed).Value)
}

func TestWhere(t *testing.T) {
	t.Parallel()

	root := derive(Arena, "7").Root()
	odd := Ref(digit).Where(func(v any) bool { return v.(int)%2 == 1 })
	even := Ref(digit).Where(func(v any) bool { return v.(int)%2 == 0 })
	assert.Equal(t, 7, odd(root).(Parsed).Value)
	assert.Equal(t, NoParse{}, even(root))
}

func TestMemoReturnsIdenticalResult(t *testing.T) {
	for _, memo := range []MemoPolicy{Arena, Persistent} {
		tbl := derive(memo, "1+2")
		root := tbl.Root()
		first := root.Apply(sum).(Parsed)
		hits := tbl.Stats().Hits
		second := root.Apply(sum).(Parsed)

		assert.Equal(t, first.Value, second.Value)
		assert.Same(t, first.Rest, second.Rest)
		assert.Equal(t, hits+1, tbl.Stats().Hits)
		assert.Equal(t, 1, tbl.Stats().MaxPerKey)
	}
}

func TestUnmemoizedReevaluates(t *testing.T) {
	t.Parallel()

	tbl := derive(Unmemoized, "((1))")
	require.True(t, Ok(tbl.Run()))
	stats := tbl.Stats()
	assert.Zero(t, stats.Hits)
	assert.Greater(t, stats.MaxPerKey, 1)

	memo := derive(Arena, "((1))")
	require.True(t, Ok(memo.Run()))
	assert.Less(t, memo.Stats().Misses, stats.Misses)
}

func TestMemoBound(t *testing.T) {
	t.Parallel()

	input := "((1+2)+(3+(4+5)))+6"
	tbl := derive(Arena, input)
	require.Equal(t, 21, tbl.Run().(Parsed).Value)

	stats := tbl.Stats()
	assert.Equal(t, 1, stats.MaxPerKey)
	assert.LessOrEqual(t, stats.Misses, (len(input)+1)*len(testGrammar.Rules()))
	assert.LessOrEqual(t, stats.Positions, len(input)+1)
}

func TestNodesAreMaterializedLazily(t *testing.T) {
	t.Parallel()

	tbl := derive(Arena, "1+2")
	_ = tbl.Root().Apply(digit)
	assert.Equal(t, 2, tbl.Stats().Positions)
	assert.Equal(t, 0, tbl.Furthest().Offset())
}

func TestFurthest(t *testing.T) {
	t.Parallel()

	tbl := derive(Arena, "(1+")
	assert.Equal(t, NoParse{}, tbl.Run())
	assert.Equal(t, 3, tbl.Furthest().Offset())
}

func TestGrammarRules(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Rule{sum, term, digit}, testGrammar.Rules())
	assert.Equal(t, "Term", testGrammar.RuleName(term))
	assert.Equal(t, "rule#7", testGrammar.RuleName(7))
	assert.Equal(t, "test", testGrammar.Name())
	assert.Equal(t, sum, testGrammar.Start())
}

func TestUndefinedRulePanics(t *testing.T) {
	t.Parallel()

	g := NewGrammar("sparse", 1, []RuleDef{1: {"One", Return(1)}})
	tbl := g.Derive(parse.NewSource(""), Arena)
	assert.Equal(t, 1, tbl.Run().(Parsed).Value)
	assert.Panics(t, func() { tbl.Root().Apply(0) })
	assert.Panics(t, func() { NewGrammar("empty", 0, nil) })
	assert.Panics(t, func() { NewGrammar("half", 0, []RuleDef{{Name: "Half"}}) })
}

type doubleStore struct{ Memo }

func (doubleStore) Lookup(int, Rule) (Result, bool) { return nil, false }

func TestStoreTwicePanics(t *testing.T) {
	t.Parallel()

	reentrant := NewGrammar("reentrant", 0, []RuleDef{
		{"Outer", func(d *Node) Result {
			// Recursion at the same position on a table that does not
			// remember the first evaluation.
			if d.Pos() == 0 {
				d.t.memo.Store(0, 0, NoParse{})
			}
			return NoParse{}
		}},
	})
	tbl := reentrant.Derive(parse.NewSource(""), Arena)
	assert.Panics(t, func() { tbl.Run() })

	lenient := reentrant.Derive(parse.NewSource(""), func(p, r int) Memo { return doubleStore{NewArenaMemo(p, r)} })
	assert.NotPanics(t, func() { lenient.Run() })
}

func TestStatsTree(t *testing.T) {
	t.Parallel()

	tbl := derive(Arena, "1")
	tbl.Run()
	out := tbl.Stats().String()
	assert.Contains(t, out, "digit_value: 1")
	assert.Contains(t, out, "max evaluations per key: 1")
}

func TestResultString(t *testing.T) {
	t.Parallel()

	root := derive(Arena, "1").Root()
	assert.Equal(t, "Parsed(1)@1", root.Apply(digit).(Parsed).String())
	assert.Equal(t, "NoParse", NoParse{}.String())
	assert.Equal(t, "test@0", root.String())
}
