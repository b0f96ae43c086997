package derivs

import "github.com/arr-ai/frozen"

// Memo caches results by (position, rule). A slot is written at most once.
type Memo interface {
	Lookup(pos int, r Rule) (Result, bool)
	Store(pos int, r Rule, res Result)
}

// MemoPolicy builds the memo for one parse of positions input positions
// (including the end of input) over a grammar with the given rule id range.
type MemoPolicy func(positions, rules int) Memo

var (
	// Unmemoized re-evaluates every rule application: plain recursive descent.
	Unmemoized MemoPolicy = func(int, int) Memo { return noMemo{} }

	// Arena caches into a position × rule array whose rows are allocated on
	// first visit.
	Arena MemoPolicy = NewArenaMemo

	// Persistent caches into a persistent map keyed by (position, rule).
	Persistent MemoPolicy = NewMapMemo
)

type noMemo struct{}

func (noMemo) Lookup(int, Rule) (Result, bool) { return nil, false }
func (noMemo) Store(int, Rule, Result)         {}

type arenaMemo struct {
	rules int
	rows  [][]Result
}

func NewArenaMemo(positions, rules int) Memo {
	return &arenaMemo{rules: rules, rows: make([][]Result, positions)}
}

func (m *arenaMemo) Lookup(pos int, r Rule) (Result, bool) {
	row := m.rows[pos]
	if row == nil {
		return nil, false
	}
	res := row[r]
	return res, res != nil
}

func (m *arenaMemo) Store(pos int, r Rule, res Result) {
	if m.rows[pos] == nil {
		m.rows[pos] = make([]Result, m.rules)
	}
	m.rows[pos][r] = res
}

type mapMemo struct {
	rules int
	m     frozen.Map // int → Result
}

func NewMapMemo(_, rules int) Memo {
	return &mapMemo{rules: rules}
}

func (m *mapMemo) Lookup(pos int, r Rule) (Result, bool) {
	if v, has := m.m.Get(pos*m.rules + int(r)); has {
		return v.(Result), true
	}
	return nil, false
}

func (m *mapMemo) Store(pos int, r Rule, res Result) {
	m.m = m.m.With(pos*m.rules+int(r), res)
}
