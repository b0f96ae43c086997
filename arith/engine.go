package arith

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/arr-ai/packrat/derivs"
	"github.com/arr-ai/packrat/grammar"
	"github.com/arr-ai/packrat/parse"
)

// Engine is one parsing technique: a grammar and a memo policy. Engines are
// immutable and safe for concurrent use; every parse builds its own
// derivation table.
type Engine struct {
	name        string
	about       string
	grammar     *derivs.Grammar
	memo        derivs.MemoPolicy
	productions grammar.Productions
	strict      bool
}

var (
	Recurse = Engine{
		name:        "recurse",
		about:       "plain recursive descent, '+' and '*' over single digits",
		grammar:     naiveGrammar,
		memo:        derivs.Unmemoized,
		productions: NaiveProductions,
	}
	Cache = Engine{
		name:        "cache",
		about:       "recursive descent with an explicit (position, rule) cache",
		grammar:     naiveGrammar,
		memo:        derivs.Persistent,
		productions: NaiveProductions,
	}
	Packrat = Engine{
		name:        "packrat",
		about:       "lazily derived nodes, each rule evaluated once per position",
		grammar:     naiveGrammar,
		memo:        derivs.Arena,
		productions: NaiveProductions,
	}
	Monad = Engine{
		name:        "monad",
		about:       "the packrat grammar written with combinators",
		grammar:     monadGrammar,
		memo:        derivs.Arena,
		productions: NaiveProductions,
	}
	Left = Engine{
		name:        "left",
		about:       "suffix grammar, left associative '+ - * / %'",
		grammar:     leftGrammar,
		memo:        derivs.Arena,
		productions: SuffixProductions,
	}
	Lex = Engine{
		name:        "lex",
		about:       "suffix grammar over tokens: multi-digit numbers and whitespace",
		grammar:     lexGrammar,
		memo:        derivs.Arena,
		productions: LexProductions,
	}
)

// Engines lists every engine, simplest first.
func Engines() []Engine {
	return []Engine{Recurse, Cache, Packrat, Monad, Left, Lex}
}

func Names() []string {
	names := make([]string, 0, 6)
	for _, e := range Engines() {
		names = append(names, e.name)
	}
	return names
}

func Lookup(name string) (Engine, error) {
	for _, e := range Engines() {
		if e.name == name {
			return e, nil
		}
	}
	names := Names()
	sort.Strings(names)
	return Engine{}, fmt.Errorf("unknown engine %q (want one of %s)", name, strings.Join(names, ", "))
}

// Parse evaluates input with the lex engine.
func Parse(input string) (int, error) {
	return Lex.Parse(input)
}

func (e Engine) Name() string {
	return e.name
}

func (e Engine) About() string {
	return e.about
}

// Grammar describes the grammar the engine runs.
func (e Engine) Grammar() grammar.Productions {
	return e.productions
}

// Strict returns a copy of e that fails unless the whole input is consumed.
// By default an engine returns the value of the longest prefix its start rule
// derives, so "2 * (( + 3)" is 2 for the lex engine.
func (e Engine) Strict() Engine {
	e.strict = true
	return e
}

func (e Engine) IsStrict() bool {
	return e.strict
}

// Parse evaluates input. It fails with a *ParseError if the grammar cannot
// derive a value, or an *ArithmeticError if the value it derives divides by
// zero.
func (e Engine) Parse(input string) (int, error) {
	v, _, err := e.ParseWithStats(input)
	return v, err
}

// ParseWithStats is Parse, also reporting the work the parse did.
func (e Engine) ParseWithStats(input string) (int, derivs.Stats, error) {
	return e.ParseSource(parse.NewSource(input))
}

// ParseSource is ParseWithStats over a source that may carry a filename for
// error context.
func (e Engine) ParseSource(src *parse.Source) (value int, stats derivs.Stats, err error) {
	table := e.grammar.Derive(src, e.memo)
	defer func() {
		stats = table.Stats()
		logrus.WithFields(logrus.Fields{
			"engine": e.name,
			"input":  src.String(),
			"hits":   stats.Hits,
			"misses": stats.Misses,
		}).Debugf("parsed: %v, %v", value, err)
	}()

	start := e.grammar.RuleName(e.grammar.Start())
	result, ok := table.Run().(derivs.Parsed)
	if !ok {
		return 0, stats, &ParseError{Engine: e.name, Rule: start, At: table.Furthest()}
	}
	switch v := result.Value.(type) {
	case num:
		if v.err != nil {
			return 0, stats, v.err
		}
		value = v.n
	default:
		value = v.(int)
	}
	if e.strict && !result.Rest.AtEnd() {
		partial := value
		return 0, stats, &ParseError{Engine: e.name, Rule: start, At: result.Rest.Scanner(), Partial: &partial}
	}
	return value, stats, nil
}
