package cmd

import (
	"fmt"
	"io"

	"github.com/iancoleman/strcase"
	"github.com/urfave/cli"

	"github.com/arr-ai/packrat/arith"
)

var (
	startingRule string
	checkGrammar bool
)

var grammarCommand = cli.Command{
	Name:    "grammar",
	Aliases: []string{"g"},
	Usage:   "Print an engine's grammar as EBNF",
	Action:  printGrammarAction,
	Before:  setupLogging,
	Flags: []cli.Flag{
		engineFlag,
		verboseFlag,
		cli.StringFlag{
			Name:        "start",
			Usage:       "print only the productions reachable from this rule",
			Destination: &startingRule,
		},
		cli.BoolFlag{
			Name:        "check",
			Usage:       "verify the grammar with golang.org/x/exp/ebnf",
			Destination: &checkGrammar,
		},
	},
}

func printGrammarAction(c *cli.Context) error {
	e, err := selectedEngine()
	if err != nil {
		return err
	}
	return printGrammar(c.App.Writer, e, startingRule, checkGrammar)
}

// printGrammar writes e's productions reachable from start, which may be
// given in any case ("multitive_suffix" names MultitiveSuffix). An empty start
// means the engine's start rule.
func printGrammar(w io.Writer, e arith.Engine, start string, check bool) error {
	ps := e.Grammar()
	if start == "" {
		start = ps[0].Name
	}
	start = strcase.ToCamel(start)
	ps, err := ps.From(start)
	if err != nil {
		return fmt.Errorf("%s: %w", e.Name(), err)
	}
	if _, err := fmt.Fprint(w, ps.EBNF()); err != nil {
		return err
	}
	if !check {
		return nil
	}
	if err := ps.Verify(start); err != nil {
		return fmt.Errorf("%s: %w", e.Name(), err)
	}
	if rec := ps.LeftRecursive(); rec != nil {
		return fmt.Errorf("%s: left recursive: %v", e.Name(), rec)
	}
	_, err = fmt.Fprintf(w, "# %s: ok\n", e.Name())
	return err
}
