package cmd

import (
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/arr-ai/packrat/arith"
)

var statsCommand = cli.Command{
	Name:      "stats",
	Usage:     "Show how much work an engine does for an expression",
	ArgsUsage: "expr",
	Action:    stats,
	Flags:     []cli.Flag{engineFlag, strictFlag, verboseFlag},
	Before:    setupLogging,
}

func stats(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("stats takes exactly one expression", 2)
	}
	e, err := selectedEngine()
	if err != nil {
		return err
	}
	return printStats(c.App.Writer, e, c.Args().First())
}

// printStats prints the stats tree for expr, under its value or its error.
func printStats(w io.Writer, e arith.Engine, expr string) error {
	v, s, err := e.ParseWithStats(expr)
	tree := s.Tree()
	if err != nil {
		_, _ = fmt.Fprint(w, tree.Print())
		return err
	}
	_, err = fmt.Fprintf(w, "%s(%q) = %d\n%s", e.Name(), expr, v, tree.Print())
	return err
}
