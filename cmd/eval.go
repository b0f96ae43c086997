package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/arr-ai/packrat/arith"
	"github.com/arr-ai/packrat/parse"
)

var evalCommand = cli.Command{
	Name:      "eval",
	Aliases:   []string{"e"},
	Usage:     "Evaluate expressions, one per argument or one per line of stdin",
	ArgsUsage: "[expr...]",
	Action:    eval,
	Flags:     []cli.Flag{engineFlag, strictFlag, verboseFlag},
	Before:    setupLogging,
}

func eval(c *cli.Context) error {
	e, err := selectedEngine()
	if err != nil {
		return err
	}
	exprs, filename := []string(c.Args()), "<args>"
	if len(exprs) == 0 {
		if exprs, err = readLines(os.Stdin); err != nil {
			return err
		}
		filename = "<stdin>"
	}
	return evalAll(c.App.Writer, e, filename, exprs)
}

// evalAll prints the value of each expression and stops at the first failure,
// showing where a parse failed.
func evalAll(w io.Writer, e arith.Engine, filename string, exprs []string) error {
	for _, expr := range exprs {
		v, _, err := e.ParseSource(parse.NewSourceWithFilename(expr, filename))
		if err != nil {
			var pe *arith.ParseError
			if errors.As(err, &pe) {
				_, _ = fmt.Fprintln(w, pe.Context())
			}
			return err
		}
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
