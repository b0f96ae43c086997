package cmd

import (
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/arr-ai/packrat/arith"
	"github.com/arr-ai/packrat/suite"
)

var selftestCommand = cli.Command{
	Name:   "selftest",
	Usage:  "Run the built-in records against every engine and report TAP",
	Action: selftest,
	Before: setupLogging,
	Flags:  []cli.Flag{verboseFlag},
}

func selftest(c *cli.Context) error {
	failures, err := runSelfTest(c.App.Writer, arith.Engines())
	if err != nil {
		return err
	}
	if failures > 0 {
		return cli.NewExitError(fmt.Sprintf("%d failures", failures), 1)
	}
	return nil
}

func runSelfTest(w io.Writer, engines []arith.Engine) (int, error) {
	total := 0
	for _, e := range engines {
		failures, err := suite.Run(w, e.Name(), selfTestCases(e))
		if err != nil {
			return total, err
		}
		total += failures
	}
	return total, nil
}

type record struct {
	input  string
	should string
	expect any
}

var (
	naiveRecords = []record{
		{"2*(3+4)", "be 14", 14},
		{"(4+3)*2", "be 14", 14},
		{"2+3*5", "multiply first", 17},
		{"((", "fail to parse", &arith.ParseError{}},
		{"", "fail to parse", &arith.ParseError{}},
	}
	suffixRecords = []record{
		{"4-1+2-1", "associate to the left", 4},
		{"7%4", "be 3", 3},
		{"9%5/3", "be 1", 1},
		{"(4-1+2-1)*(9%5/3)", "be 4", 4},
		{"(1-4)/2", "round down", -2},
		{"(1-4)%2", "take the sign of the divisor", 1},
		{"1/0", "fail to divide", arith.ErrDivideByZero},
	}
	lexRecords = []record{
		{"2 * (    3+  4) ", "be 14", 14},
		{"11 % 4", "be 3", 3},
		{" 100 - 1", "be 99", 99},
		{"2 * (( + 3)", "stop after the 2", 2},
	}
)

func selfTestCases(e arith.Engine) []suite.Case {
	records := naiveRecords
	switch e.Name() {
	case arith.Left.Name():
		records = append(append([]record{}, records...), suffixRecords...)
	case arith.Lex.Name():
		records = append(append(append([]record{}, records...), suffixRecords...), lexRecords...)
	}
	cases := make([]suite.Case, 0, len(records))
	for _, r := range records {
		input := r.input
		cases = append(cases, suite.Case{
			Given:  fmt.Sprintf("%q", input),
			Should: r.should,
			Actual: func() (any, error) {
				v, err := e.Parse(input)
				return v, err
			},
			Expect: r.expect,
		})
	}
	return cases
}
