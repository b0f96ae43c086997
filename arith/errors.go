package arith

import (
	"errors"
	"fmt"

	"github.com/arr-ai/packrat/gotree"
	"github.com/arr-ai/packrat/parse"
)

// ParseError reports that an engine could not derive a value for its input.
type ParseError struct {
	Engine string
	Rule   string
	At     *parse.Scanner // where the failure was detected
	// Partial is set by strict engines when the start rule matched a prefix
	// of the input.
	Partial *int
}

func (e *ParseError) Error() string {
	tree := gotree.New("parse failed")
	var msg string
	if e.Partial != nil {
		msg = fmt.Sprintf("unconsumed input after %s = %d", e.Rule, *e.Partial)
	} else {
		msg = fmt.Sprintf("no derivation for %s", e.Rule)
	}
	x := tree.Add(fmt.Sprintf("engine(%s) - %s", e.Engine, msg))
	line, col := e.At.Position()
	x.Add(fmt.Sprintf("at %d:%d: %q", line, col, e.At))
	return "\n" + tree.Print()
}

// Context renders the input with the failure point highlighted.
func (e *ParseError) Context() string {
	return e.At.Context()
}

var ErrDivideByZero = errors.New("division by zero")

// ArithmeticError is a failure of evaluation rather than parsing. It is
// returned only when the value of the whole parse is undefined.
type ArithmeticError struct {
	Op          byte
	Left, Right int
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s: %d %c %d", ErrDivideByZero, e.Left, e.Op, e.Right)
}

func (e *ArithmeticError) Unwrap() error {
	return ErrDivideByZero
}
