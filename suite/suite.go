// Package suite runs declarative test records and reports them in the Test
// Anything Protocol.
package suite

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

// Case is one record: given some input, the action should produce Expect.
// An Expect that is an error matches a returned error that wraps it. An Expect
// that is a pointer to a zero value, such as &ParseError{}, matches any error
// of that type.
type Case struct {
	Given  string
	Should string
	Actual func() (any, error)
	Expect any
}

type diagnostic struct {
	Given    string `yaml:"given"`
	Should   string `yaml:"should"`
	Expected string `yaml:"expected"`
	Actual   string `yaml:"actual,omitempty"`
	Error    string `yaml:"error,omitempty"`
}

// Check runs the case and reports whether it passed.
func (c Case) Check() (bool, any, error) {
	actual, err := c.Actual()
	if expected, ok := c.Expect.(error); ok {
		return matchError(err, expected), actual, err
	}
	return err == nil && assert.ObjectsAreEqual(c.Expect, actual), actual, err
}

func matchError(err, expected error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, expected) {
		return true
	}
	v := reflect.ValueOf(expected)
	if v.Kind() != reflect.Pointer || v.IsNil() || !v.Elem().IsZero() {
		return false
	}
	return errors.As(err, reflect.New(v.Type()).Interface())
}

// Run writes a TAP version 13 stream for cases under the heading name and
// returns the number of failures.
func Run(w io.Writer, name string, cases []Case) (int, error) {
	tw := &tapWriter{w: w}
	tw.printf("TAP version 13\n")
	tw.printf("# %s\n", name)
	failures := 0
	for i, c := range cases {
		passed, actual, err := c.Check()
		desc := fmt.Sprintf("Given %s: should %s", c.Given, c.Should)
		if passed {
			tw.printf("ok %d - %s\n", i+1, desc)
			continue
		}
		failures++
		tw.printf("not ok %d - %s\n", i+1, desc)

		d := diagnostic{Given: c.Given, Should: c.Should, Expected: describe(c.Expect)}
		if err != nil {
			d.Error = strings.TrimSpace(err.Error())
		} else {
			d.Actual = describe(actual)
		}
		tw.yaml(d)
	}
	tw.printf("1..%d\n", len(cases))
	return failures, tw.err
}

func describe(v any) string {
	if err, ok := v.(error); ok {
		return fmt.Sprintf("error %T", err)
	}
	return fmt.Sprintf("%v", v)
}

// tapWriter remembers the first write error so Run can report it once.
type tapWriter struct {
	w   io.Writer
	err error
}

func (tw *tapWriter) printf(format string, args ...any) {
	if tw.err == nil {
		_, tw.err = fmt.Fprintf(tw.w, format, args...)
	}
}

func (tw *tapWriter) yaml(v any) {
	if tw.err != nil {
		return
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		tw.err = err
		return
	}
	tw.printf("  ---\n")
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		tw.printf("  %s\n", line)
	}
	tw.printf("  ...\n")
}
