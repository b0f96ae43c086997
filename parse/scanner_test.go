package parse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScannerLineColumn(t *testing.T) {
	src := NewSource("1+\n2*\n(3+4)")

	assertLineColumn(t, src.Scanner(0), 1, 1)
	assertLineColumn(t, src.Scanner(1), 1, 2)
	assertLineColumn(t, src.Scanner(3), 2, 1)
	assertLineColumn(t, src.Scanner(7), 3, 2)
}

func assertLineColumn(t *testing.T, scanner *Scanner, line, column int) {
	l, c := scanner.Position()
	assert.Equal(t, line, l)
	assert.Equal(t, column, c)
}

func TestSourceAt(t *testing.T) {
	t.Parallel()

	src := NewSource("2*3")
	assert.Equal(t, 3, src.Len())

	for i, expected := range []byte("2*3") {
		ch, ok := src.At(i)
		assert.True(t, ok)
		assert.Equal(t, expected, ch)
	}

	_, ok := src.At(3)
	assert.False(t, ok)
	_, ok = src.At(-1)
	assert.False(t, ok)
}

func TestScannerFormat(t *testing.T) {
	t.Parallel()

	s := NewSource("(4+3)*2").Scanner(5)
	assert.Equal(t, "*2", s.String())
	assert.Equal(t, 5, s.Offset())
	assert.Equal(t, `"*2"`, fmt.Sprintf("%q", s))
	assert.Equal(t, "*2", fmt.Sprintf("%v", s))

	end := NewSource("12").Scanner(100)
	assert.Equal(t, 2, end.Offset())
	assert.Equal(t, "", end.String())
}

func TestScannerContext(t *testing.T) {
	t.Parallel()

	src := NewSourceWithFilename("2*(3", "expr.txt")
	ctx := src.Scanner(2).Context()
	assert.Contains(t, ctx, "expr.txt:1:3:")
	assert.Contains(t, ctx, "\033[1;31m(3\033[0m")

	assert.Contains(t, src.Scanner(4).Context(), "⏎")
	assert.Equal(t, "", Scanner{}.Context())
}
