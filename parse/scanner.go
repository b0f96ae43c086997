package parse

import (
	"fmt"
	"strings"
)

// Scanner is a window onto a Source.
type Scanner struct {
	src         *Source // the source the scanner is drawing from
	sliceStart  int     // the start of the slice visible to the scanner
	sliceLength int     // the length of the slice visible to the scanner
}

// The name of the file from which the source is derived (or empty if none).
func (s Scanner) Filename() string {
	return s.src.filename
}

func (s Scanner) String() string {
	if s.src == nil {
		return ""
	}
	return s.slice()
}

func (s Scanner) Format(state fmt.State, c rune) {
	if c == 'q' {
		_, _ = fmt.Fprintf(state, "%q", s.String())
	} else {
		_, _ = state.Write([]byte(s.String()))
	}
}

// Context renders the whole input with the visible slice highlighted. An empty
// slice at the end of input is shown as a highlighted marker.
func (s Scanner) Context() string {
	if s.src == nil {
		return ""
	}
	end := s.sliceStart + s.sliceLength
	lineno, colno := s.Position()
	focus := s.slice()
	if focus == "" {
		focus = "⏎"
	}
	return fmt.Sprintf("\033[1;37m%s:%d:%d:\033[0m %s\033[1;31m%s\033[0m%s",
		s.Filename(),
		lineno,
		colno,
		s.src.text[:s.sliceStart],
		focus,
		s.src.text[end:],
	)
}

// The position of the start of the scanner within the original source.
func (s Scanner) Offset() int {
	return s.sliceStart
}

// The 1-indexed line and column number of the start of the scanner within the original source.
func (s Scanner) Position() (int, int) {
	return lineColumn(s.src.text, s.sliceStart)
}

func (s Scanner) slice() string {
	return s.src.text[s.sliceStart : s.sliceStart+s.sliceLength]
}

// The 1-indexed line and column number of the given position within the given string.
func lineColumn(str string, pos int) (line, col int) {
	prefix := str[:pos]
	line = strings.Count(prefix, "\n") + 1
	col = pos - strings.LastIndex(prefix, "\n")
	return
}
