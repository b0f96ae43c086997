// Package parse holds the character source shared by every derivation node of
// a parse, and positioned views over it used to report errors.
package parse

// Source is the immutable input of a single parse. It is built once and shared
// by reference; nothing ever copies or mutates the text.
type Source struct {
	text     string // the entire input
	filename string // the name of the file the input came from (or empty if none)
}

func NewSource(text string) *Source {
	return &Source{text: text}
}

func NewSourceWithFilename(text, filename string) *Source {
	return &Source{text: text, filename: filename}
}

// Len is the number of bytes in the input. Positions 0..Len are valid; Len is
// the end of input.
func (s *Source) Len() int {
	return len(s.text)
}

// At returns the character at pos, and false if pos is at or beyond the end of
// input.
func (s *Source) At(pos int) (byte, bool) {
	if pos < 0 || pos >= len(s.text) {
		return 0, false
	}
	return s.text[pos], true
}

func (s *Source) Filename() string {
	return s.filename
}

func (s *Source) String() string {
	return s.text
}

// Scanner returns a view of the input from pos to the end.
func (s *Source) Scanner(pos int) *Scanner {
	if pos > len(s.text) {
		pos = len(s.text)
	}
	return &Scanner{src: s, sliceStart: pos, sliceLength: len(s.text) - pos}
}
