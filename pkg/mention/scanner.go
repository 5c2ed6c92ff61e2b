// scanner.go implements the lazy mention scanner over a text buffer.
package mention

import (
	"io"
	"strings"
)

// Span is a half-open [Start, End) byte range into the scanned input.
type Span struct {
	Start int
	End   int
}

// ParsedMention is a successfully recognized mention together with the byte
// range of its markup, including both delimiters.
type ParsedMention struct {
	Mention
	Span Span
}

// Scanner walks a text buffer left to right, yielding every mention
// candidate it finds. The input is borrowed and never mutated, so any
// number of scanners may read the same string concurrently. A Scanner is
// not restartable; construct a new one to re-scan.
type Scanner struct {
	input  string
	pos    int
	filter map[Kind]bool // nil means all kinds
}

// NewScanner returns a scanner over input. If kinds are given, only those
// mention kinds are recognized; markup of other kinds is passed over as
// plain text.
func NewScanner(input string, kinds ...Kind) *Scanner {
	s := &Scanner{input: input}
	if len(kinds) > 0 {
		s.filter = make(map[Kind]bool, len(kinds))
		for _, k := range kinds {
			s.filter[k] = true
		}
	}
	return s
}

// Next returns the next mention candidate. A well-formed candidate comes
// back as a ParsedMention, a malformed one as a *ParseError describing the
// offending region. io.EOF reports end of input and is terminal: every
// later call returns io.EOF again.
//
// Candidates never overlap and arrive in increasing span order. A '<' with
// no recognized sigil after it is ordinary text, not an error. After a
// malformed candidate the scanner resumes one byte past the candidate's
// open delimiter, so mentions embedded in malformed-looking text are not
// skipped.
func (s *Scanner) Next() (ParsedMention, error) {
	for s.pos < len(s.input) {
		off := strings.IndexByte(s.input[s.pos:], openDelim)
		if off < 0 {
			s.pos = len(s.input)
			break
		}
		open := s.pos + off

		entry, ok := matchSigil(s.input, open+1, s.filter)
		if !ok {
			s.pos = open + 1
			continue
		}

		m, perr := parseCandidate(s.input, open, entry)
		if perr != nil {
			s.pos = open + 1
			return ParsedMention{}, perr
		}
		s.pos = m.Span.End
		return m, nil
	}
	return ParsedMention{}, io.EOF
}

// Mentions collects every well-formed mention in input, discarding
// malformed candidates. It is a convenience wrapper over Scanner.
func Mentions(input string, kinds ...Kind) []ParsedMention {
	var out []ParsedMention
	s := NewScanner(input, kinds...)
	for {
		m, err := s.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			continue
		}
		out = append(out, m)
	}
}
