// parse.go implements strict single-mention parsing.
package mention

import "fmt"

// Parse parses input that must consist of exactly one well-formed mention,
// delimiters included, and returns its typed payload.
//
// Unlike Scanner, which treats a '<' without a recognized sigil as plain
// text, Parse reports it: input not starting with '<' fails with
// CodeNoLeadingDelimiter, and a '<' followed by an unknown sigil fails with
// CodeUnrecognizedSigil. Content after the close delimiter is also an
// error.
func Parse(input string) (Mention, error) {
	if len(input) == 0 || input[0] != openDelim {
		end := 0
		if len(input) > 0 {
			end = 1
		}
		return Mention{}, &ParseError{Code: CodeNoLeadingDelimiter, Start: 0, End: end}
	}

	entry, ok := matchSigil(input, 1, nil)
	if !ok {
		end := 2
		if end > len(input) {
			end = len(input)
		}
		return Mention{}, &ParseError{Code: CodeUnrecognizedSigil, Start: 0, End: end}
	}

	m, perr := parseCandidate(input, 0, entry)
	if perr != nil {
		return Mention{}, perr
	}
	if m.Span.End != len(input) {
		return Mention{}, fmt.Errorf("unexpected content after mention at offset %d", m.Span.End)
	}
	return m.Mention, nil
}
