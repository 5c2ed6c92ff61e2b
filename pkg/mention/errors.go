// errors.go defines the parse error taxonomy shared by Scanner and Parse.
package mention

import "fmt"

// ErrorCode classifies why a mention candidate failed to parse.
type ErrorCode int

const (
	CodeNoLeadingDelimiter    ErrorCode = iota // input does not start with '<'
	CodeNoTrailingDelimiter                    // body parsed but '>' is missing
	CodeUnrecognizedSigil                      // '<' not followed by a known sigil
	CodeEmptyBody                              // a required digit run is empty
	CodeIdentifierMalformed                    // non-digit inside a digit run
	CodeIdentifierTooLarge                     // value exceeds the unsigned 64-bit range
	CodeTimestampStyleInvalid                  // unknown timestamp style code
)

// String returns a readable name for the code.
func (c ErrorCode) String() string {
	switch c {
	case CodeNoLeadingDelimiter:
		return "no leading delimiter"
	case CodeNoTrailingDelimiter:
		return "no trailing delimiter"
	case CodeUnrecognizedSigil:
		return "unrecognized sigil"
	case CodeEmptyBody:
		return "empty body"
	case CodeIdentifierMalformed:
		return "malformed identifier"
	case CodeIdentifierTooLarge:
		return "identifier too large"
	case CodeTimestampStyleInvalid:
		return "invalid timestamp style"
	}
	return "unknown error"
}

// ParseError describes a malformed mention candidate. Start and End are
// byte offsets into the parsed input, covering the region consumed before
// the failure was detected.
type ParseError struct {
	Code  ErrorCode
	Start int
	End   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at bytes [%d:%d)", e.Code, e.Start, e.End)
}
