package mention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Success(t *testing.T) {
	tests := []struct {
		input string
		want  Mention
	}{
		{"<@123>", User(123)},
		{"<@&45>", Role(45)},
		{"<#678>", Channel(678)},
		{"<:party:9999>", Emoji("party", 9999)},
		{"<a:blob:42>", AnimatedEmoji("blob", 42)},
		{"<t:1650000000>", Timestamp(1650000000)},
		{"<t:1650000000:R>", StyledTimestamp(1650000000, StyleRelativeTime)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  ErrorCode
	}{
		{"empty input", "", CodeNoLeadingDelimiter},
		{"no delimiter", "@123>", CodeNoLeadingDelimiter},
		{"plain id", "123", CodeNoLeadingDelimiter},
		{"unknown sigil", "<x123>", CodeUnrecognizedSigil},
		{"bare brackets", "<>", CodeUnrecognizedSigil},
		{"empty body", "<@>", CodeEmptyBody},
		{"malformed id", "<@12x>", CodeIdentifierMalformed},
		{"overflow", "<@99999999999999999999>", CodeIdentifierTooLarge},
		{"unterminated", "<@123", CodeNoTrailingDelimiter},
		{"bad style", "<t:1:Z>", CodeTimestampStyleInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.code, perr.Code)
		})
	}
}

func TestParse_TrailingContent(t *testing.T) {
	_, err := Parse("<@123> hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected content after mention")

	// The scanner, by contrast, happily finds the mention in context.
	oks, errs := collect(t, NewScanner("<@123> hello"))
	assert.Empty(t, errs)
	assert.Len(t, oks, 1)
}
