package fmtcmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/mention-cli/pkg/mention"
)

func TestRunIDMention(t *testing.T) {
	tests := []struct {
		name string
		kind mention.Kind
		id   string
		want string
	}{
		{"user", mention.KindUser, "175928847299117063", "<@175928847299117063>"},
		{"role", mention.KindRole, "123", "<@&123>"},
		{"channel", mention.KindChannel, "456", "<#456>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runIDMention(tt.kind, tt.id, &buf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(buf.String()))
		})
	}
}

func TestRunIDMention_InvalidID(t *testing.T) {
	var buf bytes.Buffer
	err := runIDMention(mention.KindUser, "abc", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid snowflake")
}

func TestRunEmoji(t *testing.T) {
	var buf bytes.Buffer
	err := runEmoji("party", "987654", false, &buf)
	require.NoError(t, err)
	assert.Equal(t, "<:party:987654>", strings.TrimSpace(buf.String()))
}

func TestRunEmoji_Animated(t *testing.T) {
	var buf bytes.Buffer
	err := runEmoji("wave", "987654", true, &buf)
	require.NoError(t, err)
	assert.Equal(t, "<a:wave:987654>", strings.TrimSpace(buf.String()))
}

func TestRunTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		unix  string
		style string
		want  string
	}{
		{"unstyled", "1650000000", "", "<t:1650000000>"},
		{"style code", "1650000000", "R", "<t:1650000000:R>"},
		{"style name", "1650000000", "long-date", "<t:1650000000:D>"},
		{"negative", "-86400", "", "<t:-86400>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runTimestamp(tt.unix, tt.style, &buf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(buf.String()))
		})
	}
}

func TestRunTimestamp_Now(t *testing.T) {
	var buf bytes.Buffer
	err := runTimestamp("now", "R", &buf)
	require.NoError(t, err)

	output := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(output, "<t:"))
	assert.True(t, strings.HasSuffix(output, ":R>"))
}

func TestRunTimestamp_Invalid(t *testing.T) {
	var buf bytes.Buffer

	err := runTimestamp("soon", "", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid unix timestamp")

	err = runTimestamp("1650000000", "x", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid style code")

	err = runTimestamp("1650000000", "sometime", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid style")
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		arg  string
		want mention.TimestampStyle
	}{
		{"", mention.StyleNone},
		{"t", mention.StyleShortTime},
		{"T", mention.StyleLongTime},
		{"R", mention.StyleRelativeTime},
		{"short-date", mention.StyleShortDate},
		{"long-datetime", mention.StyleLongDateTime},
		{"relative", mention.StyleRelativeTime},
	}

	for _, tt := range tests {
		got, err := parseStyle(tt.arg)
		require.NoError(t, err, "style %q", tt.arg)
		assert.Equal(t, tt.want, got, "style %q", tt.arg)
	}
}

func TestNewCmdFmt_Subcommands(t *testing.T) {
	cmd := NewCmdFmt()
	assert.Len(t, cmd.Commands(), 5)
}
