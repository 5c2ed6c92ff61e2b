// Package mention formats and parses Discord mention markup.
//
// Mention markup is the inline syntax Discord uses to reference users,
// roles, channels, custom emoji and timestamps inside message text:
// <@123>, <@&123>, <#123>, <:name:123>, <a:name:123>, <t:1650000000:R>.
//
// The formatting side builds markup from typed values (see Mention.String).
// The parsing side recovers typed values from arbitrary text: Scanner walks
// a buffer and yields every candidate it finds, Parse validates a string
// that must be exactly one mention.
package mention

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/open-cli-collective/mention-cli/pkg/snowflake"
)

// Kind identifies which flavor of mention markup a Mention carries.
type Kind int

const (
	KindUser      Kind = iota // <@ID>
	KindRole                  // <@&ID>
	KindChannel               // <#ID>
	KindEmoji                 // <:name:ID> or <a:name:ID>
	KindTimestamp             // <t:UNIX> or <t:UNIX:STYLE>
)

// Kinds returns every mention kind.
func Kinds() []Kind {
	return []Kind{KindUser, KindRole, KindChannel, KindEmoji, KindTimestamp}
}

// String returns the lowercase name of the kind, as accepted by ParseKind.
func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindRole:
		return "role"
	case KindChannel:
		return "channel"
	case KindEmoji:
		return "emoji"
	case KindTimestamp:
		return "timestamp"
	}
	return "unknown"
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if s == k.String() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown mention kind %q: must be one of user, role, channel, emoji, timestamp", s)
}

// Mention is one typed mention payload. Kind selects which of the remaining
// fields are meaningful: ID for user, role, channel and emoji mentions; Name
// and Animated additionally for emoji; Unix and Style for timestamps.
type Mention struct {
	Kind     Kind
	ID       snowflake.ID
	Name     string // emoji display name; captured as-is, never validated
	Animated bool
	Unix     int64
	Style    TimestampStyle
}

// User mentions a user by ID.
func User(id snowflake.ID) Mention {
	return Mention{Kind: KindUser, ID: id}
}

// Role mentions a role by ID.
func Role(id snowflake.ID) Mention {
	return Mention{Kind: KindRole, ID: id}
}

// Channel mentions a channel by ID.
func Channel(id snowflake.ID) Mention {
	return Mention{Kind: KindChannel, ID: id}
}

// Emoji mentions a static custom emoji.
func Emoji(name string, id snowflake.ID) Mention {
	return Mention{Kind: KindEmoji, Name: name, ID: id}
}

// AnimatedEmoji mentions an animated custom emoji.
func AnimatedEmoji(name string, id snowflake.ID) Mention {
	return Mention{Kind: KindEmoji, Name: name, ID: id, Animated: true}
}

// Timestamp mentions a point in time without a display style; clients
// render it with their default style.
func Timestamp(unix int64) Mention {
	return Mention{Kind: KindTimestamp, Unix: unix}
}

// StyledTimestamp mentions a point in time with an explicit display style.
func StyledTimestamp(unix int64, style TimestampStyle) Mention {
	return Mention{Kind: KindTimestamp, Unix: unix, Style: style}
}

// String renders the canonical markup for the mention. Successful parsing
// is the exact inverse: Parse(m.String()) recovers m.
func (m Mention) String() string {
	var b strings.Builder
	b.WriteByte(openDelim)
	switch m.Kind {
	case KindUser:
		b.WriteString("@")
		b.WriteString(m.ID.String())
	case KindRole:
		b.WriteString("@&")
		b.WriteString(m.ID.String())
	case KindChannel:
		b.WriteString("#")
		b.WriteString(m.ID.String())
	case KindEmoji:
		if m.Animated {
			b.WriteString("a")
		}
		b.WriteByte(fieldSep)
		b.WriteString(m.Name)
		b.WriteByte(fieldSep)
		b.WriteString(m.ID.String())
	case KindTimestamp:
		b.WriteString("t")
		b.WriteByte(fieldSep)
		b.WriteString(strconv.FormatInt(m.Unix, 10))
		if m.Style != StyleNone {
			b.WriteByte(fieldSep)
			b.WriteByte(m.Style.Code())
		}
	}
	b.WriteByte(closeDelim)
	return b.String()
}
