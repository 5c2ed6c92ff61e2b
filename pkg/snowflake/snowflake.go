// Package snowflake implements Discord snowflake identifiers.
//
// A snowflake is an unsigned 64-bit ID with a creation timestamp and worker
// metadata packed into its bits. Every user, role, channel, emoji, guild and
// message ID in the Discord API is a snowflake.
package snowflake

import (
	"fmt"
	"strconv"
	"time"
)

// Epoch is the Discord epoch: the first millisecond of 2015 UTC. Snowflake
// timestamps count milliseconds from this instant.
const Epoch int64 = 1420070400000

// ID is a snowflake identifier.
type ID uint64

// Parse decodes a decimal snowflake string.
func Parse(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake %q: %w", s, err)
	}
	return ID(v), nil
}

// FromTime returns the smallest ID with creation time t. Useful as a
// boundary value when filtering entities by age.
func FromTime(t time.Time) ID {
	ms := t.UnixMilli() - Epoch
	return ID(uint64(ms) << 22)
}

// String returns the decimal representation of the ID.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Time returns the creation time embedded in bits 63..22.
func (id ID) Time() time.Time {
	ms := int64(id>>22) + Epoch
	return time.UnixMilli(ms).UTC()
}

// Worker returns the internal worker ID (bits 21..17).
func (id ID) Worker() uint8 {
	return uint8(id >> 17 & 0x1F)
}

// Process returns the internal process ID (bits 16..12).
func (id ID) Process() uint8 {
	return uint8(id >> 12 & 0x1F)
}

// Increment returns the per-process sequence number (bits 11..0).
func (id ID) Increment() uint16 {
	return uint16(id & 0xFFF)
}

// MarshalJSON encodes the ID as a decimal string, matching the Discord API
// convention for 64-bit identifiers.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON accepts both quoted and bare decimal forms.
func (id *ID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*id = v
	return nil
}
