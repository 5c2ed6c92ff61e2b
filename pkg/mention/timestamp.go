package mention

// TimestampStyle selects how Discord clients render a timestamp mention.
// The zero value StyleNone marks an unstyled timestamp (<t:UNIX> with no
// trailing style code); clients render those with their default style.
type TimestampStyle int

const (
	StyleNone          TimestampStyle = iota
	StyleShortTime                    // t  16:20
	StyleLongTime                     // T  16:20:30
	StyleShortDate                    // d  20/04/2021
	StyleLongDate                     // D  20 April 2021
	StyleShortDateTime                // f  20 April 2021 16:20
	StyleLongDateTime                 // F  Tuesday, 20 April 2021 16:20
	StyleRelativeTime                 // R  2 months ago
)

// Code returns the single-character wire code for the style. StyleNone has
// no code and returns 0.
func (s TimestampStyle) Code() byte {
	switch s {
	case StyleShortTime:
		return 't'
	case StyleLongTime:
		return 'T'
	case StyleShortDate:
		return 'd'
	case StyleLongDate:
		return 'D'
	case StyleShortDateTime:
		return 'f'
	case StyleLongDateTime:
		return 'F'
	case StyleRelativeTime:
		return 'R'
	}
	return 0
}

// String returns a readable name for the style, or "default" for StyleNone.
func (s TimestampStyle) String() string {
	switch s {
	case StyleShortTime:
		return "short-time"
	case StyleLongTime:
		return "long-time"
	case StyleShortDate:
		return "short-date"
	case StyleLongDate:
		return "long-date"
	case StyleShortDateTime:
		return "short-datetime"
	case StyleLongDateTime:
		return "long-datetime"
	case StyleRelativeTime:
		return "relative"
	}
	return "default"
}

// StyleForCode maps a wire code back to its style. The second return is
// false for codes that do not name a style.
func StyleForCode(c byte) (TimestampStyle, bool) {
	switch c {
	case 't':
		return StyleShortTime, true
	case 'T':
		return StyleLongTime, true
	case 'd':
		return StyleShortDate, true
	case 'D':
		return StyleLongDate, true
	case 'f':
		return StyleShortDateTime, true
	case 'F':
		return StyleLongDateTime, true
	case 'R':
		return StyleRelativeTime, true
	}
	return StyleNone, false
}
