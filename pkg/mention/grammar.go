// grammar.go defines the mention markup grammar: delimiters, the sigil
// table, and the per-kind body parsers.
package mention

import (
	"strconv"
	"strings"

	"github.com/open-cli-collective/mention-cli/pkg/snowflake"
)

const (
	openDelim  = '<'
	closeDelim = '>'
	fieldSep   = ':'
)

// sigilEntry binds a sigil (the marker right after the open delimiter) to
// the mention kind it introduces.
type sigilEntry struct {
	sigil    string
	kind     Kind
	animated bool // set on the animated emoji sigil only
}

// sigilTable is ordered longest-prefix-first where prefixes overlap, so
// that "@&" (role) wins over "@" (user). The scanner tries entries in
// declared order and commits to the first match.
var sigilTable = []sigilEntry{
	{sigil: "@&", kind: KindRole},
	{sigil: "@", kind: KindUser},
	{sigil: "#", kind: KindChannel},
	{sigil: "a:", kind: KindEmoji, animated: true},
	{sigil: "t:", kind: KindTimestamp},
	{sigil: ":", kind: KindEmoji},
}

// matchSigil tries the sigil table at pos, honoring the kind filter
// (nil = all kinds active).
func matchSigil(input string, pos int, filter map[Kind]bool) (sigilEntry, bool) {
	for _, e := range sigilTable {
		if filter != nil && !filter[e.kind] {
			continue
		}
		if strings.HasPrefix(input[pos:], e.sigil) {
			return e, true
		}
	}
	return sigilEntry{}, false
}

// parseCandidate parses the candidate whose open delimiter sits at open,
// after entry's sigil already matched. On success the returned span runs
// from the open delimiter through the close delimiter inclusive.
func parseCandidate(input string, open int, entry sigilEntry) (ParsedMention, *ParseError) {
	pos := open + 1 + len(entry.sigil)
	m := Mention{Kind: entry.kind}

	switch entry.kind {
	case KindUser, KindRole, KindChannel:
		id, end, perr := parseID(input, open, pos, closeDelim)
		if perr != nil {
			return ParsedMention{}, perr
		}
		m.ID = snowflake.ID(id)
		pos = end

	case KindEmoji:
		m.Animated = entry.animated
		nameEnd := pos
		for nameEnd < len(input) && input[nameEnd] != fieldSep && input[nameEnd] != closeDelim {
			nameEnd++
		}
		if nameEnd >= len(input) || input[nameEnd] != fieldSep {
			// No name/ID separator, so there is no identifier at all.
			return ParsedMention{}, &ParseError{Code: CodeEmptyBody, Start: open, End: nameEnd}
		}
		m.Name = input[pos:nameEnd]
		id, end, perr := parseID(input, open, nameEnd+1, closeDelim)
		if perr != nil {
			return ParsedMention{}, perr
		}
		m.ID = snowflake.ID(id)
		pos = end

	case KindTimestamp:
		unix, end, perr := parseUnix(input, open, pos)
		if perr != nil {
			return ParsedMention{}, perr
		}
		m.Unix = unix
		pos = end
		if pos < len(input) && input[pos] == fieldSep {
			pos++
			if pos >= len(input) {
				return ParsedMention{}, &ParseError{Code: CodeTimestampStyleInvalid, Start: open, End: pos}
			}
			style, ok := StyleForCode(input[pos])
			if !ok {
				return ParsedMention{}, &ParseError{Code: CodeTimestampStyleInvalid, Start: open, End: pos}
			}
			m.Style = style
			pos++
		}
	}

	if pos >= len(input) || input[pos] != closeDelim {
		return ParsedMention{}, &ParseError{Code: CodeNoTrailingDelimiter, Start: open, End: pos}
	}

	return ParsedMention{Mention: m, Span: Span{Start: open, End: pos + 1}}, nil
}

// parseID decodes a non-empty ASCII digit run at pos as an unsigned 64-bit
// identifier. The run must end at end-of-input or at one of the stop bytes;
// any other byte is reported as malformed. open is the candidate's '<'
// offset, used for error spans.
func parseID(input string, open, pos int, stops ...byte) (uint64, int, *ParseError) {
	end := pos
	for end < len(input) && isDigit(input[end]) {
		end++
	}
	if end < len(input) && !isStop(input[end], stops) {
		return 0, 0, &ParseError{Code: CodeIdentifierMalformed, Start: open, End: end}
	}
	if end == pos {
		return 0, 0, &ParseError{Code: CodeEmptyBody, Start: open, End: end}
	}
	v, err := strconv.ParseUint(input[pos:end], 10, 64)
	if err != nil {
		// The run is all digits, so the only possible failure is overflow.
		return 0, 0, &ParseError{Code: CodeIdentifierTooLarge, Start: open, End: end}
	}
	return v, end, nil
}

// parseUnix decodes the signed decimal seconds of a timestamp body. A ':'
// after the digits is left for the caller to interpret as the style
// separator.
func parseUnix(input string, open, pos int) (int64, int, *ParseError) {
	start := pos
	if pos < len(input) && input[pos] == '-' {
		pos++
	}
	end := pos
	for end < len(input) && isDigit(input[end]) {
		end++
	}
	if end < len(input) && !isStop(input[end], []byte{closeDelim, fieldSep}) {
		return 0, 0, &ParseError{Code: CodeIdentifierMalformed, Start: open, End: end}
	}
	if end == pos {
		return 0, 0, &ParseError{Code: CodeEmptyBody, Start: open, End: end}
	}
	v, err := strconv.ParseInt(input[start:end], 10, 64)
	if err != nil {
		return 0, 0, &ParseError{Code: CodeIdentifierTooLarge, Start: open, End: end}
	}
	return v, end, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isStop(c byte, stops []byte) bool {
	for _, s := range stops {
		if c == s {
			return true
		}
	}
	return false
}
