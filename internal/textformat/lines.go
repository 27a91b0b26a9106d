// Package textformat reads and writes the line-oriented outline dialect:
//
//	Section
//	Field Name: value
//	Field Name: value
//
// Card documents (outline, settings) prefix each field line with "> ".
package textformat

import "strings"

// Dialect selects card-specific line handling.
type Dialect int

const (
	// Transcript is plain text as exchanged during a session.
	Transcript Dialect = iota
	// Card is a stored configuration document whose lines may carry a "> " prefix.
	Card
)

const (
	// CommentMarker starts lines that are shown to the user but never parsed.
	CommentMarker = "//"
	// ErrorMarker starts lines that report an error to the user.
	ErrorMarker = "> Error"
	// CardPrefix opens field lines in card documents.
	CardPrefix = "> "
)

// Lines splits text into trimmed lines with emphasis markup, comments and
// error reports removed.
func Lines(text string, dialect Dialect) []string {
	raw := strings.Split(strings.ReplaceAll(text, "*", ""), "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if dialect == Card {
			l = strings.TrimPrefix(l, CardPrefix)
		}
		if strings.HasPrefix(l, CommentMarker) || strings.HasPrefix(l, ErrorMarker) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// SplitField splits a field line at its first colon. ok is false when the
// line has no colon.
func SplitField(line string) (key, value string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", "", false
	}
	return line[:i], line[i+1:], true
}
