package textformat

import (
	"strings"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/heading"
)

// SerializeOptions controls how a Document is written back to text.
type SerializeOptions struct {
	// Card prefixes field lines with "> ".
	Card bool
	// Units suffixes numeric values with their unit word, for settings documents.
	Units bool
}

// unitFields maps field identifiers to a unit other than the default "words".
var unitFields = map[string]string{
	"floating_prompt_distance": "paragraphs",
}

// Serialize writes doc in the section/field dialect. Sections are separated
// by one blank line.
func Serialize(doc *domain.Document, opts SerializeOptions) string {
	blocks := make([]string, 0, doc.Len())
	for _, id := range doc.Keys() {
		fields, _ := doc.Section(id)
		lines := []string{heading.ToDisplay(id)}
		for _, key := range fields.Keys() {
			value, _ := fields.Get(key)
			if opts.Units && LeadingInt(value) {
				value += " " + unitFor(key)
			}
			line := heading.ToDisplay(key) + ": " + quote(value)
			if opts.Card {
				line = CardPrefix + line
			}
			lines = append(lines, line)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// quote wraps v in double quotes when Parse would otherwise alter it:
// surrounding whitespace, a matching pair of outer quotes, or an escaped quote.
func quote(v string) string {
	wrapped := len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[0] == v[len(v)-1]
	if v == strings.TrimSpace(v) && !wrapped && !strings.Contains(v, `\"`) {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
}

func unitFor(key string) string {
	if u, ok := unitFields[key]; ok {
		return u
	}
	return "words"
}

// LeadingInt reports whether s, after leading whitespace, starts with an
// optionally signed decimal integer.
func LeadingInt(s string) bool {
	_, ok := ParseLeadingInt(s)
	return ok
}

// ParseLeadingInt reads the optionally signed integer at the start of s,
// ignoring anything after it ("50 words" yields 50).
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		if n < 1<<40 {
			n = n*10 + int(s[digits]-'0')
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
