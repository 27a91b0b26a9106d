package textformat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/heading"
)

var (
	// ErrParse wraps every failure reported by Parse.
	ErrParse = errors.New("text format parse error")

	// ErrEmptyIdentifier indicates a field line with nothing before its colon.
	ErrEmptyIdentifier = errors.New("field line has an empty name")
)

// Parse converts text into a Document. Parsing does not stop at the first bad
// line: the partial document is always returned, along with an error wrapping
// ErrParse when any line was rejected.
func Parse(text string, dialect Dialect) (*domain.Document, error) {
	return ParseLines(Lines(text, dialect))
}

// ParseSoft is Parse in soft-fail mode: any error yields an empty Document.
func ParseSoft(text string, dialect Dialect) *domain.Document {
	doc, err := Parse(text, dialect)
	if err != nil {
		return domain.NewDocument()
	}
	return doc
}

// ParseLines parses lines already produced by Lines.
func ParseLines(lines []string) (*domain.Document, error) {
	doc := domain.NewDocument()
	var current *domain.Fields
	var errs []error

	for i, line := range lines {
		if line == "" {
			continue
		}
		next := ""
		if i+1 < len(lines) {
			next = lines[i+1]
		}
		hasColon := strings.Contains(line, ":")

		switch {
		case !hasColon && (next == "" || strings.Contains(next, ":")):
			current = doc.StartSection(heading.ToIdentifier(line))
		case hasColon && current != nil:
			rawKey, rawValue, _ := SplitField(line)
			key := heading.ToIdentifier(strings.TrimSpace(rawKey))
			if key == "" {
				errs = append(errs, fmt.Errorf("line %d: %w", i+1, ErrEmptyIdentifier))
				continue
			}
			current.Set(key, unquote(strings.TrimSpace(rawValue)))
		}
	}

	if len(errs) > 0 {
		return doc, fmt.Errorf("%w: %w", ErrParse, errors.Join(errs...))
	}
	return doc, nil
}

// unquote strips one layer of matching surrounding quotes and un-escapes
// escaped double quotes.
func unquote(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if (first == '"' || first == '\'') && first == last {
			v = v[1 : len(v)-1]
		}
	}
	return strings.ReplaceAll(v, `\"`, `"`)
}
