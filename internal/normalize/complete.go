package normalize

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alexanderramin/scenariogen/internal/heading"
	"github.com/alexanderramin/scenariogen/internal/outline"
	"github.com/alexanderramin/scenariogen/internal/textformat"
)

const quoteChars = "'\"`"

// brandWords are minor words that still read naturally when capitalized
// inside a title ("Up the River").
var brandWords = map[string]bool{
	"in": true, "up": true, "out": true, "off": true, "down": true, "over": true, "under": true,
}

// IsFieldComplete guesses whether line ends a finished field. Lines without a
// colon count as finished. A field value is finished when it is numeric,
// title cased, a list of title-cased items, N/A, or ends in a period
// (optionally inside a closing quote). An empty value is not finished.
//
// This is a heuristic: a deliberately lowercase value reads as unfinished.
func IsFieldComplete(line string) bool {
	_, raw, ok := textformat.SplitField(line)
	if !ok {
		return true
	}
	v := strings.TrimSpace(raw)
	if v == "" {
		return false
	}
	return isNumeric(v) ||
		IsTitleCase(v) ||
		isTitleCaseList(v) ||
		strings.Contains(v, outline.NotApplicable) ||
		strings.HasSuffix(v, ".") ||
		strings.HasSuffix(v, ".'") ||
		strings.HasSuffix(v, `."`)
}

func isNumeric(v string) bool {
	f, err := strconv.ParseFloat(v, 64)
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsTitleCase reports whether s follows title casing: first and last words
// capitalized, minor words in between lowercase, every other word capitalized.
func IsTitleCase(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	if !isCapitalized(words[0]) || !isCapitalized(words[len(words)-1]) {
		return false
	}
	if len(words) <= 2 {
		return true
	}
	for _, w := range words[1 : len(words)-1] {
		w = strings.Trim(w, "'\"`.,;:!?()-")
		if heading.IsMinorWord(strings.ToLower(w)) {
			if isCapitalized(w) && !brandWords[strings.ToLower(w)] {
				return false
			}
			continue
		}
		if !isCapitalized(w) {
			return false
		}
	}
	return true
}

func isTitleCaseList(v string) bool {
	items := strings.Split(v, ",")
	if len(items) < 2 {
		return false
	}
	for _, item := range items {
		if !IsTitleCase(strings.TrimSpace(item)) {
			return false
		}
	}
	return true
}

// isCapitalized checks the first letter after at most one opening quote.
func isCapitalized(w string) bool {
	if w != "" && strings.ContainsRune(quoteChars, rune(w[0])) {
		w = w[1:]
	}
	if w == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(w)
	return unicode.IsUpper(r)
}
