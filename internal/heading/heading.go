// Package heading converts between normalized identifiers ("world_info") and
// the display headings users read and edit ("World Info").
//
// Every heading the engine emits goes through ToDisplay so generated headings
// match user-edited ones byte for byte.
package heading

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ToIdentifier lowercases a display heading and joins its words with underscores.
func ToIdentifier(display string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(display), "_")
}

// ToDisplay renders an identifier as a title-cased heading. Acronyms are fully
// upper-cased; small words stay lowercase unless they open or close the heading.
func ToDisplay(id string) string {
	words := strings.Split(id, "_")
	out := make([]string, len(words))
	for i, w := range words {
		switch {
		case IsAcronym(w):
			out[i] = strings.ToUpper(w)
		case i != 0 && i != len(words)-1 && IsMinorWord(w):
			out[i] = w
		default:
			out[i] = capitalize(w)
		}
	}
	return strings.Join(out, " ")
}

// IsAcronym reports whether w (lowercase) is always rendered upper-case.
func IsAcronym(w string) bool {
	_, ok := acronyms[w]
	return ok
}

// IsMinorWord reports whether w (lowercase) stays lowercase inside a heading.
func IsMinorWord(w string) bool {
	_, ok := minorWords[w]
	return ok
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}
