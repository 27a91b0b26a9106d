package prompt

import (
	"strings"

	"github.com/alexanderramin/scenariogen/internal/heading"
)

// Insert returns a copy of lines with block placed right after the last line
// that reads as section's heading, or at the end when no such line exists.
func Insert(lines []string, block, section string) []string {
	at := len(lines)
	title := heading.ToDisplay(section)
	for i := len(lines) - 1; i >= 0 && title != ""; i-- {
		if strings.TrimSpace(lines[i]) == title {
			at = i + 1
			break
		}
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	out = append(out, block)
	return append(out, lines[at:]...)
}
