// Package normalize rewrites freshly generated text into the transcript's
// canonical layout before the user sees it.
package normalize

import (
	"strings"

	"github.com/alexanderramin/scenariogen/internal/heading"
	"github.com/alexanderramin/scenariogen/internal/outline"
	"github.com/alexanderramin/scenariogen/internal/prompt"
	"github.com/alexanderramin/scenariogen/internal/textformat"
)

// Input is one generated output plus the turn state left by prompt building.
type Input struct {
	Text string
	// Previous is the transcript text the output will be appended to.
	Previous     string
	Continuation bool
	// PendingHeader is the section identifier whose heading must open the output.
	PendingHeader string
	Seeds         []string
	ShowSeeds     bool
}

// Normalize cleans up generated text: markup is stripped, stray lines are
// spaced apart, N/A values are collapsed, a pending heading and the seed
// comment are inserted, and the seam with the previous text is fixed. A
// trailing line break is added when the last line looks finished.
func Normalize(in Input) string {
	var lines []string
	for _, l := range strings.Split(strings.ReplaceAll(in.Text, "*", ""), "\n") {
		if l == "" {
			continue
		}
		key, _, isField := textformat.SplitField(l)
		switch {
		case !isField:
			l = "\n" + l
		case strings.Contains(l, outline.NotApplicable):
			l = key + ": " + outline.NotApplicable
		}
		lines = append(lines, l)
	}

	if in.PendingHeader != "" && !in.Continuation {
		title := heading.ToDisplay(in.PendingHeader)
		if len(lines) == 0 || !strings.Contains(lines[0], title) {
			lines = insertAt(lines, 0, "\n"+title)
		}
	}

	if in.ShowSeeds && len(in.Seeds) > 0 {
		at := 0
		if in.Continuation || (len(lines) > 0 && strings.HasPrefix(lines[0], "\n")) {
			at = min(1, len(lines))
		}
		lines = insertAt(lines, at, textformat.CommentMarker+" Seed Words: "+prompt.FormatSeeds(in.Seeds))
	}

	if !in.Continuation && !strings.HasSuffix(in.Previous, "\n") {
		lines = insertAt(lines, 0, "\n")
	}

	out := strings.Join(lines, "\n")
	if in.Continuation {
		out = strings.TrimLeft(out, "\n")
		out = strings.TrimPrefix(out, outline.Placeholder)
		if out != "" && !endsWithAny(in.Previous, " ", "-") && !strings.ContainsAny(out[:1], " -.,") {
			out = " " + out
		}
	}

	if len(lines) > 0 && IsFieldComplete(lines[len(lines)-1]) {
		out += "\n"
	}
	return out
}

func insertAt(lines []string, i int, s string) []string {
	lines = append(lines, "")
	copy(lines[i+1:], lines[i:])
	lines[i] = s
	return lines
}

func endsWithAny(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
