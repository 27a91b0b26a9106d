package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/outline"
	"github.com/alexanderramin/scenariogen/internal/settings"
	"github.com/alexanderramin/scenariogen/internal/textformat"
)

// StoryRequestField is the overview field the story request is exported under.
const StoryRequestField = "story_request"

var storyRequestPattern = regexp.MustCompile(`Story Request:\s*(.+)`)

type storyBible struct {
	StoryBible *domain.Document `json:"story_bible"`
}

// ExportStoryBible serializes the transcript as {"story_bible": {...}},
// indented four spaces, keeping section and field order. With the
// include-story-request setting on, the request found in opening is placed
// first in the overview.
func ExportStoryBible(transcript, opening string, s settings.Settings) (string, error) {
	doc := textformat.ParseSoft(transcript, textformat.Transcript)

	if s.General.IncludeStoryRequestInJSON {
		if m := storyRequestPattern.FindStringSubmatch(opening); m != nil {
			if overview, ok := doc.Section(outline.OverviewSection); ok {
				withRequest := domain.NewFields()
				withRequest.Set(StoryRequestField, strings.TrimSpace(m[1]))
				for _, k := range overview.Keys() {
					v, _ := overview.Get(k)
					withRequest.Set(k, v)
				}
				doc.SetSection(outline.OverviewSection, withRequest)
			}
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(storyBible{StoryBible: doc}); err != nil {
		return "", fmt.Errorf("encode story bible: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
