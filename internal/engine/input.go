package engine

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/textformat"
)

const (
	storyRequestLabel = "Story Request:"
	tagsLabel         = "Tags:"
	helpKeyword       = "help"
)

// ErrOpeningMalformed is returned when opening text lacks both the story
// request and tags lines.
var ErrOpeningMalformed = errors.New("opening text has no story request or tags line")

// InputRequest is the user's input for one turn.
type InputRequest struct {
	Raw string
	// ActionCount is the number of turns already played; zero means this is
	// the opening input.
	ActionCount int
}

// PrepareTurnInput starts a turn and returns the text to append to the
// transcript. The opening input is reshaped into the start of the overview.
// Later inputs never add content: asking for help flags the turn and
// appends nothing, anything else appends a line break so generation starts a
// fresh field.
func (e *Engine) PrepareTurnInput(state *domain.TurnState, req InputRequest) string {
	e.BeginTurn(state)

	if req.ActionCount == 0 {
		text, err := OpeningText(req.Raw)
		if err != nil {
			e.log.Warn("opening input rejected", zap.Error(err))
			state.Record(ErrNameInitialInput, msgInitialInput)
			return ""
		}
		return text
	}

	if strings.Contains(strings.ToLower(req.Raw), helpKeyword) {
		state.HelpRequested = true
		return ""
	}
	return "\n"
}

// OpeningText converts the opening form:
//
//	Story Request: <request or blank>
//	Tags: <tags or blank>
//
// into the transcript's first lines. Blank lines are dropped and the tags,
// when given, become the first overview field.
func OpeningText(raw string) (string, error) {
	var request, tags string
	var found bool
	for _, l := range textformat.Lines(raw, textformat.Transcript) {
		switch {
		case strings.HasPrefix(l, storyRequestLabel):
			request, found = l, true
		case strings.HasPrefix(l, tagsLabel):
			tags, found = l, true
		}
	}
	if !found {
		return "", ErrOpeningMalformed
	}

	var out []string
	if strings.TrimSpace(strings.TrimPrefix(request, storyRequestLabel)) != "" {
		out = append(out, request)
	}
	out = append(out, "", "Overview")
	if strings.TrimSpace(strings.TrimPrefix(tags, tagsLabel)) != "" {
		out = append(out, tags)
	}
	out = append(out, "")
	return strings.Join(out, "\n"), nil
}

// OpeningForm renders a story request and tags in the form OpeningText reads.
func OpeningForm(storyRequest, tags string) string {
	return storyRequestLabel + " " + strings.TrimSpace(storyRequest) + "\n" + tagsLabel + " " + strings.TrimSpace(tags) + "\n"
}
