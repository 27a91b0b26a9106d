package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/engine"
	"github.com/alexanderramin/scenariogen/internal/settings"
)

// FormatSessionList renders sessions newest first as a table.
func FormatSessionList(sessions []*domain.Session, now time.Time) string {
	if len(sessions) == 0 {
		return Dim("No scenarios yet. Start one with `scenariogen new`.") + "\n"
	}
	headers := []string{"ID", "TITLE", "STATUS", "TURNS", "UPDATED"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			TruncID(s.ID),
			Preview(s.Title, 40),
			StatusPill(s.Status),
			strconv.Itoa(s.ActionCount),
			HumanTimestamp(s.UpdatedAt, now),
		})
	}
	return RenderTable(headers, rows)
}

// FormatSession renders one session's summary in a box.
func FormatSession(s *domain.Session, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:       %s\n", s.ID)
	fmt.Fprintf(&b, "Status:   %s\n", StatusPill(s.Status))
	fmt.Fprintf(&b, "Turns:    %d\n", s.ActionCount)
	fmt.Fprintf(&b, "Created:  %s\n", HumanTimestamp(s.CreatedAt, now))
	fmt.Fprintf(&b, "Updated:  %s", HumanTimestamp(s.UpdatedAt, now))
	if s.ExportedAt != nil {
		fmt.Fprintf(&b, "\nExported: %s", HumanTimestamp(*s.ExportedAt, now))
	}
	return RenderBox(s.Title, b.String()) + "\n"
}

// FormatOutput renders a turn's output. Text that joins the transcript is
// printed as is; help and errors are styled so they read as messages.
func FormatOutput(out engine.Output) string {
	text := out.Text
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	switch out.Kind {
	case engine.OutputError:
		return StyleRed.Render(text)
	case engine.OutputHelp:
		return StyleDim.Render(text)
	case engine.OutputComplete:
		body, notice, found := strings.Cut(text, engine.CompletionNotice)
		if !found {
			return text
		}
		return body + StyleYellow.Render(engine.CompletionNotice) + notice
	default:
		return text
	}
}

// FormatCard renders a card's entry with its notes underneath.
func FormatCard(c *domain.Card) string {
	content := strings.TrimRight(c.Entry, "\n")
	if notes := strings.TrimSpace(c.Notes); notes != "" {
		content += "\n\n" + Dim(notes)
	}
	return RenderBox(c.Title, content) + "\n"
}

// FormatSettings renders every setting with its current value.
func FormatSettings(s settings.Settings) string {
	doc := s.ToDocument()
	rows := make([][]string, 0, len(settings.Keys()))
	for _, path := range settings.Keys() {
		section, key, _ := strings.Cut(path, ".")
		value, _ := doc.Value(section, key)
		rows = append(rows, []string{path, styleValue(value)})
	}
	return RenderTable([]string{"SETTING", "VALUE"}, rows)
}

func styleValue(v string) string {
	switch v {
	case "true":
		return StyleGreen.Render(v)
	case "false":
		return StyleDim.Render(v)
	default:
		return StyleFg.Render(v)
	}
}
