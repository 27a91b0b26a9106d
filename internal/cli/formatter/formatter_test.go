package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/engine"
	"github.com/alexanderramin/scenariogen/internal/settings"
)

func TestHumanTimestamp(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"just now", now.Add(-10 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"yesterday", now.Add(-30 * time.Hour), "Yesterday"},
		{"older", now.Add(-10 * 24 * time.Hour), "Jan 28, 2026"},
		{"future", now.Add(48 * time.Hour), "Feb 9, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestamp(tt.input, now))
		})
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"a  heist\nin  town", 40, "a heist in town"},
		{"abcdefghij", 8, "abcde..."},
		{"héllo wörld", 7, "héll..."},
		{"abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Preview(tt.in, tt.n))
		})
	}
}

func TestTruncID(t *testing.T) {
	assert.Contains(t, TruncID("0123456789abcdef"), "01234567")
	assert.NotContains(t, TruncID("0123456789abcdef"), "89abcdef")
	assert.Contains(t, TruncID("abc"), "abc")
}

func TestFormatSessionList(t *testing.T) {
	now := time.Now()
	assert.Contains(t, FormatSessionList(nil, now), "No scenarios yet")

	out := FormatSessionList([]*domain.Session{{
		ID:          "0123456789abcdef",
		Title:       "Night Job",
		Status:      domain.SessionComplete,
		ActionCount: 7,
		UpdatedAt:   now,
	}}, now)
	for _, want := range []string{"TITLE", "01234567", "Night Job", "Complete", "7", "Just now"} {
		assert.Contains(t, out, want)
	}
}

func TestFormatOutput(t *testing.T) {
	assert.Equal(t, "World: Earth\n", FormatOutput(engine.Output{Text: "World: Earth", Kind: engine.OutputText}))

	out := FormatOutput(engine.Output{Text: "World: Earth\n" + engine.CompletionNotice, Kind: engine.OutputComplete})
	assert.True(t, strings.HasPrefix(out, "World: Earth\n"))
	assert.Contains(t, out, "The scenario prompt is complete.")

	assert.Contains(t, FormatOutput(engine.Output{Text: engine.HelpText, Kind: engine.OutputHelp}), "Scenario Generator Help")
}

func TestFormatCard(t *testing.T) {
	out := FormatCard(&domain.Card{Title: "Outline", Entry: "World Info\n> World: ...\n", Notes: "edit me"})
	assert.Contains(t, out, "OUTLINE")
	assert.Contains(t, out, "> World: ...")
	assert.Contains(t, out, "edit me")
}

func TestFormatSettings(t *testing.T) {
	out := FormatSettings(settings.Default())
	for _, key := range settings.Keys() {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, "50")
}
