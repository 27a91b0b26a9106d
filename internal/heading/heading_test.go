package heading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"World Info", "world_info"},
		{"AI  Instructions", "ai_instructions"},
		{"Supporting\tCharacters", "supporting_characters"},
		{"overview", "overview"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToIdentifier(tt.in))
		})
	}
}

func TestToDisplay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"world_info", "World Info"},
		{"ai_instructions", "AI Instructions"},
		{"lord_of_the_rings", "Lord of the Rings"},
		{"the_end", "The End"},
		{"what_it_is", "What It Is"},
		{"made_in", "Made In"},
		{"nasa_mission_log", "NASA Mission Log"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToDisplay(tt.in))
		})
	}
}

func TestHeadingSymmetry(t *testing.T) {
	ids := []string{
		"overview", "world_info", "character_template", "time_period",
		"ai_instructions", "voice_pattern", "story_of_a_city", "mi6_file_2",
		"protagonist", "background_events",
	}
	for _, id := range ids {
		assert.Equal(t, id, ToIdentifier(ToDisplay(id)), "round trip of %q", id)
	}
}
