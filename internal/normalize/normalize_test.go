package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFieldComplete(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"City: London", true},
		{"Gender: Female", true},
		{"Name: Bob", true},
		{"Name: Alice Smith", true},
		{"Mood: inf", false},
		{"Count: -Inf", false},
		{"Notes: it was going", false},
		{"Age: 34", true},
		{"Ratio: 3.5", true},
		{"Tags: Red, Blue, Green", true},
		{"Tags: Red, blue", false},
		{"Bio: She walked in and", false},
		{"Bio: She walked in.", true},
		{`Quote: He said "go."`, true},
		{"Quote: she said 'go.'", true},
		{"Supporting Characters: N/A", true},
		{"Title: Walk In the Park", true},
		{"Title: Lord Of the Rings", false},
		{"Title: Return of the King", true},
		{`Title: "The Long Night"`, true},
		{"Name:", false},
		{"Name:   ", false},
		{"a stray sentence with no field", true},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFieldComplete(tt.line))
		})
	}
}

// The completeness check is a heuristic. It should still agree with a
// hand-labelled sample most of the time.
func TestIsFieldComplete_AgreementRate(t *testing.T) {
	sample := []struct {
		line string
		done bool
	}{
		{"World: Earth", true},
		{"Region: Northern Wales", true},
		{"Time Period: 1893", true},
		{"Genre: Mystery, Gothic Horror", true},
		{"Tone: Bleak and quietly hopeful.", true},
		{"Perspective: Second-person", true},
		{"Tense: Present", true},
		{"Protagonist: Mara Voss", true},
		{"Synopsis: A disgraced surgeon returns to", false},
		{"Appearance: tall, with a scar that runs", false},
		{"Personality: guarded but", false},
		{"Location: The Drowned Abbey", true},
		{"Voice Pattern: Clipped sentences, rarely", false},
		{"Themes: Grief, Redemption", true},
		{"Writing Style: terse", false},
	}
	agree := 0
	for _, s := range sample {
		if IsFieldComplete(s.line) == s.done {
			agree++
		}
	}
	assert.GreaterOrEqual(t, float64(agree)/float64(len(sample)), 0.85)
}

func TestIsTitleCase(t *testing.T) {
	assert.True(t, IsTitleCase("The Lord of the Rings"))
	assert.True(t, IsTitleCase("London"))
	assert.True(t, IsTitleCase("Female"))
	assert.True(t, IsTitleCase("Alice Smith"))
	assert.False(t, IsTitleCase("Alice smith"))
	assert.False(t, IsTitleCase(""))
	assert.False(t, IsTitleCase("   "))
	assert.False(t, IsTitleCase("london"))
	assert.False(t, IsTitleCase("Lost and found"))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want string
	}{
		{
			name: "open field stays open",
			in:   Input{Text: "Genre: Fantasy\n\nSynopsis: A tale", Previous: "Tags: a\n"},
			want: "Genre: Fantasy\nSynopsis: A tale",
		},
		{
			name: "finished field gets a line break",
			in:   Input{Text: "**Genre:** Horror", Previous: "Tags: a\n"},
			want: "Genre: Horror\n",
		},
		{
			name: "stray prose is spaced apart",
			in:   Input{Text: "Genre: Horror\nA dark night.", Previous: "\n"},
			want: "Genre: Horror\n\nA dark night.\n",
		},
		{
			name: "N/A collapses the value",
			in:   Input{Text: "Supporting Characters: None really, N/A", Previous: "\n"},
			want: "Supporting Characters: N/A\n",
		},
		{
			name: "pending heading inserted",
			in:   Input{Text: "World: Earth", Previous: "Tags: a\n", PendingHeader: "world_info"},
			want: "\nWorld Info\nWorld: Earth\n",
		},
		{
			name: "single-word values under a pending heading",
			in:   Input{Text: "Name: Alice Smith\nGender: Female", Previous: "x\n", PendingHeader: "protagonist"},
			want: "\nProtagonist\nName: Alice Smith\nGender: Female\n",
		},
		{
			name: "pending heading already present",
			in:   Input{Text: "World Info\nWorld: Earth", Previous: "Tags: a\n", PendingHeader: "world_info"},
			want: "\nWorld Info\nWorld: Earth\n",
		},
		{
			name: "pending heading ignored while continuing",
			in:   Input{Text: "and more.", Previous: "Tags: a", PendingHeader: "world_info", Continuation: true},
			want: " and more.\n",
		},
		{
			name: "previous text without trailing break",
			in:   Input{Text: "Genre: Drama", Previous: "Tags: Red"},
			want: "\n\nGenre: Drama\n",
		},
		{
			name: "continuation strips placeholder and adds a space",
			in:   Input{Text: "\n\n...sat down.", Previous: "Bio: She walked in and", Continuation: true},
			want: " sat down.\n",
		},
		{
			name: "continuation after a space",
			in:   Input{Text: "sat down", Previous: "Bio: She walked in and ", Continuation: true},
			want: "sat down\n",
		},
		{
			name: "continuation starting with punctuation",
			in:   Input{Text: ", then left", Previous: "Bio: She walked in", Continuation: true},
			want: ", then left\n",
		},
		{
			name: "seed comment after heading",
			in:   Input{Text: "Events: x", Previous: "\n", PendingHeader: "timeline", Seeds: []string{"ash"}, ShowSeeds: true},
			want: "\nTimeline\n// Seed Words: \"ash\"\nEvents: x",
		},
		{
			name: "seed comment first without heading",
			in:   Input{Text: "Tags: a", Previous: "\n", Seeds: []string{"ash", "tide"}, ShowSeeds: true},
			want: "// Seed Words: \"ash\", \"tide\"\nTags: a",
		},
		{
			name: "seeds hidden",
			in:   Input{Text: "Tags: a", Previous: "\n", Seeds: []string{"ash"}},
			want: "Tags: a",
		},
		{
			name: "empty output",
			in:   Input{Text: "\n\n", Previous: "\n"},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
