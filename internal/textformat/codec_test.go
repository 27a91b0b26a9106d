package textformat

import (
	"testing"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(t *testing.T, doc *domain.Document) []domain.SectionEntry {
	t.Helper()
	require.NotNil(t, doc)
	return doc.Entries()
}

func TestParse_SectionsAndFields(t *testing.T) {
	text := `Overview
Tags: adventure, magic
Genre: "High Fantasy"
Synopsis: She said \"run\" and ran.

World Info
World: 'Earth'`

	doc, err := Parse(text, Transcript)
	require.NoError(t, err)

	want := []domain.SectionEntry{
		{ID: "overview", Fields: []domain.FieldEntry{
			{Key: "tags", Value: "adventure, magic"},
			{Key: "genre", Value: "High Fantasy"},
			{Key: "synopsis", Value: `She said "run" and ran.`},
		}},
		{ID: "world_info", Fields: []domain.FieldEntry{
			{Key: "world", Value: "Earth"},
		}},
	}
	if diff := cmp.Diff(want, entries(t, doc)); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_FiltersCommentsErrorsAndMarkup(t *testing.T) {
	text := `// Seed Words: "echo", "rust"
> Error: something went wrong
**Overview**
Tags: *bold* tags
// a note
Genre: Mystery`

	doc, err := Parse(text, Transcript)
	require.NoError(t, err)

	v, ok := doc.Value("overview", "tags")
	require.True(t, ok)
	assert.Equal(t, "bold tags", v)
	assert.True(t, doc.HasField("overview", "genre"))
	assert.Equal(t, 1, doc.Len())
}

func TestParse_FieldBeforeSectionIsDropped(t *testing.T) {
	text := "Story Request: a haunted lighthouse\n\nOverview\nTags: ghosts"

	doc, err := Parse(text, Transcript)
	require.NoError(t, err)
	assert.Equal(t, []string{"overview"}, doc.Keys())
}

func TestParse_HeaderWithoutFields(t *testing.T) {
	doc, err := Parse("Overview\nTags: x\n\nWorld Info\n", Transcript)
	require.NoError(t, err)

	fields, ok := doc.Section("world_info")
	require.True(t, ok)
	assert.Equal(t, 0, fields.Len())
}

func TestParse_CardDialectStripsPrefix(t *testing.T) {
	text := "General Settings\n> Description Size: 50 words\n> Include Story Request in JSON: false"

	doc, err := Parse(text, Card)
	require.NoError(t, err)

	v, _ := doc.Value("general_settings", "description_size")
	assert.Equal(t, "50 words", v)
	assert.True(t, doc.HasField("general_settings", "include_story_request_in_json"))
}

func TestParse_EmptyIdentifierIsReported(t *testing.T) {
	doc, err := Parse("Overview\n: orphan value\nTags: kept", Transcript)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.ErrorIs(t, err, ErrEmptyIdentifier)

	// Partial result is still returned.
	assert.True(t, doc.HasField("overview", "tags"))

	soft := ParseSoft("Overview\n: orphan value\nTags: kept", Transcript)
	assert.True(t, soft.IsEmpty())
}

func TestParse_ValueKeepsLiteralStrings(t *testing.T) {
	doc, err := Parse("Overview\nCount: 42\nFlag: true\nNone: N/A", Transcript)
	require.NoError(t, err)

	v, _ := doc.Value("overview", "count")
	assert.Equal(t, "42", v)
	v, _ = doc.Value("overview", "flag")
	assert.Equal(t, "true", v)
}

func TestSerialize(t *testing.T) {
	doc := domain.NewDocument()
	o := doc.StartSection("overview")
	o.Set("tags", "magic")
	o.Set("supporting_characters", "Ann, Bob")
	doc.StartSection("ai_instructions").Set("word_bans", "ozone")

	assert.Equal(t, "Overview\nTags: magic\nSupporting Characters: Ann, Bob\n\nAI Instructions\nWord Bans: ozone",
		Serialize(doc, SerializeOptions{}))
	assert.Equal(t, "Overview\n> Tags: magic\n> Supporting Characters: Ann, Bob\n\nAI Instructions\n> Word Bans: ozone",
		Serialize(doc, SerializeOptions{Card: true}))
}

func TestSerialize_Units(t *testing.T) {
	doc := domain.NewDocument()
	s := doc.StartSection("general_settings")
	s.Set("description_size", "50")
	s.Set("floating_prompt_distance", "3")
	s.Set("enabled", "true")

	got := Serialize(doc, SerializeOptions{Card: true, Units: true})
	assert.Equal(t, "General Settings\n> Description Size: 50 words\n> Floating Prompt Distance: 3 paragraphs\n> Enabled: true", got)
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"Overview\nTags: adventure, magic\nGenre: Fantasy\n\nWorld Info\nWorld: Earth\nRegion: The Shire",
		"Character Template\nName: ...\nAppearance: (D+20)...\n\nTimeline\nOpening Circumstances: (D)...",
		"Overview\n\nWorld Info\nWorld: Earth",
	}
	for _, text := range texts {
		for _, card := range []bool{false, true} {
			dialect := Transcript
			if card {
				dialect = Card
			}
			doc, err := Parse(text, Transcript)
			require.NoError(t, err)

			out := Serialize(doc, SerializeOptions{Card: card})
			back, err := Parse(out, dialect)
			require.NoError(t, err)
			if diff := cmp.Diff(doc.Entries(), back.Entries()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, out, Serialize(back, SerializeOptions{Card: card}))
		}
	}
}

func TestRoundTrip_QuotedValues(t *testing.T) {
	values := []string{
		`"Hi"`,
		`'Hi'`,
		" padded ",
		`She said "run"`,
		`a \" b`,
		`"`,
		`'`,
		"",
		"plain",
	}
	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			doc := domain.NewDocument()
			doc.StartSection("overview").Set("quote", v)

			for _, card := range []bool{false, true} {
				dialect := Transcript
				if card {
					dialect = Card
				}
				back, err := Parse(Serialize(doc, SerializeOptions{Card: card}), dialect)
				require.NoError(t, err)
				assert.True(t, doc.Equal(back), "value %q came back as %v", v, back.Entries())
			}
		})
	}
}

func TestSerialize_LeavesPlainValuesBare(t *testing.T) {
	doc := domain.NewDocument()
	doc.StartSection("overview").Set("synopsis", `She said "run"`)
	assert.Equal(t, "Overview\nSynopsis: She said \"run\"", Serialize(doc, SerializeOptions{}))

	doc.StartSection("overview").Set("quote", `"Hi"`)
	assert.Equal(t, "Overview\nQuote: \"\\\"Hi\\\"\"", Serialize(doc, SerializeOptions{}))
}

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"50", 50, true},
		{"50 words", 50, true},
		{" -5", -5, true},
		{"+7x", 7, true},
		{"true", 0, false},
		{"", 0, false},
		{"-", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseLeadingInt(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
