// Package settings holds the generator's user-editable configuration, stored
// as a card in the section/field text format.
package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/textformat"
)

// Title is the display title of the settings card.
const Title = "Configure Generator"

// ErrInvalidSetting is returned by Set for unknown paths and values of the
// wrong type.
var ErrInvalidSetting = errors.New("invalid setting")

const (
	MinSeedWordCount = 1
	MaxSeedWordCount = 50
)

// General holds settings that shape every prompt.
type General struct {
	// DescriptionSize is the base word count for fields marked (D).
	DescriptionSize int
	// IncludeStoryRequestInJSON adds the opening story request to the export.
	IncludeStoryRequestInJSON bool
}

// Seeds controls random seed-word injection.
type Seeds struct {
	AddRandomSeedWords bool
	UseSFWList         bool
	UseNSFWList        bool
	SeedWordCount      int
	ShowSeedWords      bool
}

// Settings is the typed form of the settings card.
type Settings struct {
	General General
	Seeds   Seeds
}

// Default returns the settings a new session starts with.
func Default() Settings {
	return Settings{
		General: General{
			DescriptionSize:           50,
			IncludeStoryRequestInJSON: false,
		},
		Seeds: Seeds{
			AddRandomSeedWords: false,
			UseSFWList:         true,
			UseNSFWList:        true,
			SeedWordCount:      4,
			ShowSeedWords:      false,
		},
	}
}

// ClampSeedWordCount bounds n to [MinSeedWordCount, MaxSeedWordCount].
func ClampSeedWordCount(n int) int {
	return max(MinSeedWordCount, min(n, MaxSeedWordCount))
}

// setting binds one card field to a Settings member.
type setting struct {
	section, key string
	boolPtr      func(*Settings) *bool
	intPtr       func(*Settings) *int
	clamp        func(int) int
}

// schema lists every setting in card order.
var schema = []setting{
	{section: "general_settings", key: "description_size", intPtr: func(s *Settings) *int { return &s.General.DescriptionSize }},
	{section: "general_settings", key: "include_story_request_in_json", boolPtr: func(s *Settings) *bool { return &s.General.IncludeStoryRequestInJSON }},
	{section: "seed_word_settings", key: "add_random_seed_words", boolPtr: func(s *Settings) *bool { return &s.Seeds.AddRandomSeedWords }},
	{section: "seed_word_settings", key: "use_sfw_list", boolPtr: func(s *Settings) *bool { return &s.Seeds.UseSFWList }},
	{section: "seed_word_settings", key: "use_nsfw_list", boolPtr: func(s *Settings) *bool { return &s.Seeds.UseNSFWList }},
	{section: "seed_word_settings", key: "seed_word_count", intPtr: func(s *Settings) *int { return &s.Seeds.SeedWordCount }, clamp: ClampSeedWordCount},
	{section: "seed_word_settings", key: "show_seed_words", boolPtr: func(s *Settings) *bool { return &s.Seeds.ShowSeedWords }},
}

// Parse reads settings card text. Values that are missing or of the wrong
// type fall back to their defaults; the seed word count is clamped.
func Parse(text string) Settings {
	return FromDocument(textformat.ParseSoft(text, textformat.Card))
}

// FromDocument coerces a parsed settings document into typed settings.
func FromDocument(doc *domain.Document) Settings {
	s := Default()
	for _, st := range schema {
		raw, ok := doc.Value(st.section, st.key)
		if !ok {
			continue
		}
		v := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case st.boolPtr != nil:
			if b, ok := parseBool(v); ok {
				*st.boolPtr(&s) = b
			}
		case st.intPtr != nil:
			if n, ok := textformat.ParseLeadingInt(v); ok {
				if st.clamp != nil {
					n = st.clamp(n)
				}
				*st.intPtr(&s) = n
			}
		}
	}
	return s
}

// ToDocument converts settings to their card document form.
func (s Settings) ToDocument() *domain.Document {
	doc := domain.NewDocument()
	for _, st := range schema {
		fields, ok := doc.Section(st.section)
		if !ok {
			fields = doc.StartSection(st.section)
		}
		switch {
		case st.boolPtr != nil:
			fields.Set(st.key, strconv.FormatBool(*st.boolPtr(&s)))
		case st.intPtr != nil:
			fields.Set(st.key, strconv.Itoa(*st.intPtr(&s)))
		}
	}
	return doc
}

// Serialize writes settings as card text, with units on numeric values.
func (s Settings) Serialize() string {
	return textformat.Serialize(s.ToDocument(), textformat.SerializeOptions{Card: true, Units: true})
}

// Set changes one setting, addressed as "section.key" (for example
// "seed_word_settings.seed_word_count"), and returns the updated settings.
func (s Settings) Set(path, value string) (Settings, error) {
	section, key, ok := strings.Cut(path, ".")
	if !ok {
		return s, fmt.Errorf("setting %q must be written as section.key: %w", path, ErrInvalidSetting)
	}
	for _, st := range schema {
		if st.section != section || st.key != key {
			continue
		}
		v := strings.ToLower(strings.TrimSpace(value))
		switch {
		case st.boolPtr != nil:
			b, ok := parseBool(v)
			if !ok {
				return s, fmt.Errorf("setting %s expects true or false, got %q: %w", path, value, ErrInvalidSetting)
			}
			*st.boolPtr(&s) = b
		case st.intPtr != nil:
			n, ok := textformat.ParseLeadingInt(v)
			if !ok {
				return s, fmt.Errorf("setting %s expects a number, got %q: %w", path, value, ErrInvalidSetting)
			}
			if st.clamp != nil {
				n = st.clamp(n)
			}
			*st.intPtr(&s) = n
		}
		return s, nil
	}
	return s, fmt.Errorf("unknown setting %q: %w", path, ErrInvalidSetting)
}

// Keys lists every setting path in card order.
func Keys() []string {
	out := make([]string, len(schema))
	for i, st := range schema {
		out[i] = st.section + "." + st.key
	}
	return out
}

func parseBool(v string) (bool, bool) {
	switch v {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// Notes explains each value to whoever edits the card.
const Notes = `Change values by editing numbers or switching true and false. Keep the
section and field names as they are.

General Settings
> Description Size
  - number, 10 or more
  - Base word count for fields marked (D) in the outline.
  - Large values need a larger context window.

> Include Story Request in JSON
  - true or false
  - Places the opening story request at the top of the exported overview.
  - Has no effect when the story request was left blank.

Seed Word Settings
> Add Random Seed Words
  - true or false
  - Adds randomly drawn seed words to each prompt for variety.
  - New seeds are drawn every turn.

> Use SFW List / Use NSFW List
  - true or false
  - Word lists the seeds are drawn from. With neither enabled the SFW list is used.

> Seed Word Count
  - number, 1 to 50
  - How many seed words are drawn each turn.

> Show Seed Words
  - true or false
  - Writes the drawn seeds into the output as a comment line.`
