// Package outline manages the generation template: the document whose field
// values are instructions rather than data.
package outline

import (
	"strings"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/textformat"
)

const (
	// Placeholder is the instruction meaning "no guidance beyond the target length".
	Placeholder = "..."

	OverviewSection          = "overview"
	CharacterTemplateSection = "character_template"
	ProtagonistSection       = "protagonist"

	ProtagonistField         = "protagonist"
	SupportingCharacterField = "supporting_characters"

	// NotApplicable marks a field with no meaningful value.
	NotApplicable = "N/A"
)

// Repair returns a copy of doc where blank instructions become Placeholder and
// sections without fields are dropped. It returns nil when nothing usable is
// left, in which case the caller should fall back to the default outline.
func Repair(doc *domain.Document) *domain.Document {
	if doc == nil {
		return nil
	}
	out := domain.NewDocument()
	for _, id := range doc.Keys() {
		fields, _ := doc.Section(id)
		if fields.Len() == 0 {
			continue
		}
		repaired := domain.NewFields()
		for _, key := range fields.Keys() {
			v, _ := fields.Get(key)
			if strings.TrimSpace(v) == "" {
				v = Placeholder
			}
			repaired.Set(key, v)
		}
		out.SetSection(id, repaired)
	}
	if out.IsEmpty() {
		return nil
	}
	return out
}

// Ensure turns stored outline text into a usable outline. reset is true when
// the text could not be repaired and the default outline was used instead.
// canonical is the text that should be stored back.
func Ensure(text string) (doc *domain.Document, canonical string, reset bool) {
	doc = Repair(textformat.ParseSoft(text, textformat.Card))
	if doc == nil {
		doc = Default()
		reset = true
	}
	return doc, Serialize(doc), reset
}

// Parse reads outline text without repairing it.
func Parse(text string) *domain.Document {
	return textformat.ParseSoft(text, textformat.Card)
}

// Serialize writes an outline in card dialect.
func Serialize(doc *domain.Document) string {
	return textformat.Serialize(doc, textformat.SerializeOptions{Card: true})
}

// Default returns a fresh copy of the built-in outline.
func Default() *domain.Document {
	return textformat.ParseSoft(DefaultText, textformat.Card)
}
