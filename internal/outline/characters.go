package outline

import (
	"strings"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/heading"
)

// Roster is the character information the transcript has produced so far.
type Roster struct {
	Protagonist    string
	HasProtagonist bool
	Supporting     string
	HasSupporting  bool
}

// RosterFrom reads the protagonist and supporting characters from the
// transcript's overview section.
func RosterFrom(transcript *domain.Document) Roster {
	var r Roster
	if transcript == nil {
		return r
	}
	r.Protagonist, r.HasProtagonist = transcript.Value(OverviewSection, ProtagonistField)
	r.Supporting, r.HasSupporting = transcript.Value(OverviewSection, SupportingCharacterField)
	return r
}

// SupportingIDs returns the normalized identifiers of the supporting
// characters, in order and without duplicates. A value containing N/A names
// nobody.
func (r Roster) SupportingIDs() []string {
	if !r.HasSupporting || strings.TrimSpace(r.Supporting) == "" || strings.Contains(r.Supporting, NotApplicable) {
		return nil
	}
	seen := make(map[string]bool)
	var ids []string
	for _, name := range strings.Split(r.Supporting, ",") {
		id := heading.ToIdentifier(strings.TrimSpace(name))
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// ExpandCharacterTemplate replaces the character template section with one
// section per character: "protagonist" when a protagonist is named, then one
// per supporting character. The new sections take the template's place and
// share its field mapping. Character names that collide with another outline
// section are skipped.
//
// The outline is returned unchanged when it has no template or the roster is
// still empty.
func ExpandCharacterTemplate(doc *domain.Document, r Roster) *domain.Document {
	template, ok := doc.Section(CharacterTemplateSection)
	if !ok || (!r.HasProtagonist && !r.HasSupporting) {
		return doc
	}

	out := domain.NewDocument()
	for _, id := range doc.Keys() {
		if id != CharacterTemplateSection {
			fields, _ := doc.Section(id)
			out.SetSection(id, fields)
			continue
		}
		if r.HasProtagonist && strings.TrimSpace(r.Protagonist) != "" && !collides(doc, ProtagonistSection) {
			out.SetSection(ProtagonistSection, template)
		}
		for _, sid := range r.SupportingIDs() {
			if collides(doc, sid) || out.Has(sid) {
				continue
			}
			out.SetSection(sid, template)
		}
	}
	return out
}

func collides(doc *domain.Document, id string) bool {
	return id != CharacterTemplateSection && doc.Has(id)
}
