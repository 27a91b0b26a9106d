// Package position works out how far a transcript has progressed through an
// outline.
//
// Sections and fields are assumed to be filled in outline order. A transcript
// edited out of order can make the cursor resume at the wrong point; that is
// accepted behavior, not something this package tries to detect.
package position

import "github.com/alexanderramin/scenariogen/internal/domain"

// Cursor is the transcript's position in the outline.
type Cursor struct {
	Section      string
	SectionIndex int
	// Field is empty when the section has been started but no field written.
	Field      string
	FieldIndex int
	// Entry is the transcript's current value for Field.
	Entry string
	// Remaining counts the outline fields of Section after Field.
	Remaining int
}

// HasField reports whether the cursor points at a field.
func (c Cursor) HasField() bool {
	return c.Field != ""
}

// Locate finds the last outline (section, field) pair the transcript has an
// entry for.
func Locate(outline, transcript *domain.Document) Cursor {
	keys := outline.Keys()
	for i := len(keys) - 1; i >= 0; i-- {
		section := keys[i]
		fields, _ := outline.Section(section)

		if got, ok := transcript.Section(section); ok && got.Len() == 0 {
			return Cursor{Section: section, SectionIndex: i, FieldIndex: -1, Remaining: fields.Len()}
		}

		fieldKeys := fields.Keys()
		for j := len(fieldKeys) - 1; j >= 0; j-- {
			entry, ok := transcript.Value(section, fieldKeys[j])
			if !ok {
				continue
			}
			return Cursor{
				Section:      section,
				SectionIndex: i,
				Field:        fieldKeys[j],
				FieldIndex:   j,
				Entry:        entry,
				Remaining:    len(fieldKeys) - (j + 1),
			}
		}
	}

	if len(keys) == 0 {
		return Cursor{SectionIndex: -1, FieldIndex: -1}
	}
	first, _ := outline.Section(keys[0])
	return Cursor{Section: keys[0], FieldIndex: -1, Remaining: first.Len()}
}
