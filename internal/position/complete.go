package position

import "github.com/alexanderramin/scenariogen/internal/domain"

// LastPosition returns the last section of doc and the last field inside it.
// field is empty when that section has no fields; ok is false for an empty
// document.
func LastPosition(doc *domain.Document) (section, field string, ok bool) {
	keys := doc.Keys()
	if len(keys) == 0 {
		return "", "", false
	}
	section = keys[len(keys)-1]
	fields, _ := doc.Section(section)
	if fk := fields.Keys(); len(fk) > 0 {
		field = fk[len(fk)-1]
	}
	return section, field, true
}

// IsComplete reports whether the transcript has reached the final field of
// the final outline section. It compares positions only; whether that last
// value is finished is not considered.
func IsComplete(outline, transcript *domain.Document) bool {
	os, of, ok := LastPosition(outline)
	if !ok {
		return false
	}
	ts, tf, ok := LastPosition(transcript)
	if !ok {
		return false
	}
	return os == ts && of == tf
}
