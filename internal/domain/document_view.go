package domain

import (
	"bytes"
	"encoding/json"
)

// FieldEntry is one field of a SectionEntry.
type FieldEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SectionEntry is a flattened, order-preserving view of one section.
type SectionEntry struct {
	ID     string       `json:"id"`
	Fields []FieldEntry `json:"fields"`
}

// Entries returns an ordered, exported view of the document, suitable for
// comparisons and API responses.
func (d *Document) Entries() []SectionEntry {
	out := make([]SectionEntry, 0, d.Len())
	for _, id := range d.keys {
		f := d.sections[id]
		entry := SectionEntry{ID: id, Fields: make([]FieldEntry, 0, f.Len())}
		for _, k := range f.keys {
			entry.Fields = append(entry.Fields, FieldEntry{Key: k, Value: f.values[k]})
		}
		out = append(out, entry)
	}
	return out
}

// DocumentFromEntries rebuilds a document from its Entries view.
func DocumentFromEntries(entries []SectionEntry) *Document {
	d := NewDocument()
	for _, s := range entries {
		f := d.StartSection(s.ID)
		for _, fe := range s.Fields {
			f.Set(fe.Key, fe.Value)
		}
	}
	return d
}

// MarshalJSON encodes the fields as a JSON object in insertion order.
func (f *Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range f.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONPair(&buf, k, f.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the document as nested JSON objects in insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONPair(&buf, k, d.sections[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONPair(buf *bytes.Buffer, key string, value any) error {
	if err := encodeJSON(buf, key); err != nil {
		return err
	}
	buf.WriteByte(':')
	return encodeJSON(buf, value)
}

// encodeJSON writes v without HTML escaping and without the encoder's
// trailing newline.
func encodeJSON(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
