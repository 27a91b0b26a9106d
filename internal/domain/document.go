package domain

// Fields is an ordered mapping from field identifier to value. In an outline
// the values are generation instructions; in a transcript they are the
// generated entries.
type Fields struct {
	keys   []string
	values map[string]string
}

// NewFields returns an empty field mapping.
func NewFields() *Fields {
	return &Fields{values: make(map[string]string)}
}

// Set assigns value to key. A new key is appended; an existing key keeps its
// position.
func (f *Fields) Set(key, value string) {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

// Get returns the value stored under key.
func (f *Fields) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Has reports whether key is present.
func (f *Fields) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

// Keys returns the field identifiers in insertion order.
func (f *Fields) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Len returns the number of fields.
func (f *Fields) Len() int {
	return len(f.keys)
}

// Equal reports whether both mappings hold the same keys, in the same order,
// with the same values.
func (f *Fields) Equal(o *Fields) bool {
	if f.Len() != o.Len() {
		return false
	}
	for i, k := range f.keys {
		if o.keys[i] != k || o.values[k] != f.values[k] {
			return false
		}
	}
	return true
}

// Document is an ordered two-level mapping: section identifier to Fields.
// The type admits no deeper nesting.
type Document struct {
	keys     []string
	sections map[string]*Fields
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{sections: make(map[string]*Fields)}
}

// StartSection opens section id with an empty field mapping and returns it.
// A section seen before is emptied but keeps its original position.
func (d *Document) StartSection(id string) *Fields {
	return d.SetSection(id, NewFields())
}

// SetSection stores fields under id. The pointer is stored as given, so
// several sections may share one mapping.
func (d *Document) SetSection(id string, fields *Fields) *Fields {
	if _, ok := d.sections[id]; !ok {
		d.keys = append(d.keys, id)
	}
	d.sections[id] = fields
	return fields
}

// Section returns the fields stored under id.
func (d *Document) Section(id string) (*Fields, bool) {
	f, ok := d.sections[id]
	return f, ok
}

// Has reports whether section id is present.
func (d *Document) Has(id string) bool {
	_, ok := d.sections[id]
	return ok
}

// HasField reports whether section id contains field key.
func (d *Document) HasField(id, key string) bool {
	f, ok := d.sections[id]
	return ok && f.Has(key)
}

// Value returns the value of field key in section id.
func (d *Document) Value(id, key string) (string, bool) {
	f, ok := d.sections[id]
	if !ok {
		return "", false
	}
	return f.Get(key)
}

// Keys returns the section identifiers in order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of sections.
func (d *Document) Len() int {
	return len(d.keys)
}

// IsEmpty reports whether the document has no sections.
func (d *Document) IsEmpty() bool {
	return len(d.keys) == 0
}

// Equal reports structural equality, including order.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.Len() != o.Len() {
		return false
	}
	for i, k := range d.keys {
		if o.keys[i] != k || !d.sections[k].Equal(o.sections[k]) {
			return false
		}
	}
	return true
}
