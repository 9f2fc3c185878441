package hpack

// ReferenceSet tracks the entries considered present in the current header
// block (draft-07 section 3.1.3). References are keyed by the full
// (name, value) pair; two fields sharing a name but differing in value are
// distinct references. Each reference carries an emitted flag that is only
// meaningful within a single decode.
type ReferenceSet struct {
	references map[HeaderField]bool // field -> emitted
}

// NewReferenceSet creates an empty reference set
func NewReferenceSet() *ReferenceSet {
	return &ReferenceSet{
		references: make(map[HeaderField]bool),
	}
}

// Len returns the number of references in the set
func (rs *ReferenceSet) Len() int {
	return len(rs.references)
}

// Add inserts a reference, overwriting the emitted flag if already present
func (rs *ReferenceSet) Add(field HeaderField, emitted bool) {
	rs.references[field] = emitted
}

// Has reports whether a field is present in the reference set
func (rs *ReferenceSet) Has(field HeaderField) bool {
	_, ok := rs.references[field]
	return ok
}

// Remove deletes a reference and reports whether it was present
func (rs *ReferenceSet) Remove(field HeaderField) bool {
	if _, ok := rs.references[field]; !ok {
		return false
	}
	delete(rs.references, field)
	return true
}

// Empty removes all references
func (rs *ReferenceSet) Empty() {
	clear(rs.references)
}

// Reset sets every emitted flag to false. Called at the start of each decode.
func (rs *ReferenceSet) Reset() {
	for field := range rs.references {
		rs.references[field] = false
	}
}

// Unemitted returns the fields whose emitted flag is still false
func (rs *ReferenceSet) Unemitted() []HeaderField {
	var fields []HeaderField
	for field, emitted := range rs.references {
		if !emitted {
			fields = append(fields, field)
		}
	}
	return fields
}

// Fields returns every referenced field
func (rs *ReferenceSet) Fields() []HeaderField {
	fields := make([]HeaderField, 0, len(rs.references))
	for field := range rs.references {
		fields = append(fields, field)
	}
	return fields
}
