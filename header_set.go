package hpack

// HeaderSet accumulates the header fields emitted during one decode, or
// describes the fields to encode. It preserves emission order, so repeated
// names keep their relative value order. Names are case-sensitive; draft-07
// preserves case and leaves normalization to the consumer.
type HeaderSet struct {
	fields []HeaderField
}

// NewHeaderSet creates a header set from the given fields
func NewHeaderSet(fields ...HeaderField) *HeaderSet {
	hs := &HeaderSet{}
	for _, f := range fields {
		hs.Add(f.Name, f.Value)
	}
	return hs
}

// Add appends a field to the set
func (hs *HeaderSet) Add(name, value string) {
	hs.fields = append(hs.fields, HeaderField{Name: name, Value: value})
}

// Emit appends an already-constructed field
func (hs *HeaderSet) Emit(field HeaderField) {
	hs.fields = append(hs.fields, field)
}

// Fields returns the fields in emission order
func (hs *HeaderSet) Fields() []HeaderField {
	return hs.fields
}

// Len returns the number of fields, counting duplicates
func (hs *HeaderSet) Len() int {
	return len(hs.fields)
}

// Values returns the values recorded for a name, in emission order
func (hs *HeaderSet) Values(name string) []string {
	var values []string
	for _, f := range hs.fields {
		if f.Name == name {
			values = append(values, f.Value)
		}
	}
	return values
}

// Contains reports whether the set holds an exact (name, value) pair
func (hs *HeaderSet) Contains(field HeaderField) bool {
	for _, f := range hs.fields {
		if f == field {
			return true
		}
	}
	return false
}

// Equal reports whether two sets hold the same multiset of fields,
// disregarding order between distinct fields
func (hs *HeaderSet) Equal(other *HeaderSet) bool {
	if hs.Len() != other.Len() {
		return false
	}
	counts := make(map[HeaderField]int, len(hs.fields))
	for _, f := range hs.fields {
		counts[f]++
	}
	for _, f := range other.fields {
		counts[f]--
		if counts[f] < 0 {
			return false
		}
	}
	return true
}
