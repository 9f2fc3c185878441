package hpack

// DynamicTable implements the HPACK dynamic table (draft-07 section 3.2).
// New entries are prepended at index 1 and old entries are evicted from the
// tail when the table size exceeds the maximum.
type DynamicTable struct {
	entries []HeaderField
	size    uint32 // Current size in octets
	maxSize uint32 // Maximum size in octets
}

// NewDynamicTable creates a new dynamic table with the specified maximum size
func NewDynamicTable(maxSize uint32) *DynamicTable {
	return &DynamicTable{
		entries: make([]HeaderField, 0, 32),
		maxSize: maxSize,
	}
}

// Add prepends a header field at index 1. The caller is responsible for
// evicting afterwards; insertion and eviction are separate steps so the
// evicted fields can be removed from the reference set as well.
func (dt *DynamicTable) Add(field HeaderField) {
	dt.entries = append([]HeaderField{field}, dt.entries...)
	dt.size += field.Size()
}

// Get retrieves a header field by 1-based index.
// Index 1 is the most recently added entry.
func (dt *DynamicTable) Get(index uint32) (HeaderField, bool) {
	if index < 1 || index > uint32(len(dt.entries)) {
		return HeaderField{}, false
	}
	return dt.entries[index-1], true
}

// FindExact searches for an exact match (name and value).
// Returns the 1-based index and true if found.
func (dt *DynamicTable) FindExact(name, value string) (uint32, bool) {
	for i, field := range dt.entries {
		if field.Name == name && field.Value == value {
			return uint32(i) + 1, true
		}
	}
	return 0, false
}

// FindName searches for a name match.
// Returns the first matching 1-based index and true if found.
func (dt *DynamicTable) FindName(name string) (uint32, bool) {
	for i, field := range dt.entries {
		if field.Name == name {
			return uint32(i) + 1, true
		}
	}
	return 0, false
}

// SetMaxSize updates the maximum table size. The caller evicts afterwards.
func (dt *DynamicTable) SetMaxSize(maxSize uint32) {
	dt.maxSize = maxSize
}

// MaxSize returns the configured maximum size in octets
func (dt *DynamicTable) MaxSize() uint32 {
	return dt.maxSize
}

// CurrentSize returns the current size of the table in octets
func (dt *DynamicTable) CurrentSize() uint32 {
	return dt.size
}

// Len returns the number of entries in the table
func (dt *DynamicTable) Len() uint32 {
	return uint32(len(dt.entries))
}

// RemoveOldest removes and returns the entry at the tail
func (dt *DynamicTable) RemoveOldest() (HeaderField, bool) {
	if len(dt.entries) == 0 {
		return HeaderField{}, false
	}
	last := len(dt.entries) - 1
	evicted := dt.entries[last]
	dt.entries = dt.entries[:last]
	dt.size -= evicted.Size()
	return evicted, true
}
