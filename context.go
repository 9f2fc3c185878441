package hpack

// Context is the compression state shared in shape between an encoder and the
// peer's decoder: the dynamic table, the static table and the reference set.
// Both sides must apply identical mutations in identical order or the
// connection direction is corrupted. Not safe for concurrent use.
type Context struct {
	dynamicTable *DynamicTable
	staticTable  *StaticTable
	referenceSet *ReferenceSet
}

// NewContext creates a compression context with the given dynamic table
// maximum size. A size of 0 selects the draft-07 default of 4096 octets.
func NewContext(maxSize uint32) *Context {
	if maxSize == 0 {
		maxSize = DefaultDynamicTableSize
	}
	return &Context{
		dynamicTable: NewDynamicTable(maxSize),
		staticTable:  GetStaticTable(),
		referenceSet: NewReferenceSet(),
	}
}

// Resolve looks up an index in the combined space: 1..|dynamic| addresses the
// dynamic table, |dynamic|+1..N the static table. The split point moves as
// the dynamic table grows and shrinks within a header block.
func (c *Context) Resolve(index uint32) (HeaderField, bool) {
	dynLen := c.dynamicTable.Len()
	if index >= 1 && index <= dynLen {
		return c.dynamicTable.Get(index)
	}
	return c.staticTable.Get(index - dynLen)
}

// InsertReferenced prepends a field into the dynamic table, adds it to the
// reference set, then evicts until the table fits its maximum size again.
// Evicted entries are also removed from the reference set, so a field too
// large for the table leaves no reference behind. The reference is added
// before eviction runs for exactly that reason.
func (c *Context) InsertReferenced(field HeaderField) {
	c.dynamicTable.Add(field)
	c.referenceSet.Add(field, true)
	c.evict()
}

// SetMaxSize changes the dynamic table maximum size and evicts to fit
func (c *Context) SetMaxSize(maxSize uint32) {
	c.dynamicTable.SetMaxSize(maxSize)
	c.evict()
}

// evict removes the oldest dynamic entries until the size bound holds,
// dropping the matching references as it goes
func (c *Context) evict() {
	for c.dynamicTable.CurrentSize() > c.dynamicTable.MaxSize() && c.dynamicTable.Len() > 0 {
		evicted, _ := c.dynamicTable.RemoveOldest()
		c.referenceSet.Remove(evicted)
	}
}

// find searches the combined index space for a field. It returns the index
// and whether the value matched too; a name-only match reports false. An
// exact match in either table wins over any name-only match; between matches
// of the same kind, the dynamic table wins over the static table.
func (c *Context) find(field HeaderField) (uint32, bool, bool) {
	if index, ok := c.dynamicTable.FindExact(field.Name, field.Value); ok {
		return index, true, true
	}
	if index, ok := c.staticTable.FindExact(field.Name, field.Value); ok {
		return index + c.dynamicTable.Len(), true, true
	}
	if index, ok := c.dynamicTable.FindName(field.Name); ok {
		return index, false, true
	}
	if index, ok := c.staticTable.FindName(field.Name); ok {
		return index + c.dynamicTable.Len(), false, true
	}
	return 0, false, false
}

// combinedLen returns the total number of addressable entries
func (c *Context) combinedLen() uint32 {
	return c.dynamicTable.Len() + uint32(c.staticTable.Size())
}

// DynamicTable exposes the dynamic table for inspection
func (c *Context) DynamicTable() *DynamicTable {
	return c.dynamicTable
}

// ReferenceSet exposes the reference set for inspection
func (c *Context) ReferenceSet() *ReferenceSet {
	return c.referenceSet
}
