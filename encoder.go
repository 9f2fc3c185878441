package hpack

import (
	"bytes"
	"fmt"
)

// Encoder compresses header sets into HPACK header blocks.
// Each connection MUST have its own encoder instance, paired with the
// decoder on the peer side. Every mutation the encoder applies to its local
// context mirrors the mutation the peer's decoder will apply on receipt.
// Not safe for concurrent use.
type Encoder struct {
	ctx *Context

	// emptyThreshold is the fraction of the reference set that, once
	// exceeded by pending removals, makes emptying the whole set cheaper
	// than toggling entries off one by one
	emptyThreshold float64

	huffmanEnabled bool

	pendingMaxSize uint32
	maxSizeUpdate  bool
}

// NewEncoder creates an encoder with the given dynamic table maximum size.
// A size of 0 selects the draft-07 default of 4096 octets.
func NewEncoder(maxTableSize uint32) *Encoder {
	return &Encoder{
		ctx:            NewContext(maxTableSize),
		emptyThreshold: 0.5,
		huffmanEnabled: true,
	}
}

// SetEmptyThreshold tunes the reference-set emptying heuristic. The value is
// the fraction of reference-set entries that must be up for removal before a
// single emptying context update replaces individual toggles.
func (e *Encoder) SetEmptyThreshold(threshold float64) {
	e.emptyThreshold = threshold
}

// UseHuffman controls whether string literals may be Huffman-coded. Even when
// enabled, a literal is only coded when that strictly shrinks it.
func (e *Encoder) UseHuffman(enabled bool) {
	e.huffmanEnabled = enabled
}

// SetMaxTableSize schedules a dynamic table size change. The new size takes
// effect at the start of the next encoded block, announced on the wire as a
// context update so the peer applies the same change.
func (e *Encoder) SetMaxTableSize(size uint32) {
	e.pendingMaxSize = size
	e.maxSizeUpdate = true
}

// Encode encodes a header set against the current context and returns the
// header block. A nil set encodes like an empty one, removing every
// reference. Encoding has no runtime errors: a local context invariant
// violation is a programmer error and panics.
func (e *Encoder) Encode(headers *HeaderSet) []byte {
	buf := &bytes.Buffer{}

	if e.maxSizeUpdate {
		writeMaxSizeUpdate(buf, e.pendingMaxSize)
		e.ctx.SetMaxSize(e.pendingMaxSize)
		e.maxSizeUpdate = false
	}

	// The desired set, deduplicated. Repeated (name, value) pairs cannot be
	// expressed through the reference set, so copies beyond the first are
	// sent as plain literals at the end.
	desired := make(map[HeaderField]int)
	var order []HeaderField
	if headers != nil {
		for _, field := range headers.Fields() {
			if desired[field] == 0 {
				order = append(order, field)
			}
			desired[field]++
		}
	}

	e.removePhase(buf, desired)
	e.addPhase(buf, order)

	for _, field := range order {
		for extra := desired[field]; extra > 1; extra-- {
			e.writePlainLiteral(buf, field)
		}
	}

	return buf.Bytes()
}

// removePhase drops reference-set entries absent from the desired set, either
// with one emptying context update or by toggling entries off individually.
func (e *Encoder) removePhase(buf *bytes.Buffer, desired map[HeaderField]int) {
	refSet := e.ctx.referenceSet

	var toRemove []HeaderField
	for _, field := range refSet.Fields() {
		if desired[field] == 0 {
			toRemove = append(toRemove, field)
		}
	}

	if float64(len(toRemove)) > e.emptyThreshold*float64(refSet.Len()) {
		writeEmptyReferenceSet(buf)
		refSet.Empty()
		return
	}

	for _, field := range toRemove {
		index, ok := e.ctx.dynamicTable.FindExact(field.Name, field.Value)
		if !ok {
			// Every reference is backed by a dynamic table entry; eviction
			// removes both together. Reaching this means the local context
			// broke its own invariant.
			panic(fmt.Sprintf("hpack: reference set entry %q not in dynamic table", field.Name))
		}
		writeIndexedHeader(buf, index)
		refSet.Remove(field)
	}
}

// addPhase emits the desired fields missing from the reference set
func (e *Encoder) addPhase(buf *bytes.Buffer, order []HeaderField) {
	for _, field := range order {
		if e.ctx.referenceSet.Has(field) {
			// Already referenced: the decoder emits it at block end
			continue
		}

		index, exact, found := e.ctx.find(field)
		switch {
		case found && exact:
			writeIndexedHeader(buf, index)
			if index > e.ctx.dynamicTable.Len() {
				// Static table hit: the decoder promotes the entry into its
				// dynamic table, so we must do the same
				e.ctx.InsertReferenced(field)
			} else {
				e.ctx.referenceSet.Add(field, true)
			}
		case found:
			// Name matches but the value is new. Indexing it would grow the
			// table for a value unlikely to recur, so send the value as a
			// plain literal against the known name.
			writeIndexedNameLiteral(buf, literalWithoutIndexing, index, field.Value, e.huffman(field.Value))
		default:
			writeNewNameLiteral(buf, literalIncremental, field.Name, field.Value,
				e.huffman(field.Name), e.huffman(field.Value))
			e.ctx.InsertReferenced(field)
		}
	}
}

// writePlainLiteral emits a field without touching the context
func (e *Encoder) writePlainLiteral(buf *bytes.Buffer, field HeaderField) {
	if index, ok := e.ctx.dynamicTable.FindName(field.Name); ok {
		writeIndexedNameLiteral(buf, literalWithoutIndexing, index, field.Value, e.huffman(field.Value))
		return
	}
	if index, ok := e.ctx.staticTable.FindName(field.Name); ok {
		writeIndexedNameLiteral(buf, literalWithoutIndexing, index+e.ctx.dynamicTable.Len(), field.Value, e.huffman(field.Value))
		return
	}
	writeNewNameLiteral(buf, literalWithoutIndexing, field.Name, field.Value,
		e.huffman(field.Name), e.huffman(field.Value))
}

// huffman reports whether s should be Huffman-coded on the wire
func (e *Encoder) huffman(s string) bool {
	return e.huffmanEnabled && shouldHuffman(s)
}

// SetMaxTableSizeExternal applies a size change negotiated out of band, for
// example through settings, without announcing it on the wire
func (e *Encoder) SetMaxTableSizeExternal(size uint32) {
	e.ctx.SetMaxSize(size)
}

// Context exposes the encoder's compression context for inspection
func (e *Encoder) Context() *Context {
	return e.ctx
}
