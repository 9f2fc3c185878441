package hpack

import "bytes"

// Decoder decompresses HPACK header blocks.
// Each connection MUST have its own decoder instance, paired with the
// encoder on the peer side; the compression context is a protocol contract
// across calls. Not safe for concurrent use.
type Decoder struct {
	ctx *Context
}

// NewDecoder creates a decoder with the given dynamic table maximum size.
// A size of 0 selects the draft-07 default of 4096 octets.
func NewDecoder(maxTableSize uint32) *Decoder {
	return &Decoder{ctx: NewContext(maxTableSize)}
}

// Decode decodes one complete header block into the set of header fields it
// carries. On any protocol error the context may have been partially mutated
// but no header fields are surfaced.
func (d *Decoder) Decode(data []byte) (*HeaderSet, error) {
	headers := &HeaderSet{}
	d.ctx.referenceSet.Reset()

	buf := bytes.NewReader(data)
	for buf.Len() > 0 {
		b, err := peekByte(buf)
		if err != nil {
			return nil, ErrTruncated
		}

		switch {
		case b&0x80 != 0:
			// Indexed Header Field (1xxxxxxx)
			err = d.decodeIndexedHeader(buf, headers)
		case b&0xc0 == 0x40:
			// Literal with Incremental Indexing (01xxxxxx)
			err = d.decodeLiteral(buf, headers, literalIncremental)
		case b&0xe0 == 0x20:
			// Context Update (001xxxxx)
			err = d.decodeContextUpdate(buf)
		case b&0xf0 == 0x10:
			// Literal Never Indexed (0001xxxx)
			err = d.decodeLiteral(buf, headers, literalNeverIndexed)
		default:
			// Literal without Indexing (0000xxxx)
			err = d.decodeLiteral(buf, headers, literalWithoutIndexing)
		}

		if err != nil {
			return nil, err
		}
	}

	// Reference set emission: every entry still referenced but not emitted
	// during this block is part of the header set
	for _, field := range d.ctx.referenceSet.Unemitted() {
		headers.Emit(field)
	}

	return headers, nil
}

// decodeIndexedHeader handles the index-only representation. Indexing an
// entry already in the reference set toggles it off; indexing anything else
// emits it, and a static entry is additionally promoted into the dynamic
// table (draft-07 section 3.2.1).
func (d *Decoder) decodeIndexedHeader(buf *bytes.Reader, headers *HeaderSet) error {
	index, err := readInteger(buf, 7)
	if err != nil {
		return err
	}

	field, ok := d.ctx.Resolve(index)
	if !ok {
		return ErrInvalidIndex
	}

	if d.ctx.referenceSet.Has(field) {
		d.ctx.referenceSet.Remove(field)
		return nil
	}

	headers.Emit(field)
	if index > d.ctx.dynamicTable.Len() {
		// Static table hit: prepend a copy into the dynamic table. The
		// reference lands inside InsertReferenced so that a field too large
		// for the table is immediately evicted together with its reference.
		d.ctx.InsertReferenced(field)
	} else {
		d.ctx.referenceSet.Add(field, true)
	}

	return nil
}

// decodeLiteral handles the three literal representations. The name is either
// an index into the combined table space or, when the index is 0, a string
// literal that follows. Only the incremental-indexing form touches the
// context.
func (d *Decoder) decodeLiteral(buf *bytes.Reader, headers *HeaderSet, kind literalKind) error {
	_, bits := kind.prefix()
	index, err := readInteger(buf, bits)
	if err != nil {
		return err
	}

	var name string
	if index == 0 {
		if name, err = readString(buf); err != nil {
			return err
		}
	} else {
		field, ok := d.ctx.Resolve(index)
		if !ok {
			return ErrInvalidIndex
		}
		name = field.Name
	}

	value, err := readString(buf)
	if err != nil {
		return err
	}

	field := HeaderField{Name: name, Value: value}
	headers.Emit(field)

	if kind == literalIncremental {
		d.ctx.InsertReferenced(field)
	}

	return nil
}

// decodeContextUpdate handles the 001xxxxx forms: 0x30 exactly empties the
// reference set, 0010xxxx changes the dynamic table maximum size, anything
// else in the 001 space is reserved.
func (d *Decoder) decodeContextUpdate(buf *bytes.Reader) error {
	b, err := peekByte(buf)
	if err != nil {
		return ErrTruncated
	}

	if b == contextUpdateEmptyRefSet {
		buf.ReadByte()
		d.ctx.referenceSet.Empty()
		return nil
	}

	if b&0xf0 == contextUpdateMaxSizeFlag {
		maxSize, err := readInteger(buf, 4)
		if err != nil {
			return err
		}
		// The settings-negotiated upper bound is enforced by the caller;
		// within it the received value is authoritative
		d.ctx.SetMaxSize(maxSize)
		return nil
	}

	return ErrReservedPattern
}

// SetMaxTableSize applies an externally negotiated dynamic table size hint,
// evicting entries to fit
func (d *Decoder) SetMaxTableSize(size uint32) {
	d.ctx.SetMaxSize(size)
}

// Context exposes the decoder's compression context for inspection
func (d *Decoder) Context() *Context {
	return d.ctx
}
