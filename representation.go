package hpack

import "bytes"

// The four wire representations (draft-07 section 4.2), distinguished by the
// high bits of the first octet:
//
//	  0   1   2   3   4   5   6   7
//	+---+---+---+---+---+---+---+---+
//	| 1 |        Index (7+)         |
//	+---+---------------------------+
//	      Indexed Header Field
//
//	+---+---+---+---+---+---+---+---+
//	| 0 | 1 |      Index (6+)       |  index 0: name string follows
//	+---+---+-----------------------+
//	| H |     Value Length (7+)     |
//	+---+---------------------------+
//	| Value String (Length octets)  |
//	+-------------------------------+
//	 Literal with Incremental Indexing
//
//	+---+---+---+---+---+---+---+---+
//	| 0 | 0 | 0 | 0 |  Index (4+)   |  0001: Never Indexed variant
//	+---+---+-----------------------+
//	 Literal without Indexing (same shape as above)
//
//	+---+---+---+---+---+---+---+---+
//	| 0 | 0 | 1 | 1 |       0       |  empty the reference set
//	+---+---+---+---+---+---+---+---+
//	| 0 | 0 | 1 | 0 | Max size (4+) |  change dynamic table max size
//	+---+---------------------------+
//	           Context Update

// literalKind selects among the three literal representations
type literalKind int

const (
	literalIncremental literalKind = iota
	literalWithoutIndexing
	literalNeverIndexed
)

// prefix returns the flag bits and integer prefix width of the literal form
func (k literalKind) prefix() (byte, int) {
	switch k {
	case literalIncremental:
		return 0x40, 6
	case literalNeverIndexed:
		return 0x10, 4
	default:
		return 0x00, 4
	}
}

const (
	contextUpdateEmptyRefSet = 0x30 // 0011 0000, exactly
	contextUpdateMaxSizeFlag = 0x20 // 0010 xxxx, 4-bit-prefix size
)

// writeIndexedHeader appends an indexed header field representation
func writeIndexedHeader(buf *bytes.Buffer, index uint32) {
	writeInteger(buf, index, 7, 0x80)
}

// writeIndexedNameLiteral appends a literal representation whose name is an
// index into the combined table space
func writeIndexedNameLiteral(buf *bytes.Buffer, kind literalKind, index uint32, value string, huffman bool) {
	flags, bits := kind.prefix()
	writeInteger(buf, index, bits, flags)
	writeString(buf, value, huffman)
}

// writeNewNameLiteral appends a literal representation carrying both name and
// value strings. The index 0 in the prefix marks the new-name form.
func writeNewNameLiteral(buf *bytes.Buffer, kind literalKind, name, value string, nameHuffman, valueHuffman bool) {
	flags, _ := kind.prefix()
	buf.WriteByte(flags)
	writeString(buf, name, nameHuffman)
	writeString(buf, value, valueHuffman)
}

// writeEmptyReferenceSet appends the reference-set-emptying context update
func writeEmptyReferenceSet(buf *bytes.Buffer) {
	buf.WriteByte(contextUpdateEmptyRefSet)
}

// writeMaxSizeUpdate appends the table-size-change context update
func writeMaxSizeUpdate(buf *bytes.Buffer, maxSize uint32) {
	writeInteger(buf, maxSize, 4, contextUpdateMaxSizeFlag)
}
