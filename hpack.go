// Package hpack implements HPACK header compression for HTTP/2 as specified
// by draft-ietf-httpbis-header-compression-07.
//
// The draft-07 wire format differs from the later RFC 7541 in two important
// ways: the combined index space puts the dynamic table FIRST (indices
// 1..|dynamic|, then the static table), and both peers maintain a reference
// set of entries considered present in the current header block. Indexed
// representations toggle membership in that set, and entries still referenced
// at the end of a block are emitted without appearing on the wire at all.
//
// Each connection MUST keep one dedicated Encoder and one dedicated Decoder,
// paired with the opposite context on the peer. Losing synchronization (for
// example replaying a header block against a stale context) corrupts every
// subsequent block in that direction. Neither type is safe for concurrent use.
package hpack

const (
	// DefaultDynamicTableSize is the default maximum size of the dynamic
	// table in octets (draft-07 section 3.1.1)
	DefaultDynamicTableSize = 4096
)
