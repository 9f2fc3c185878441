package hpack

import "bytes"

// String literals (draft-07 section 4.1.2): one octet carrying the Huffman
// flag in the top bit and a 7-bit-prefix length, followed by that many octets
// of payload.

// readString decodes a string literal from buf
func readString(buf *bytes.Reader) (string, error) {
	first, err := peekByte(buf)
	if err != nil {
		return "", ErrTruncated
	}
	huffman := first&0x80 != 0

	length, err := readInteger(buf, 7)
	if err != nil {
		return "", err
	}

	if length > uint32(buf.Len()) {
		return "", ErrTruncated
	}

	payload := make([]byte, length)
	if length > 0 {
		if _, err := buf.Read(payload); err != nil {
			return "", ErrTruncated
		}
	}

	if huffman {
		decoded, err := huffmanDecode(payload)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}

	return string(payload), nil
}

// writeString appends the string literal form of s. When huffman is set the
// payload is Huffman-coded and the H bit raised.
func writeString(buf *bytes.Buffer, s string, huffman bool) {
	if huffman {
		encoded := huffmanEncode([]byte(s))
		writeInteger(buf, uint32(len(encoded)), 7, 0x80)
		buf.Write(encoded)
		return
	}
	writeInteger(buf, uint32(len(s)), 7, 0x00)
	buf.WriteString(s)
}

// shouldHuffman reports whether Huffman coding strictly shrinks s
func shouldHuffman(s string) bool {
	return len(s) > 0 && huffmanEncodedLen([]byte(s)) < len(s)
}

// peekByte returns the next byte without consuming it
func peekByte(buf *bytes.Reader) (byte, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return 0, err
	}
	if err := buf.UnreadByte(); err != nil {
		return 0, err
	}
	return b, nil
}
