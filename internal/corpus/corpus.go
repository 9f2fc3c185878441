// Package corpus records and replays header-block sessions. A corpus file is
// a stream of length-framed records, each holding one encoded header block
// together with the header fields it is expected to decode to. Corpora are
// written by the CLI against a live encoder and replayed as codec regression
// checks.
package corpus

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lewinzki/hpack"
)

// HeaderPair is one expected header field
type HeaderPair struct {
	Name  string `json:"name" msgpack:"name"`
	Value string `json:"value" msgpack:"value"`
}

// Record pairs an encoded header block with its expected decoding
type Record struct {
	Seq     int          `json:"seq" msgpack:"seq"`
	Block   []byte       `json:"block" msgpack:"block"`
	Headers []HeaderPair `json:"headers" msgpack:"headers"`
}

// HeaderSet converts the expected pairs into a header set
func (r *Record) HeaderSet() *hpack.HeaderSet {
	hs := &hpack.HeaderSet{}
	for _, pair := range r.Headers {
		hs.Add(pair.Name, pair.Value)
	}
	return hs
}

// PairsFromSet flattens a header set into recordable pairs
func PairsFromSet(hs *hpack.HeaderSet) []HeaderPair {
	pairs := make([]HeaderPair, 0, hs.Len())
	for _, field := range hs.Fields() {
		pairs = append(pairs, HeaderPair{Name: field.Name, Value: field.Value})
	}
	return pairs
}

// Wire format: each record is a 4-octet big-endian payload length followed by
// the payload. Payloads are msgpack by default; JSON payloads (starting with
// '{') are accepted for hand-written fixtures.
const maxRecordSize = 16 << 20

// Writer appends records to a corpus stream
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write frames and appends one record
func (cw *Writer) Write(rec *Record) error {
	payload, err := msgpack.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	var frame [4]byte
	binary.BigEndian.PutUint32(frame[:], uint32(len(payload)))
	if _, err := cw.w.Write(frame[:]); err != nil {
		return err
	}
	_, err = cw.w.Write(payload)
	return err
}

// Reader iterates the records of a corpus stream
type Reader struct {
	r io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read returns the next record, or io.EOF at the end of the stream
func (cr *Reader) Read() (*Record, error) {
	var frame [4]byte
	if _, err := io.ReadFull(cr.r, frame[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read record frame: %w", err)
	}

	size := binary.BigEndian.Uint32(frame[:])
	if size > maxRecordSize {
		return nil, fmt.Errorf("record size %d exceeds limit", size)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(cr.r, payload); err != nil {
		return nil, fmt.Errorf("read record payload: %w", err)
	}

	var rec Record
	// Auto-detect: JSON starts with '{', msgpack with a fixmap byte
	if len(payload) > 0 && payload[0] == '{' {
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
	} else {
		if err := msgpack.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
	}

	return &rec, nil
}

// Recorder encodes header sets against a live encoder and writes the
// resulting blocks with their expected decodings
type Recorder struct {
	encoder *hpack.Encoder
	writer  *Writer
	seq     int
}

func NewRecorder(encoder *hpack.Encoder, w io.Writer) *Recorder {
	return &Recorder{encoder: encoder, writer: NewWriter(w)}
}

// Append encodes one header set and records the block
func (r *Recorder) Append(headers *hpack.HeaderSet) error {
	block := r.encoder.Encode(headers)
	rec := &Record{
		Seq:     r.seq,
		Block:   block,
		Headers: PairsFromSet(headers),
	}
	r.seq++
	return r.writer.Write(rec)
}
