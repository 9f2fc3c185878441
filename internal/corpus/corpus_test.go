package corpus

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lewinzki/hpack"
)

func TestRecordRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	records := []*Record{
		{Seq: 0, Block: []byte{0x82}, Headers: []HeaderPair{{Name: ":method", Value: "GET"}}},
		{Seq: 1, Block: nil, Headers: []HeaderPair{{Name: ":method", Value: "GET"}}},
	}
	for _, rec := range records {
		require.NoError(t, w.Write(rec))
	}

	r := NewReader(&buf)
	for _, want := range records {
		got, err := r.Read()
		require.NoError(t, err)
		assert.Equal(t, want.Seq, got.Seq)
		assert.Equal(t, want.Block, got.Block)
		assert.Equal(t, want.Headers, got.Headers)
	}

	_, err := r.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderAcceptsJSONPayload(t *testing.T) {
	payload, err := json.Marshal(&Record{
		Seq:     7,
		Block:   []byte{0x82},
		Headers: []HeaderPair{{Name: ":method", Value: "GET"}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	var frame [4]byte
	binary.BigEndian.PutUint32(frame[:], uint32(len(payload)))
	buf.Write(frame[:])
	buf.Write(payload)

	rec, err := NewReader(&buf).Read()
	require.NoError(t, err)
	assert.Equal(t, 7, rec.Seq)
	assert.Equal(t, []byte{0x82}, rec.Block)
}

func TestReaderTruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	var frame [4]byte
	binary.BigEndian.PutUint32(frame[:], 10)
	buf.Write(frame[:])
	buf.WriteString("short")

	_, err := NewReader(&buf).Read()
	assert.Error(t, err)
}

func TestRecordAndReplay(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(hpack.NewEncoder(0), &buf)

	sets := []*hpack.HeaderSet{
		hpack.NewHeaderSet(
			hpack.HeaderField{Name: ":method", Value: "GET"},
			hpack.HeaderField{Name: ":path", Value: "/index.html"},
		),
		hpack.NewHeaderSet(
			hpack.HeaderField{Name: ":method", Value: "GET"},
			hpack.HeaderField{Name: "x-request-id", Value: "deadbeef"},
		),
		hpack.NewHeaderSet(
			hpack.HeaderField{Name: "x-request-id", Value: "deadbeef"},
		),
	}
	for _, hs := range sets {
		require.NoError(t, rec.Append(hs))
	}

	summary, err := Replay(&buf, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Records)
	assert.Equal(t, 3, summary.Matched)
	assert.True(t, summary.Ok())
}

func TestReplayDetectsTampering(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	// An indexed header pointing at static :method GET, recorded as if it
	// decoded to something else entirely
	require.NoError(t, w.Write(&Record{
		Seq:     0,
		Block:   []byte{0x82},
		Headers: []HeaderPair{{Name: "bogus", Value: "value"}},
	}))
	// An invalid block: indexed representation with index 0
	require.NoError(t, w.Write(&Record{
		Seq:   1,
		Block: []byte{0x80},
	}))

	summary, err := Replay(&buf, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Records)
	assert.Equal(t, 1, summary.Mismatched)
	assert.Equal(t, 1, summary.Failed)
	assert.False(t, summary.Ok())
}
