package corpus

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/lewinzki/hpack"
)

// Summary reports the outcome of replaying a corpus
type Summary struct {
	Records    int
	Matched    int
	Mismatched int
	Failed     int
}

// Ok reports whether every record decoded to its expected header set
func (s Summary) Ok() bool {
	return s.Mismatched == 0 && s.Failed == 0
}

// Replay decodes every record against a fresh decoder and compares the
// result with the recorded expectation. Blocks in a corpus share one
// compression context, in recording order.
func Replay(r io.Reader, logger *zap.Logger) (Summary, error) {
	decoder := hpack.NewDecoder(0)
	reader := NewReader(r)

	var summary Summary
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("record %d: %w", summary.Records, err)
		}
		summary.Records++

		decoded, err := decoder.Decode(rec.Block)
		if err != nil {
			summary.Failed++
			logger.Warn("block failed to decode",
				zap.Int("seq", rec.Seq),
				zap.Error(err),
			)
			continue
		}

		if decoded.Equal(rec.HeaderSet()) {
			summary.Matched++
			continue
		}

		summary.Mismatched++
		logger.Warn("decoded headers do not match recording",
			zap.Int("seq", rec.Seq),
			zap.Int("expected_fields", len(rec.Headers)),
			zap.Int("decoded_fields", decoded.Len()),
		)
	}

	logger.Info("corpus replay finished",
		zap.Int("records", summary.Records),
		zap.Int("matched", summary.Matched),
		zap.Int("mismatched", summary.Mismatched),
		zap.Int("failed", summary.Failed),
	)

	return summary, nil
}
