// Package recovery wraps panic handling around code paths fed untrusted
// input, such as decoding header blocks pasted into the CLI or received over
// the inspector endpoint.
package recovery

import (
	"runtime/debug"

	"go.uber.org/zap"
)

type Recoverer struct {
	logger *zap.Logger
}

func NewRecoverer(logger *zap.Logger) *Recoverer {
	return &Recoverer{logger: logger}
}

// Recover logs a recovered panic with its stack. Use in a defer.
func (r *Recoverer) Recover(location string) {
	if p := recover(); p != nil {
		r.logger.Error("panic recovered",
			zap.String("location", location),
			zap.Any("panic", p),
			zap.ByteString("stack", debug.Stack()),
		)
	}
}

// Guard runs fn and converts a panic into a logged failure, reporting
// whether fn completed
func (r *Recoverer) Guard(location string, fn func()) (completed bool) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("panic recovered",
				zap.String("location", location),
				zap.Any("panic", p),
				zap.ByteString("stack", debug.Stack()),
			)
			completed = false
		}
	}()

	fn()
	return true
}

// SafeGo starts fn on a new goroutine with panic recovery attached
func (r *Recoverer) SafeGo(name string, fn func()) {
	go func() {
		defer r.Recover(name)
		fn()
	}()
}
