package array

import (
	"io"
	"log/slog"
)

type options struct {
	boundsCheck bool
	logger      *slog.Logger
}

// Option configures array construction.
type Option func(*options)

// WithBoundsCheck enables range validation on every Index call.
//
// Unchecked arrays trust the caller: an index outside its axis either
// aliases a neighbouring row or trips the runtime slice bounds check.
// Checked arrays panic with an *IndexError instead. At is always checked.
func WithBoundsCheck(enabled bool) Option {
	return func(o *options) {
		o.boundsCheck = enabled
	}
}

// WithLogger configures the logger used for allocation and release events.
//
// If nil is passed, logging is discarded.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: discardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
