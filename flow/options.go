package flow

import (
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-bloodflow/internal/preview"
)

// Option configures how files are read and rendered.
type Option func(*options)

type options struct {
	previewLimit int
	log          *zap.Logger
}

func defaultOptions() *options {
	return &options{
		previewLimit: preview.DefaultLimit,
		log:          zap.NewNop(),
	}
}

func newOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithPreviewLimit sets how many elements of each array are shown.
// Non-positive values are ignored.
func WithPreviewLimit(k int) Option {
	return func(o *options) {
		if k > 0 {
			o.previewLimit = k
		}
	}
}

// WithLogger sets the logger for per-file events.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}
