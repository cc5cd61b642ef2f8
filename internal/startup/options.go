package startup

import (
	"context"
	"log/slog"

	"github.com/tasklattice/taskhost/internal/options"
)

type Option func(*Runner)

// WithLogger sets a custom logger for the Runner instance.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithLogHandler sets a custom log handler for the Runner instance.
func WithLogHandler(handler slog.Handler) Option {
	return func(r *Runner) {
		r.logger = slog.New(handler)
	}
}

// WithContext sets a custom parent context for the Runner instance.
func WithContext(ctx context.Context) Option {
	return func(r *Runner) {
		r.parentCtx = ctx
	}
}

// WithStorageDoc sets an external storage provider document that replaces
// the bound storage section in the startup trace.
func WithStorageDoc(doc map[string]any) Option {
	return func(r *Runner) {
		r.storageDoc = doc
	}
}

// WithTraceSink sets the sink that receives the startup configuration trace.
func WithTraceSink(sink options.TraceSink) Option {
	return func(r *Runner) {
		r.sink = sink
	}
}
