package startup

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/robbyt/go-supervisor/supervisor"

	"github.com/tasklattice/taskhost/internal/env"
	"github.com/tasklattice/taskhost/internal/options"
)

var _ supervisor.Runnable = (*Runner)(nil)

// Runner executes the startup configuration sequence under a supervisor.
// It runs the sequence once at boot, then parks until the context is
// canceled so the supervisor keeps the host alive.
type Runner struct {
	configPath   string
	resolver     env.Resolver
	sink         options.TraceSink
	storageDoc   map[string]any
	lastSequence atomic.Pointer[Sequence]

	logger *slog.Logger

	runCtx    context.Context
	runCancel context.CancelFunc
	parentCtx context.Context
}

// NewRunner creates a Runner that binds options from the given file path.
// An empty path runs against host defaults.
func NewRunner(configPath string, resolver env.Resolver, opts ...Option) (*Runner, error) {
	if resolver == nil {
		return nil, fmt.Errorf("%w: environment resolver", options.ErrMissingPrecondition)
	}

	runner := &Runner{
		configPath: configPath,
		resolver:   resolver,
		logger:     slog.Default().WithGroup("startup.Runner"),
		parentCtx:  context.Background(),
	}

	// Apply functional options
	for _, opt := range opts {
		opt(runner)
	}

	if runner.sink == nil {
		runner.sink = NewLogSink(runner.logger)
	}

	return runner, nil
}

// String implements the supervisor.Runnable interface
func (r *Runner) String() string {
	return "startup.Runner"
}

// Run implements the supervisor.Runnable interface
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Debug("Starting Runner")

	r.runCtx, r.runCancel = context.WithCancel(ctx)

	seq, err := New(r.configPath, r.resolver, r.sink, r.logger.Handler())
	if err != nil {
		return fmt.Errorf("failed to create startup sequence: %w", err)
	}
	seq.StorageDoc = r.storageDoc

	if err := seq.Run(); err != nil {
		return fmt.Errorf("startup configuration failed: %w", err)
	}
	r.lastSequence.Store(seq)

	r.logger.Info("Startup configuration completed",
		"hubName", seq.Options().HubName(),
		"duration", seq.GetTotalDuration())

	// block here waiting for a context cancellation
	select {
	case <-r.parentCtx.Done():
		r.logger.Debug("Parent context canceled")
	case <-r.runCtx.Done():
		r.logger.Debug("Run context canceled")
	}

	r.logger.Info("Runner shutting down")
	return nil
}

// Stop implements the supervisor.Runnable interface
func (r *Runner) Stop() {
	r.logger.Debug("Stopping Runner")
	if r.runCancel != nil {
		r.runCancel()
	}
}

// GetOptions returns the options from the last completed sequence, or nil
// if startup has not finished.
func (r *Runner) GetOptions() *options.Options {
	seq := r.lastSequence.Load()
	if seq == nil {
		return nil
	}
	return seq.Options()
}

// GetSequence returns the last completed startup sequence, or nil.
func (r *Runner) GetSequence() *Sequence {
	return r.lastSequence.Load()
}
