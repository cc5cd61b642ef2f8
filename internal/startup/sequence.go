// Package startup drives the configuration phase of the task host: bind
// the options from disk, resolve environment placeholders, validate the
// result, and emit the redacted startup trace. Each run is tracked as a
// Sequence with its own id, state machine, and replayable log history.
package startup

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-loglater"

	"github.com/tasklattice/taskhost/internal/env"
	"github.com/tasklattice/taskhost/internal/options"
	"github.com/tasklattice/taskhost/internal/startup/finitestate"
)

// Sequence represents one complete startup configuration pass.
type Sequence struct {
	// ID is the unique identifier for this startup pass
	ID uuid.UUID

	// ConfigPath is the options file this sequence binds from; empty means
	// host defaults only.
	ConfigPath string

	CreatedAt time.Time

	// State management
	fsm finitestate.Machine

	// Logging with history tracking
	logger       *slog.Logger
	logCollector *loglater.LogCollector

	resolver env.Resolver
	sink     options.TraceSink

	// StorageDoc is an optional external storage provider document that
	// replaces the bound storage section in the startup trace.
	StorageDoc map[string]any

	opts    *options.Options
	failure error
}

// New creates a Sequence ready to run against the given options file.
func New(
	configPath string,
	resolver env.Resolver,
	sink options.TraceSink,
	handler slog.Handler,
) (*Sequence, error) {
	if resolver == nil {
		return nil, fmt.Errorf("%w: environment resolver", options.ErrMissingPrecondition)
	}
	if sink == nil {
		return nil, fmt.Errorf("%w: trace sink", options.ErrMissingPrecondition)
	}

	seqID := uuid.Must(uuid.NewV6())

	sm, err := finitestate.New(handler)
	if err != nil {
		return nil, fmt.Errorf("%s failed to create state machine: %w", seqID, err)
	}

	logCollector := loglater.NewLogCollector(handler)
	logger := slog.New(logCollector).With(
		"id", seqID,
		"configPath", configPath)

	seq := &Sequence{
		ID:           seqID,
		ConfigPath:   configPath,
		CreatedAt:    time.Now(),
		fsm:          sm,
		logger:       logger,
		logCollector: logCollector,
		resolver:     resolver,
		sink:         sink,
	}

	seq.logger.Info("Startup sequence created")

	return seq, nil
}

// GetState returns the current phase of the sequence.
func (s *Sequence) GetState() string {
	return s.fsm.GetState()
}

// Options returns the options bound by this sequence, or nil before Bind.
func (s *Sequence) Options() *options.Options {
	return s.opts
}

// Failure returns the error that moved the sequence to the failed phase,
// or nil.
func (s *Sequence) Failure() error {
	return s.failure
}

// Run executes the full startup sequence: bind, resolve, validate, trace.
// The first phase error fails the sequence and is returned.
func (s *Sequence) Run() error {
	for _, phase := range []func() error{s.Bind, s.Resolve, s.Validate, s.Trace} {
		if err := phase(); err != nil {
			return err
		}
	}
	return nil
}

// Bind loads the options file into the domain model and applies defaults.
func (s *Sequence) Bind() error {
	if err := s.fsm.Transition(finitestate.StateBinding); err != nil {
		s.logger.Error("Failed to transition to binding phase", "error", err)
		return err
	}

	var (
		opts *options.Options
		err  error
	)
	if s.ConfigPath == "" {
		s.logger.Info("No options file set, using host defaults")
		opts = options.New()
	} else {
		opts, err = options.NewFromFile(s.ConfigPath)
		if err != nil {
			return s.fail(err)
		}
	}
	s.opts = opts

	if err := s.fsm.Transition(finitestate.StateBound); err != nil {
		s.logger.Error("Failed to transition to bound phase", "error", err)
		return err
	}

	s.logger.Info("Options bound", "phase", finitestate.StateBound)
	return nil
}

// Resolve expands environment placeholders and computes the effective
// task hub name.
func (s *Sequence) Resolve() error {
	if err := s.fsm.Transition(finitestate.StateResolving); err != nil {
		s.logger.Error("Failed to transition to resolving phase", "error", err)
		return err
	}

	if err := options.Resolve(s.opts, s.resolver); err != nil {
		return s.fail(err)
	}

	if err := s.fsm.Transition(finitestate.StateResolved); err != nil {
		s.logger.Error("Failed to transition to resolved phase", "error", err)
		return err
	}

	s.logger.Info("Options resolved",
		"phase", finitestate.StateResolved,
		"hubName", s.opts.HubName(),
		"defaultHubName", s.opts.IsDefaultHubName())
	return nil
}

// Validate checks the resolved options against the host invariants.
func (s *Sequence) Validate() error {
	if err := s.fsm.Transition(finitestate.StateValidating); err != nil {
		s.logger.Error("Failed to transition to validating phase", "error", err)
		return err
	}

	if err := options.Validate(s.opts, s.resolver); err != nil {
		return s.fail(err)
	}

	if err := s.fsm.Transition(finitestate.StateValidated); err != nil {
		s.logger.Error("Failed to transition to validated phase", "error", err)
		return err
	}

	s.logger.Info("Options validated", "phase", finitestate.StateValidated)
	return nil
}

// Trace emits the redacted options snapshot to the trace sink and
// completes the sequence.
func (s *Sequence) Trace() error {
	if err := s.fsm.Transition(finitestate.StateTracing); err != nil {
		s.logger.Error("Failed to transition to tracing phase", "error", err)
		return err
	}

	if err := options.Trace(s.opts, s.sink, s.StorageDoc); err != nil {
		return s.fail(err)
	}

	if err := s.fsm.Transition(finitestate.StateCompleted); err != nil {
		s.logger.Error("Failed to transition to completed phase", "error", err)
		return err
	}

	s.logger.Info(
		"Startup sequence completed",
		"phase", finitestate.StateCompleted,
		"duration", time.Since(s.CreatedAt),
	)
	return nil
}

// fail moves the sequence to the failed phase, recording the cause.
func (s *Sequence) fail(err error) error {
	if transErr := s.fsm.Transition(finitestate.StateFailed); transErr != nil {
		s.logger.Error("Failed to transition to failed phase",
			"error", transErr,
			"originalError", err)
		return transErr
	}

	s.failure = err
	s.logger.Error("Startup sequence failed", "phase", finitestate.StateFailed, "error", err)
	return err
}

// PlaybackLogs plays back the sequence logs to the given handler.
func (s *Sequence) PlaybackLogs(handler slog.Handler) error {
	return s.logCollector.PlayLogs(handler)
}

// GetTotalDuration returns the total duration of the sequence so far.
func (s *Sequence) GetTotalDuration() time.Duration {
	return time.Since(s.CreatedAt)
}
