// Package options is the configuration aggregate for a task orchestration
// host. An Options value is built once at startup, bound from external
// configuration, resolved against the environment, validated, and then
// treated as immutable for the life of the process.
package options

import (
	"fmt"
	"time"

	"github.com/tasklattice/taskhost/internal/options/applease"
	"github.com/tasklattice/taskhost/internal/options/httpopts"
	"github.com/tasklattice/taskhost/internal/options/notifications"
	"github.com/tasklattice/taskhost/internal/options/tracing"
)

// Defaults applied by New.
const (
	DefaultExtendedSessionIdleTimeout = 30 * time.Second
	DefaultMaxOrchestrationActions    = 100_000
	DefaultEntityMessageReorderWindow = 30 * time.Minute
)

// Constants for OverridableStates
const (
	// OverridableStatesNonRunning allows a new orchestration start to replace
	// an existing instance only when it is in a non-running state.
	OverridableStatesNonRunning OverridableStates = "non_running"

	// OverridableStatesAny allows a new start to replace an existing instance
	// in any state.
	OverridableStatesAny OverridableStates = "any"
)

// OverridableStates enumerates which existing-instance states may be
// overridden by a new orchestration start.
type OverridableStates string

// String returns the string representation of OverridableStates
func (s OverridableStates) String() string {
	return string(s)
}

// IsValid checks if the OverridableStates value is valid
func (s OverridableStates) IsValid() bool {
	switch s {
	case OverridableStatesNonRunning, OverridableStatesAny:
		return true
	default:
		return false
	}
}

// OverridableStatesFromString converts a string to an OverridableStates value
func OverridableStatesFromString(s string) (OverridableStates, error) {
	switch s {
	case "non_running", "":
		return OverridableStatesNonRunning, nil
	case "any":
		return OverridableStatesAny, nil
	default:
		return "", fmt.Errorf("unknown overridable states value: %s", s)
	}
}

// Options is the aggregate root for host configuration. It is exclusively
// owned by the startup sequence and is not safe for concurrent mutation.
type Options struct {
	// hub holds the three-slot task hub name resolution state. All reads and
	// writes of the hub name go through the methods in hubname.go.
	hub hubNameState

	// Nested sub-configuration blocks.
	HTTP          *httpopts.Config
	Tracing       *tracing.Config
	Notifications *notifications.Config
	AppLease      *applease.Config

	// StorageProvider is opaque configuration for the selected storage
	// backend. Its schema is owned by the storage subsystem and passed
	// through unmodified.
	StorageProvider map[string]any

	// Bounded concurrency and batching options. Nil defers to host-level
	// defaults; a set value must be strictly positive.
	MaxConcurrentActivities     *int
	MaxConcurrentOrchestrators  *int
	MaxConcurrentEntities       *int
	MaxEntityOperationBatchSize *int

	// ExtendedSessionsEnabled keeps orchestration state in memory across
	// consecutive message deliveries instead of replaying history.
	ExtendedSessionsEnabled bool

	// ExtendedSessionIdleTimeout evicts an idle extended session.
	ExtendedSessionIdleTimeout time.Duration

	// MaxOrchestrationActions caps scheduled actions in a single history.
	MaxOrchestrationActions int

	// EntityMessageReorderWindow is how long out-of-order entity messages
	// are buffered before being treated as lost.
	EntityMessageReorderWindow time.Duration

	// LocalRPCEndpointEnabled controls the local RPC endpoint for
	// out-of-process workers. Nil lets the host decide per worker runtime.
	LocalRPCEndpointEnabled *bool

	// UseGracefulShutdown drains in-flight work on shutdown.
	UseGracefulShutdown bool

	// RollbackEntityOperationsOnExceptions undoes an entity batch when an
	// operation throws.
	RollbackEntityOperationsOnExceptions bool

	// RaiseEventOnMissingOrchestration controls whether raising an event to
	// a missing orchestration fails. Nil defers to the host default.
	RaiseEventOnMissingOrchestration *bool

	// UseAppLease requires the host to hold the app lease before processing.
	UseAppLease bool

	// StoreInputsInHistory copies orchestration inputs into history events.
	StoreInputsInHistory bool

	// OverridableExistingInstanceStates selects which existing instances a
	// new orchestration start may replace.
	OverridableExistingInstanceStates OverridableStates
}

// New returns an Options populated with built-in defaults. The task hub name
// is left unresolved until Resolve runs.
func New() *Options {
	return &Options{
		HTTP:                                 httpopts.NewConfig(),
		Tracing:                              tracing.NewConfig(),
		Notifications:                        notifications.NewConfig(),
		AppLease:                             applease.NewConfig(),
		StorageProvider:                      map[string]any{},
		ExtendedSessionIdleTimeout:           DefaultExtendedSessionIdleTimeout,
		MaxOrchestrationActions:              DefaultMaxOrchestrationActions,
		EntityMessageReorderWindow:           DefaultEntityMessageReorderWindow,
		RollbackEntityOperationsOnExceptions: true,
		UseAppLease:                          true,
		OverridableExistingInstanceStates:    OverridableStatesNonRunning,
	}
}
