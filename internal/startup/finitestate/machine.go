// Package finitestate provides a finite state machine that tracks the
// startup configuration sequence.
//
// Startup Lifecycle:
//  1. Binding - Raw configuration is being read and bound to the options model
//  2. Bound - Options model populated, defaults applied
//  3. Resolving - Environment placeholders and the lazy hub name are resolved
//  4. Resolved - Effective values computed
//  5. Validating - Invariant checks running against the resolved options
//  6. Validated - All checks passed
//  7. Tracing - Redacted snapshot emitted to the trace sink
//  8. Completed - Startup configuration finished (terminal state)
//
// Any phase may move to Failed, which is terminal.
package finitestate

import (
	"context"
	"log/slog"

	"github.com/robbyt/go-fsm"
)

// Phase constants for the startup configuration lifecycle.
const (
	StateCreated    = "created"
	StateBinding    = "binding"
	StateBound      = "bound"
	StateResolving  = "resolving"
	StateResolved   = "resolved"
	StateValidating = "validating"
	StateValidated  = "validated"
	StateTracing    = "tracing"
	StateCompleted  = "completed"
	StateFailed     = "failed"
)

// StartupTransitions defines the valid phase transitions for a startup
// sequence. The flow is strictly linear; the only branch is failure.
var StartupTransitions = map[string][]string{
	StateCreated:    {StateBinding, StateFailed},
	StateBinding:    {StateBound, StateFailed},
	StateBound:      {StateResolving, StateFailed},
	StateResolving:  {StateResolved, StateFailed},
	StateResolved:   {StateValidating, StateFailed},
	StateValidating: {StateValidated, StateFailed},
	StateValidated:  {StateTracing, StateFailed},
	StateTracing:    {StateCompleted, StateFailed},
	StateCompleted:  {},
	StateFailed:     {},
}

// Machine defines the interface for the finite state machine that tracks
// the startup sequence lifecycle.
type Machine interface {
	// Transition attempts to transition the state machine to the specified state.
	Transition(state string) error

	// TransitionBool attempts to transition the state machine to the specified state.
	TransitionBool(state string) bool

	// GetState returns the current state of the state machine.
	GetState() string

	// GetStateChan returns a channel that emits the state machine's state whenever it changes.
	// The channel is closed when the provided context is canceled.
	GetStateChan(ctx context.Context) <-chan string
}

// New creates a new startup state machine in the created phase.
func New(handler slog.Handler) (Machine, error) {
	return fsm.New(handler, StateCreated, StartupTransitions)
}
