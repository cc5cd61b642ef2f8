package options

import (
	"fmt"
	"strings"

	"github.com/tasklattice/taskhost/internal/env"
)

const (
	// DefaultSlotName is the deployment slot that needs no hub isolation.
	DefaultSlotName = "Production"

	// NativeWorkerRuntime is the in-process worker runtime identifier, the
	// only runtime that supports extended sessions.
	NativeWorkerRuntime = "dotnet"
)

// Validate checks a fully bound, placeholder-resolved Options for internal
// consistency. Checks run in order and the first violation is returned as a
// ConfigurationError naming the offending field. Validation is deterministic
// for a given environment; a failure is fatal to startup.
func Validate(opts *Options, resolver env.Resolver) error {
	if opts == nil {
		return &PreconditionError{Argument: "options"}
	}
	if resolver == nil {
		return &PreconditionError{Argument: "environment resolver"}
	}

	hubName := opts.HubName()
	if hubName == "" {
		return &ConfigurationError{
			Field:  "HubName",
			Reason: "task hub name must not be empty",
		}
	}

	// A non-default slot sharing the default hub name would collide with the
	// other slots' orchestration state in the same backing store.
	if slot, ok := resolver.Lookup(env.SlotNameVariable); ok && slot != "" {
		if !strings.EqualFold(slot, DefaultSlotName) && opts.IsDefaultHubName() {
			return &ConfigurationError{
				Field: "HubName",
				Reason: fmt.Sprintf(
					"deployment slot %q requires an explicit task hub name; the default %q is shared across slots",
					slot, hubName),
			}
		}
	}

	if opts.ExtendedSessionsEnabled {
		if runtime, ok := resolver.Lookup(env.WorkerRuntimeVariable); ok && runtime != "" {
			if !strings.EqualFold(runtime, NativeWorkerRuntime) {
				return &ConfigurationError{
					Field: "ExtendedSessionsEnabled",
					Reason: fmt.Sprintf(
						"extended sessions are not supported for the %q worker runtime", runtime),
				}
			}
		}
	}

	if err := opts.Notifications.Validate(); err != nil {
		return &ConfigurationError{Field: "Notifications", Reason: err.Error()}
	}

	if err := requirePositive("MaxConcurrentActivities", opts.MaxConcurrentActivities); err != nil {
		return err
	}
	if err := requirePositive("MaxConcurrentOrchestrators", opts.MaxConcurrentOrchestrators); err != nil {
		return err
	}
	if err := requirePositive("MaxConcurrentEntities", opts.MaxConcurrentEntities); err != nil {
		return err
	}
	if err := requirePositive("MaxEntityOperationBatchSize", opts.MaxEntityOperationBatchSize); err != nil {
		return err
	}

	return validateSupplementary(opts)
}

// validateSupplementary covers the defaulted options and sub-configuration
// blocks after the core invariants pass.
func validateSupplementary(opts *Options) error {
	if opts.ExtendedSessionIdleTimeout <= 0 {
		return &ConfigurationError{
			Field:  "ExtendedSessionIdleTimeout",
			Reason: fmt.Sprintf("must be positive, got %s", opts.ExtendedSessionIdleTimeout),
		}
	}
	if opts.MaxOrchestrationActions <= 0 {
		return &ConfigurationError{
			Field:  "MaxOrchestrationActions",
			Reason: fmt.Sprintf("must be positive, got %d", opts.MaxOrchestrationActions),
		}
	}
	if opts.EntityMessageReorderWindow <= 0 {
		return &ConfigurationError{
			Field:  "EntityMessageReorderWindow",
			Reason: fmt.Sprintf("must be positive, got %s", opts.EntityMessageReorderWindow),
		}
	}
	if !opts.OverridableExistingInstanceStates.IsValid() {
		return &ConfigurationError{
			Field:  "OverridableExistingInstanceStates",
			Reason: fmt.Sprintf("unknown value %q", opts.OverridableExistingInstanceStates),
		}
	}

	if err := opts.HTTP.Validate(); err != nil {
		return &ConfigurationError{Field: "HTTP", Reason: err.Error()}
	}
	if err := opts.Tracing.Validate(); err != nil {
		return &ConfigurationError{Field: "Tracing", Reason: err.Error()}
	}
	if err := opts.AppLease.Validate(); err != nil {
		return &ConfigurationError{Field: "AppLease", Reason: err.Error()}
	}

	return nil
}

func requirePositive(field string, value *int) error {
	if value != nil && *value <= 0 {
		return &ConfigurationError{
			Field:  field,
			Reason: fmt.Sprintf("must be a positive integer, got %d", *value),
		}
	}
	return nil
}
