package options

import (
	"errors"
	"fmt"
)

var (
	// ErrFailedToLoadOptions wraps failures while binding an options file
	ErrFailedToLoadOptions = errors.New("failed to load host options")

	// ErrInvalidConfiguration is the sentinel all ConfigurationError values unwrap to
	ErrInvalidConfiguration = errors.New("invalid host configuration")

	// ErrMissingPrecondition is the sentinel all PreconditionError values unwrap to
	ErrMissingPrecondition = errors.New("missing precondition")
)

// ConfigurationError reports a fully-bound configuration that violates an
// invariant. Field names the offending option so operators can correct the
// configuration without reading source.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfiguration, e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// PreconditionError reports a missing required collaborator or prior-phase
// output, such as resolving before the options exist.
type PreconditionError struct {
	Argument string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s is required", ErrMissingPrecondition, e.Argument)
}

func (e *PreconditionError) Unwrap() error {
	return ErrMissingPrecondition
}
