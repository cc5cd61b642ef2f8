package notifications

import "errors"

// Standard errors for the notifications package
var (
	// ErrMissingKeySetting is returned when a topic endpoint is configured
	// without naming the key setting
	ErrMissingKeySetting = errors.New("event topic endpoint requires a key setting name")

	// ErrNegativeRetryCount is returned for a negative publish retry count
	ErrNegativeRetryCount = errors.New("publish retry count cannot be negative")

	// ErrInvalidRetryInterval is returned for a non-positive publish retry interval
	ErrInvalidRetryInterval = errors.New("publish retry interval must be positive")

	// ErrEmptyEventType is returned when the publish event type list contains an empty entry
	ErrEmptyEventType = errors.New("publish event type cannot be empty")
)
