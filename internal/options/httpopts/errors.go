package httpopts

import "errors"

// Standard errors for the httpopts package
var (
	// ErrInvalidSleepTime is returned for a non-positive async request sleep time
	ErrInvalidSleepTime = errors.New("async request sleep time must be positive")

	// ErrInvalidRequestTimeout is returned for a non-positive request timeout
	ErrInvalidRequestTimeout = errors.New("request timeout must be positive")

	// ErrInvalidPort is returned for a port outside the valid range
	ErrInvalidPort = errors.New("local port must be between 0 and 65535")
)
