package tracing

import "errors"

// ErrInvalidVersion is returned when an unsupported tracing version is provided
var ErrInvalidVersion = errors.New("invalid tracing version")
