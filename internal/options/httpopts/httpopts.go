// Package httpopts holds the settings for the host's local HTTP management
// endpoint, used for out-of-process status polling of orchestration work.
package httpopts

import "time"

// Defaults applied by NewConfig.
const (
	// DefaultAsyncRequestSleepTime is how long an async status request
	// sleeps between polls of the orchestration state.
	DefaultAsyncRequestSleepTime = 30 * time.Second

	// DefaultRequestTimeout bounds a single management request.
	DefaultRequestTimeout = 100 * time.Second
)

// Config contains the local HTTP endpoint settings.
type Config struct {
	// AsyncRequestSleepTime is the polling interval for async status requests.
	AsyncRequestSleepTime time.Duration

	// RequestTimeout bounds a single management request.
	RequestTimeout time.Duration

	// LocalPort fixes the local endpoint port. Zero picks an ephemeral port.
	LocalPort int
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		AsyncRequestSleepTime: DefaultAsyncRequestSleepTime,
		RequestTimeout:        DefaultRequestTimeout,
	}
}
