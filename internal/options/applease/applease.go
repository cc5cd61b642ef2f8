// Package applease holds the application-level lease settings. The lease
// grants one host instance exclusive ownership of the task hub's partitions;
// acquisition and renewal happen outside this subsystem.
package applease

import "time"

// Defaults applied by NewConfig.
const (
	// DefaultLeaseInterval is how long an acquired lease is held before expiry.
	DefaultLeaseInterval = 60 * time.Second

	// DefaultRenewInterval is how often a held lease is renewed.
	DefaultRenewInterval = 25 * time.Second

	// DefaultAcquireInterval is how often a waiting host retries acquisition.
	DefaultAcquireInterval = 5 * time.Minute
)

// Config contains the app lease settings.
type Config struct {
	// LeaseInterval is the lease expiry window.
	LeaseInterval time.Duration

	// RenewInterval is the renewal period for a held lease.
	RenewInterval time.Duration

	// AcquireInterval is the retry period while waiting for the lease.
	AcquireInterval time.Duration
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		LeaseInterval:   DefaultLeaseInterval,
		RenewInterval:   DefaultRenewInterval,
		AcquireInterval: DefaultAcquireInterval,
	}
}
