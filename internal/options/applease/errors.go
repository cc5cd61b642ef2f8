package applease

import "errors"

// Standard errors for the applease package
var (
	// ErrInvalidLeaseInterval is returned for a non-positive lease interval
	ErrInvalidLeaseInterval = errors.New("lease interval must be positive")

	// ErrInvalidRenewInterval is returned for a non-positive renew interval
	ErrInvalidRenewInterval = errors.New("renew interval must be positive")

	// ErrInvalidAcquireInterval is returned for a non-positive acquire interval
	ErrInvalidAcquireInterval = errors.New("acquire interval must be positive")

	// ErrRenewExceedsLease is returned when the renew interval is not shorter
	// than the lease interval, which would let a held lease expire
	ErrRenewExceedsLease = errors.New("renew interval must be shorter than lease interval")
)
