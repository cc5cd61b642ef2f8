package applease

import (
	"errors"
	"fmt"
)

// Validate performs validation for Config
func (c *Config) Validate() error {
	var errs []error

	if c.LeaseInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidLeaseInterval, c.LeaseInterval))
	}

	if c.RenewInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidRenewInterval, c.RenewInterval))
	}

	if c.AcquireInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidAcquireInterval, c.AcquireInterval))
	}

	if c.LeaseInterval > 0 && c.RenewInterval >= c.LeaseInterval {
		errs = append(errs, fmt.Errorf("%w: renew=%s lease=%s",
			ErrRenewExceedsLease, c.RenewInterval, c.LeaseInterval))
	}

	return errors.Join(errs...)
}
