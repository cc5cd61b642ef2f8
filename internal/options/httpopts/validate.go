package httpopts

import (
	"errors"
	"fmt"
)

// Validate performs validation for Config
func (c *Config) Validate() error {
	var errs []error

	if c.AsyncRequestSleepTime <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidSleepTime, c.AsyncRequestSleepTime))
	}

	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidRequestTimeout, c.RequestTimeout))
	}

	if c.LocalPort < 0 || c.LocalPort > 65535 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidPort, c.LocalPort))
	}

	return errors.Join(errs...)
}
