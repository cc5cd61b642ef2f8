package tracing

import "fmt"

// Validate performs validation for Config
func (c *Config) Validate() error {
	if !c.Version.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidVersion, c.Version)
	}
	return nil
}
