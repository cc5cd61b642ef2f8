package notifications

import (
	"errors"
	"fmt"
)

// Validate performs validation for Config. Settings are only checked when a
// topic endpoint is configured; a disabled block is always valid.
func (c *Config) Validate() error {
	if !c.Enabled() {
		return nil
	}

	topic := c.EventTopic
	var errs []error

	if topic.KeySettingName == "" {
		errs = append(errs, ErrMissingKeySetting)
	}

	if topic.PublishRetryCount < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrNegativeRetryCount, topic.PublishRetryCount))
	}

	if topic.PublishRetryInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidRetryInterval, topic.PublishRetryInterval))
	}

	for i, eventType := range topic.PublishEventTypes {
		if eventType == "" {
			errs = append(errs, fmt.Errorf("%w: index %d", ErrEmptyEventType, i))
		}
	}

	return errors.Join(errs...)
}
