// Package notifications holds the lifecycle notification settings for the
// task host. Notifications publish orchestration lifecycle events to an
// external event topic; the feature is off unless a topic endpoint is set.
package notifications

import "time"

// DefaultPublishRetryInterval is used when a topic endpoint is configured
// without an explicit retry interval.
const DefaultPublishRetryInterval = 5 * time.Minute

// Config contains the notification settings.
type Config struct {
	// EventTopic configures publishing to an external event topic.
	// A nil EventTopic disables notifications entirely.
	EventTopic *EventTopicConfig
}

// EventTopicConfig describes the event topic publishing target.
type EventTopicConfig struct {
	// TopicEndpoint is the URL of the event topic. Empty disables publishing.
	TopicEndpoint string

	// KeySettingName names the environment variable holding the access key.
	// The key itself never appears in configuration.
	KeySettingName string

	// PublishRetryCount is the number of publish retries after a failure.
	PublishRetryCount int

	// PublishRetryInterval is the delay between publish retries.
	PublishRetryInterval time.Duration

	// PublishEventTypes restricts which lifecycle event types are published.
	// Empty means all types.
	PublishEventTypes []string
}

// NewConfig returns a Config with notifications disabled.
func NewConfig() *Config {
	return &Config{}
}

// Enabled reports whether lifecycle notifications are configured.
func (c *Config) Enabled() bool {
	return c != nil && c.EventTopic != nil && c.EventTopic.TopicEndpoint != ""
}
