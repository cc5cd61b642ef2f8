package notifications

import (
	"fmt"
	"strings"

	"github.com/tasklattice/taskhost/internal/fancy"
)

// String returns a string representation of the notification configuration
func (c *Config) String() string {
	if !c.Enabled() {
		return "Notifications: disabled"
	}
	return fmt.Sprintf("Notifications: endpoint=%s, retries=%d",
		c.EventTopic.TopicEndpoint, c.EventTopic.PublishRetryCount)
}

// ToTree returns a tree visualization of the notification configuration
func (c *Config) ToTree() *fancy.ComponentTree {
	tree := fancy.NewComponentTree("Notifications")

	if !c.Enabled() {
		tree.AddChild("Disabled")
		return tree
	}

	topic := c.EventTopic
	tree.AddChild(fmt.Sprintf("Topic Endpoint: %s", topic.TopicEndpoint))
	tree.AddChild(fmt.Sprintf("Key Setting: %s", topic.KeySettingName))
	tree.AddChild(fmt.Sprintf("Publish Retry Count: %d", topic.PublishRetryCount))
	tree.AddChild(fmt.Sprintf("Publish Retry Interval: %s", topic.PublishRetryInterval))
	if len(topic.PublishEventTypes) > 0 {
		tree.AddChild(fmt.Sprintf("Event Types: %s", strings.Join(topic.PublishEventTypes, ", ")))
	}

	return tree
}
