package httpopts

import (
	"fmt"

	"github.com/tasklattice/taskhost/internal/fancy"
)

// String returns a string representation of the HTTP endpoint configuration
func (c *Config) String() string {
	return fmt.Sprintf("HTTP: sleep=%s, timeout=%s, port=%d",
		c.AsyncRequestSleepTime, c.RequestTimeout, c.LocalPort)
}

// ToTree returns a tree visualization of the HTTP endpoint configuration
func (c *Config) ToTree() *fancy.ComponentTree {
	tree := fancy.NewComponentTree("HTTP")

	tree.AddChild(fmt.Sprintf("Async Request Sleep Time: %s", c.AsyncRequestSleepTime))
	tree.AddChild(fmt.Sprintf("Request Timeout: %s", c.RequestTimeout))
	if c.LocalPort == 0 {
		tree.AddChild("Local Port: ephemeral")
	} else {
		tree.AddChild(fmt.Sprintf("Local Port: %d", c.LocalPort))
	}

	return tree
}
