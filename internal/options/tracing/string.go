package tracing

import (
	"fmt"

	"github.com/tasklattice/taskhost/internal/fancy"
)

// String returns a string representation of the tracing configuration
func (c *Config) String() string {
	return fmt.Sprintf("Tracing: enabled=%t, version=%s", c.Enabled, c.Version)
}

// ToTree returns a tree visualization of the tracing configuration
func (c *Config) ToTree() *fancy.ComponentTree {
	tree := fancy.NewComponentTree("Tracing")

	tree.AddChild(fmt.Sprintf("Enabled: %t", c.Enabled))
	tree.AddChild(fmt.Sprintf("Trace Inputs And Outputs: %t", c.TraceInputsAndOutputs))
	tree.AddChild(fmt.Sprintf("Trace Replay Events: %t", c.TraceReplayEvents))
	tree.AddChild(fmt.Sprintf("Version: %s", c.Version))

	return tree
}
