package applease

import (
	"fmt"

	"github.com/tasklattice/taskhost/internal/fancy"
)

// String returns a string representation of the app lease configuration
func (c *Config) String() string {
	return fmt.Sprintf("AppLease: lease=%s, renew=%s, acquire=%s",
		c.LeaseInterval, c.RenewInterval, c.AcquireInterval)
}

// ToTree returns a tree visualization of the app lease configuration
func (c *Config) ToTree() *fancy.ComponentTree {
	tree := fancy.NewComponentTree("App Lease")

	tree.AddChild(fmt.Sprintf("Lease Interval: %s", c.LeaseInterval))
	tree.AddChild(fmt.Sprintf("Renew Interval: %s", c.RenewInterval))
	tree.AddChild(fmt.Sprintf("Acquire Interval: %s", c.AcquireInterval))

	return tree
}
