package options

import "github.com/tasklattice/taskhost/internal/env"

// Resolve finalizes the task hub name before validation. It computes the
// lazy default when no hub was configured, then expands any {TOKEN}
// placeholders in the current value as a whole string. A changed value is
// written back through the hub name write path, so the pre-resolution
// original is preserved for diagnostics.
//
// Resolve runs exactly once during startup, after binding and before
// validation. Both arguments are required.
func Resolve(opts *Options, resolver env.Resolver) error {
	if opts == nil {
		return &PreconditionError{Argument: "options"}
	}
	if resolver == nil {
		return &PreconditionError{Argument: "environment resolver"}
	}

	current := opts.EnsureHubName(resolver)
	resolved := resolver.Expand(current)
	if resolved != current {
		opts.SetHubName(resolved)
	}

	return nil
}
