package options

import (
	"strings"

	"github.com/tasklattice/taskhost/internal/env"
)

// FallbackHubName is used when no hub name is configured and the host
// identity variable is absent.
const FallbackHubName = "DefaultTaskHub"

// hubNameState is the three-slot resolution state for the task hub name.
//
//   - original: the first value ever assigned, before any environment
//     substitution. Later writes never touch it.
//   - resolved: the effective value. Every write replaces it.
//   - defaultName: the baseline used by IsDefaultHubName. Set by the lazy
//     computation in EnsureHubName or by SetDefaultHubName.
type hubNameState struct {
	original    string
	originalSet bool
	resolved    string
	resolvedSet bool
	defaultName string
}

// HubName returns the effective task hub name. It is empty until a write or
// EnsureHubName happens; reading never touches the environment.
func (o *Options) HubName() string {
	return o.hub.resolved
}

// SetHubName assigns the task hub name. The first write is captured as the
// original value; every write replaces the resolved value.
func (o *Options) SetHubName(name string) {
	if !o.hub.originalSet {
		o.hub.original = name
		o.hub.originalSet = true
	}
	o.hub.resolved = name
	o.hub.resolvedSet = true
}

// SetDefaultHubName assigns the task hub name and marks it as the baseline,
// for callers declaring a value rather than overriding one.
func (o *Options) SetDefaultHubName(name string) {
	o.SetHubName(name)
	o.hub.defaultName = name
}

// IsDefaultHubName reports whether the effective hub name still equals the
// baseline. Comparison is case-insensitive; two empty values count as equal.
func (o *Options) IsDefaultHubName() bool {
	return strings.EqualFold(o.hub.defaultName, o.hub.resolved)
}

// OriginalHubName returns the pre-resolution hub name for diagnostics. When
// the hub was never assigned explicitly it falls back to the resolved value.
func (o *Options) OriginalHubName() string {
	if o.hub.originalSet {
		return o.hub.original
	}
	return o.hub.resolved
}

// EnsureHubName computes the hub name if no value was ever assigned: the
// host identity variable when present, the fixed fallback otherwise. The
// computed value is memoized as both the resolved value and the baseline, so
// later environment changes have no effect. The original slot is left
// untouched; a computed default was never "configured".
func (o *Options) EnsureHubName(resolver env.Resolver) string {
	if o.hub.resolvedSet {
		return o.hub.resolved
	}

	name := FallbackHubName
	if value, ok := resolver.Lookup(env.AppNameVariable); ok && value != "" {
		name = value
	}

	o.hub.resolved = name
	o.hub.resolvedSet = true
	o.hub.defaultName = name
	return name
}
