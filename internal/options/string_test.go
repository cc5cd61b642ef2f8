package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_String(t *testing.T) {
	t.Parallel()

	opts := New()
	opts.SetHubName("OrdersHub")
	opts.MaxConcurrentActivities = intPtr(12)
	opts.StorageProvider = map[string]any{"backend": "shard"}

	rendered := opts.String()

	assert.Contains(t, rendered, "Task Host Options")
	assert.Contains(t, rendered, "OrdersHub")
	assert.Contains(t, rendered, "Max Concurrent Activities: 12")
	assert.Contains(t, rendered, "Max Concurrent Orchestrators: host default")
	assert.Contains(t, rendered, "Local RPC Endpoint Enabled: unset")
	assert.Contains(t, rendered, "Storage Provider")
}

func TestOptions_String_TriState(t *testing.T) {
	t.Parallel()

	enabled := true
	opts := New()
	opts.SetHubName("OrdersHub")
	opts.LocalRPCEndpointEnabled = &enabled

	assert.Contains(t, opts.String(), "Local RPC Endpoint Enabled: true")
}

func TestOverridableStatesFromString(t *testing.T) {
	t.Parallel()

	states, err := OverridableStatesFromString("")
	assert.NoError(t, err)
	assert.Equal(t, OverridableStatesNonRunning, states)

	states, err = OverridableStatesFromString("any")
	assert.NoError(t, err)
	assert.Equal(t, OverridableStatesAny, states)

	_, err = OverridableStatesFromString("bogus")
	assert.Error(t, err)
}
