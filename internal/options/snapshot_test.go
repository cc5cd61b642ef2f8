package options

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklattice/taskhost/internal/env"
)

// captureSink records the single trace emitted during startup.
type captureSink struct {
	hubName string
	details string
	calls   int
}

func (s *captureSink) TraceConfiguration(hubName, details string) {
	s.hubName = hubName
	s.details = details
	s.calls++
}

func TestTrace_Preconditions(t *testing.T) {
	t.Parallel()

	err := Trace(nil, &captureSink{}, nil)
	assert.ErrorIs(t, err, ErrMissingPrecondition)

	err = Trace(New(), nil, nil)
	assert.ErrorIs(t, err, ErrMissingPrecondition)
}

func TestTrace_RestoresOriginalHubName(t *testing.T) {
	t.Parallel()

	opts := New()
	opts.SetHubName("Orig")
	resolver := env.FromMap(map[string]string{"SITE": "Resolved"})
	opts.SetHubName(resolver.Expand("{SITE}"))

	require.Equal(t, "Resolved", opts.HubName())

	sink := &captureSink{}
	require.NoError(t, Trace(opts, sink, nil))
	require.Equal(t, 1, sink.calls)

	// The emitted pair carries the effective hub name.
	assert.Equal(t, "Resolved", sink.hubName)

	// The snapshot body carries the configured (pre-resolution) value.
	var snap map[string]any
	require.NoError(t, json.Unmarshal([]byte(sink.details), &snap))
	assert.Equal(t, "Orig", snap["hubName"])
}

func TestTrace_StorageProviderOverride(t *testing.T) {
	t.Parallel()

	opts := New()
	opts.SetHubName("OrdersHub")
	opts.StorageProvider = map[string]any{"connection_setting": "bound-value"}

	external := map[string]any{"partition_count": 8, "backend": "shard"}

	sink := &captureSink{}
	require.NoError(t, Trace(opts, sink, external))

	var snap map[string]any
	require.NoError(t, json.Unmarshal([]byte(sink.details), &snap))

	storage, ok := snap["storageProvider"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "shard", storage["backend"])
	assert.NotContains(t, storage, "connection_setting")
}

func TestTrace_EmptyStorageDocKeepsBoundConfig(t *testing.T) {
	t.Parallel()

	opts := New()
	opts.SetHubName("OrdersHub")
	opts.StorageProvider = map[string]any{"connection_setting": "bound-value"}

	sink := &captureSink{}
	require.NoError(t, Trace(opts, sink, map[string]any{}))

	var snap map[string]any
	require.NoError(t, json.Unmarshal([]byte(sink.details), &snap))

	storage, ok := snap["storageProvider"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "bound-value", storage["connection_setting"])
}

func TestBuildSnapshot_PublicSurfaceOnly(t *testing.T) {
	t.Parallel()

	opts := New()
	opts.SetHubName("OrdersHub")
	opts.MaxConcurrentActivities = intPtr(10)

	snap := BuildSnapshot(opts, nil)
	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(data, &keys))

	// Resolution bookkeeping never leaks into the snapshot.
	assert.NotContains(t, keys, "original")
	assert.NotContains(t, keys, "resolved")
	assert.NotContains(t, keys, "defaultName")
	assert.NotContains(t, keys, "hub")

	assert.Contains(t, keys, "hubName")
	assert.Contains(t, keys, "http")
	assert.Contains(t, keys, "tracing")
	assert.Contains(t, keys, "notifications")
	assert.Contains(t, keys, "appLease")
}

func TestBuildSnapshot_Durations(t *testing.T) {
	t.Parallel()

	opts := New()
	opts.SetHubName("OrdersHub")

	snap := BuildSnapshot(opts, nil)
	assert.Equal(t, "30s", snap.ExtendedSessionIdleTimeout)
	assert.Equal(t, "30m0s", snap.EntityMessageReorderWindow)
	assert.Equal(t, "25s", snap.AppLease.RenewInterval)
	assert.Equal(t, "30s", snap.HTTP.AsyncRequestSleepTime)
}

func TestBuildSnapshot_NullableOptionsOmitted(t *testing.T) {
	t.Parallel()

	opts := New()
	opts.SetHubName("OrdersHub")

	data, err := json.Marshal(BuildSnapshot(opts, nil))
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(data, &keys))
	assert.NotContains(t, keys, "maxConcurrentActivities")
	assert.NotContains(t, keys, "localRpcEndpointEnabled")
	assert.NotContains(t, keys, "raiseEventOnMissingOrchestration")
}
