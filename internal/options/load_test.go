package options

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullOptionsTOML = `
hub_name = "OrdersHub"

max_concurrent_activities = 16
max_concurrent_orchestrators = 8
extended_sessions_enabled = true
extended_session_idle_timeout = "2m"
max_orchestration_actions = 50000
entity_message_reorder_window = "10m"
local_rpc_endpoint_enabled = false
use_graceful_shutdown = true
rollback_entity_operations_on_exceptions = false
use_app_lease = false
store_inputs_in_history = true
overridable_existing_instance_states = "any"

[http]
local_port = 17071

[tracing]
enabled = true
version = "v1"

[notifications.event_topic]
topic_endpoint = "https://topic.example.com/api/events"
key_setting_name = "TOPIC_KEY"
publish_retry_count = 3
publish_retry_interval = "45s"

[app_lease]
renew_interval = "10s"

[storage_provider]
backend = "shard"
partition_count = 4
`

func TestNewFromBytes_FullDocument(t *testing.T) {
	t.Parallel()

	opts, err := NewFromBytes([]byte(fullOptionsTOML))
	require.NoError(t, err)

	assert.Equal(t, "OrdersHub", opts.HubName())
	assert.Equal(t, "OrdersHub", opts.OriginalHubName())

	require.NotNil(t, opts.MaxConcurrentActivities)
	assert.Equal(t, 16, *opts.MaxConcurrentActivities)
	require.NotNil(t, opts.MaxConcurrentOrchestrators)
	assert.Equal(t, 8, *opts.MaxConcurrentOrchestrators)
	assert.Nil(t, opts.MaxConcurrentEntities)

	assert.True(t, opts.ExtendedSessionsEnabled)
	assert.Equal(t, 2*time.Minute, opts.ExtendedSessionIdleTimeout)
	assert.Equal(t, 50000, opts.MaxOrchestrationActions)
	assert.Equal(t, 10*time.Minute, opts.EntityMessageReorderWindow)

	require.NotNil(t, opts.LocalRPCEndpointEnabled)
	assert.False(t, *opts.LocalRPCEndpointEnabled)
	assert.True(t, opts.UseGracefulShutdown)
	assert.False(t, opts.RollbackEntityOperationsOnExceptions)
	assert.Nil(t, opts.RaiseEventOnMissingOrchestration)
	assert.False(t, opts.UseAppLease)
	assert.True(t, opts.StoreInputsInHistory)
	assert.Equal(t, OverridableStatesAny, opts.OverridableExistingInstanceStates)

	// Partial sub-configuration tables keep their unset defaults.
	assert.Equal(t, 17071, opts.HTTP.LocalPort)
	assert.Equal(t, 30*time.Second, opts.HTTP.AsyncRequestSleepTime)
	assert.Equal(t, 10*time.Second, opts.AppLease.RenewInterval)
	assert.Equal(t, 60*time.Second, opts.AppLease.LeaseInterval)

	assert.True(t, opts.Tracing.Enabled)
	require.True(t, opts.Notifications.Enabled())
	assert.Equal(t, 45*time.Second, opts.Notifications.EventTopic.PublishRetryInterval)

	assert.Equal(t, "shard", opts.StorageProvider["backend"])
	assert.Equal(t, int64(4), opts.StorageProvider["partition_count"])
}

func TestNewFromBytes_EmptyDocumentKeepsDefaults(t *testing.T) {
	t.Parallel()

	opts, err := NewFromBytes(nil)
	require.NoError(t, err)

	assert.Empty(t, opts.HubName())
	assert.Equal(t, DefaultExtendedSessionIdleTimeout, opts.ExtendedSessionIdleTimeout)
	assert.Equal(t, DefaultMaxOrchestrationActions, opts.MaxOrchestrationActions)
	assert.True(t, opts.UseAppLease)
	assert.True(t, opts.RollbackEntityOperationsOnExceptions)
	assert.Equal(t, OverridableStatesNonRunning, opts.OverridableExistingInstanceStates)
	assert.Nil(t, opts.MaxConcurrentActivities)
}

func TestNewFromBytes_InvalidTOML(t *testing.T) {
	t.Parallel()

	_, err := NewFromBytes([]byte("hub_name = "))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFailedToLoadOptions)
}

func TestNewFromBytes_UnknownOverridableStates(t *testing.T) {
	t.Parallel()

	_, err := NewFromBytes([]byte(`overridable_existing_instance_states = "sometimes"`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFailedToLoadOptions)
	assert.Contains(t, err.Error(), "sometimes")
}

func TestNewFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "taskhost.toml")
	require.NoError(t, os.WriteFile(path, []byte(`hub_name = "FileHub"`), 0o600))

	opts, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "FileHub", opts.HubName())
}

func TestNewFromFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := NewFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFailedToLoadOptions)
}
