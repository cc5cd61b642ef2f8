package options

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/tasklattice/taskhost/internal/options/notifications"
	"github.com/tasklattice/taskhost/internal/options/tracing"
)

// fileOptions is the TOML schema for the host options file. It mirrors the
// public surface of Options but keeps the binding concerns (pointer fields
// for set-detection, string durations) out of the domain model. The hub name
// binds through the write path so first-write capture of the original value
// holds for file values too.
type fileOptions struct {
	HubName string `toml:"hub_name"`

	MaxConcurrentActivities     *int `toml:"max_concurrent_activities"`
	MaxConcurrentOrchestrators  *int `toml:"max_concurrent_orchestrators"`
	MaxConcurrentEntities       *int `toml:"max_concurrent_entities"`
	MaxEntityOperationBatchSize *int `toml:"max_entity_operation_batch_size"`

	ExtendedSessionsEnabled    *bool     `toml:"extended_sessions_enabled"`
	ExtendedSessionIdleTimeout *Duration `toml:"extended_session_idle_timeout"`
	MaxOrchestrationActions    *int      `toml:"max_orchestration_actions"`
	EntityMessageReorderWindow *Duration `toml:"entity_message_reorder_window"`

	LocalRPCEndpointEnabled              *bool   `toml:"local_rpc_endpoint_enabled"`
	UseGracefulShutdown                  *bool   `toml:"use_graceful_shutdown"`
	RollbackEntityOperationsOnExceptions *bool   `toml:"rollback_entity_operations_on_exceptions"`
	RaiseEventOnMissingOrchestration     *bool   `toml:"raise_event_on_missing_orchestration"`
	UseAppLease                          *bool   `toml:"use_app_lease"`
	StoreInputsInHistory                 *bool   `toml:"store_inputs_in_history"`
	OverridableExistingInstanceStates    *string `toml:"overridable_existing_instance_states"`

	HTTP          *httpFile          `toml:"http"`
	Tracing       *tracingFile       `toml:"tracing"`
	Notifications *notificationsFile `toml:"notifications"`
	AppLease      *appLeaseFile      `toml:"app_lease"`

	StorageProvider map[string]any `toml:"storage_provider"`
}

type httpFile struct {
	AsyncRequestSleepTime *Duration `toml:"async_request_sleep_time"`
	RequestTimeout        *Duration `toml:"request_timeout"`
	LocalPort             *int      `toml:"local_port"`
}

type tracingFile struct {
	Enabled               *bool   `toml:"enabled"`
	TraceInputsAndOutputs *bool   `toml:"trace_inputs_and_outputs"`
	TraceReplayEvents     *bool   `toml:"trace_replay_events"`
	Version               *string `toml:"version"`
}

type notificationsFile struct {
	EventTopic *eventTopicFile `toml:"event_topic"`
}

type eventTopicFile struct {
	TopicEndpoint        string    `toml:"topic_endpoint"`
	KeySettingName       string    `toml:"key_setting_name"`
	PublishRetryCount    *int      `toml:"publish_retry_count"`
	PublishRetryInterval *Duration `toml:"publish_retry_interval"`
	PublishEventTypes    []string  `toml:"publish_event_types"`
}

type appLeaseFile struct {
	LeaseInterval   *Duration `toml:"lease_interval"`
	RenewInterval   *Duration `toml:"renew_interval"`
	AcquireInterval *Duration `toml:"acquire_interval"`
}

// NewFromFile builds an Options from a TOML file, applying built-in defaults
// for everything the file leaves unset.
func NewFromFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadOptions, err)
	}
	return NewFromBytes(data)
}

// NewFromBytes builds an Options from TOML bytes.
func NewFromBytes(data []byte) (*Options, error) {
	var file fileOptions
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadOptions, err)
	}

	opts := New()
	if err := file.apply(opts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadOptions, err)
	}
	return opts, nil
}

// apply merges the file values onto an Options carrying defaults. Partial
// tables only override the keys they name.
func (f *fileOptions) apply(opts *Options) error {
	if f.HubName != "" {
		opts.SetHubName(f.HubName)
	}

	opts.MaxConcurrentActivities = f.MaxConcurrentActivities
	opts.MaxConcurrentOrchestrators = f.MaxConcurrentOrchestrators
	opts.MaxConcurrentEntities = f.MaxConcurrentEntities
	opts.MaxEntityOperationBatchSize = f.MaxEntityOperationBatchSize

	if f.ExtendedSessionsEnabled != nil {
		opts.ExtendedSessionsEnabled = *f.ExtendedSessionsEnabled
	}
	if f.ExtendedSessionIdleTimeout != nil {
		opts.ExtendedSessionIdleTimeout = f.ExtendedSessionIdleTimeout.AsDuration()
	}
	if f.MaxOrchestrationActions != nil {
		opts.MaxOrchestrationActions = *f.MaxOrchestrationActions
	}
	if f.EntityMessageReorderWindow != nil {
		opts.EntityMessageReorderWindow = f.EntityMessageReorderWindow.AsDuration()
	}

	opts.LocalRPCEndpointEnabled = f.LocalRPCEndpointEnabled
	if f.UseGracefulShutdown != nil {
		opts.UseGracefulShutdown = *f.UseGracefulShutdown
	}
	if f.RollbackEntityOperationsOnExceptions != nil {
		opts.RollbackEntityOperationsOnExceptions = *f.RollbackEntityOperationsOnExceptions
	}
	opts.RaiseEventOnMissingOrchestration = f.RaiseEventOnMissingOrchestration
	if f.UseAppLease != nil {
		opts.UseAppLease = *f.UseAppLease
	}
	if f.StoreInputsInHistory != nil {
		opts.StoreInputsInHistory = *f.StoreInputsInHistory
	}
	if f.OverridableExistingInstanceStates != nil {
		states, err := OverridableStatesFromString(*f.OverridableExistingInstanceStates)
		if err != nil {
			return err
		}
		opts.OverridableExistingInstanceStates = states
	}

	if f.HTTP != nil {
		if f.HTTP.AsyncRequestSleepTime != nil {
			opts.HTTP.AsyncRequestSleepTime = f.HTTP.AsyncRequestSleepTime.AsDuration()
		}
		if f.HTTP.RequestTimeout != nil {
			opts.HTTP.RequestTimeout = f.HTTP.RequestTimeout.AsDuration()
		}
		if f.HTTP.LocalPort != nil {
			opts.HTTP.LocalPort = *f.HTTP.LocalPort
		}
	}

	if f.Tracing != nil {
		if f.Tracing.Enabled != nil {
			opts.Tracing.Enabled = *f.Tracing.Enabled
		}
		if f.Tracing.TraceInputsAndOutputs != nil {
			opts.Tracing.TraceInputsAndOutputs = *f.Tracing.TraceInputsAndOutputs
		}
		if f.Tracing.TraceReplayEvents != nil {
			opts.Tracing.TraceReplayEvents = *f.Tracing.TraceReplayEvents
		}
		if f.Tracing.Version != nil {
			version, err := tracing.VersionFromString(*f.Tracing.Version)
			if err != nil {
				return err
			}
			opts.Tracing.Version = version
		}
	}

	if f.Notifications != nil && f.Notifications.EventTopic != nil {
		topic := &notifications.EventTopicConfig{
			TopicEndpoint:        f.Notifications.EventTopic.TopicEndpoint,
			KeySettingName:       f.Notifications.EventTopic.KeySettingName,
			PublishRetryInterval: notifications.DefaultPublishRetryInterval,
			PublishEventTypes:    f.Notifications.EventTopic.PublishEventTypes,
		}
		if f.Notifications.EventTopic.PublishRetryCount != nil {
			topic.PublishRetryCount = *f.Notifications.EventTopic.PublishRetryCount
		}
		if f.Notifications.EventTopic.PublishRetryInterval != nil {
			topic.PublishRetryInterval = f.Notifications.EventTopic.PublishRetryInterval.AsDuration()
		}
		opts.Notifications.EventTopic = topic
	}

	if f.AppLease != nil {
		if f.AppLease.LeaseInterval != nil {
			opts.AppLease.LeaseInterval = f.AppLease.LeaseInterval.AsDuration()
		}
		if f.AppLease.RenewInterval != nil {
			opts.AppLease.RenewInterval = f.AppLease.RenewInterval.AsDuration()
		}
		if f.AppLease.AcquireInterval != nil {
			opts.AppLease.AcquireInterval = f.AppLease.AcquireInterval.AsDuration()
		}
	}

	if f.StorageProvider != nil {
		opts.StorageProvider = f.StorageProvider
	}

	return nil
}
