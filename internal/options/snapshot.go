package options

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TraceSink receives the startup configuration snapshot. Implementations own
// the actual I/O; this package only builds the record.
type TraceSink interface {
	TraceConfiguration(hubName, details string)
}

// Snapshot is the serializable view of the effective configuration. It
// carries only the public configuration surface; handlers and override hooks
// never appear here. The hub name is the pre-resolution original so
// operators can compare what was configured against what the runtime
// resolved it to.
type Snapshot struct {
	HubName string `json:"hubName"`

	MaxConcurrentActivities     *int `json:"maxConcurrentActivities,omitempty"`
	MaxConcurrentOrchestrators  *int `json:"maxConcurrentOrchestrators,omitempty"`
	MaxConcurrentEntities       *int `json:"maxConcurrentEntities,omitempty"`
	MaxEntityOperationBatchSize *int `json:"maxEntityOperationBatchSize,omitempty"`

	ExtendedSessionsEnabled    bool   `json:"extendedSessionsEnabled"`
	ExtendedSessionIdleTimeout string `json:"extendedSessionIdleTimeout"`
	MaxOrchestrationActions    int    `json:"maxOrchestrationActions"`
	EntityMessageReorderWindow string `json:"entityMessageReorderWindow"`

	LocalRPCEndpointEnabled              *bool  `json:"localRpcEndpointEnabled,omitempty"`
	UseGracefulShutdown                  bool   `json:"useGracefulShutdown"`
	RollbackEntityOperationsOnExceptions bool   `json:"rollbackEntityOperationsOnExceptions"`
	RaiseEventOnMissingOrchestration     *bool  `json:"raiseEventOnMissingOrchestration,omitempty"`
	UseAppLease                          bool   `json:"useAppLease"`
	StoreInputsInHistory                 bool   `json:"storeInputsInHistory"`
	OverridableExistingInstanceStates    string `json:"overridableExistingInstanceStates"`

	HTTP          httpSnapshot          `json:"http"`
	Tracing       tracingSnapshot       `json:"tracing"`
	Notifications notificationsSnapshot `json:"notifications"`
	AppLease      appLeaseSnapshot      `json:"appLease"`

	// StorageProvider is the opaque storage backend document. When the
	// storage subsystem supplies its own document it replaces the bound one.
	StorageProvider map[string]any `json:"storageProvider,omitempty"`
}

type httpSnapshot struct {
	AsyncRequestSleepTime string `json:"asyncRequestSleepTime"`
	RequestTimeout        string `json:"requestTimeout"`
	LocalPort             int    `json:"localPort"`
}

type tracingSnapshot struct {
	Enabled               bool   `json:"enabled"`
	TraceInputsAndOutputs bool   `json:"traceInputsAndOutputs"`
	TraceReplayEvents     bool   `json:"traceReplayEvents"`
	Version               string `json:"version"`
}

type notificationsSnapshot struct {
	Enabled              bool   `json:"enabled"`
	TopicEndpoint        string `json:"topicEndpoint,omitempty"`
	KeySettingName       string `json:"keySettingName,omitempty"`
	PublishRetryCount    int    `json:"publishRetryCount,omitempty"`
	PublishRetryInterval string `json:"publishRetryInterval,omitempty"`
	PublishEventTypes    string `json:"publishEventTypes,omitempty"`
}

type appLeaseSnapshot struct {
	LeaseInterval   string `json:"leaseInterval"`
	RenewInterval   string `json:"renewInterval"`
	AcquireInterval string `json:"acquireInterval"`
}

// BuildSnapshot copies the public configuration surface of opts into a
// Snapshot. A non-empty storageProvider document replaces the bound one,
// since that nested schema is owned by the storage subsystem.
func BuildSnapshot(opts *Options, storageProvider map[string]any) Snapshot {
	snap := Snapshot{
		HubName: opts.OriginalHubName(),

		MaxConcurrentActivities:     opts.MaxConcurrentActivities,
		MaxConcurrentOrchestrators:  opts.MaxConcurrentOrchestrators,
		MaxConcurrentEntities:       opts.MaxConcurrentEntities,
		MaxEntityOperationBatchSize: opts.MaxEntityOperationBatchSize,

		ExtendedSessionsEnabled:    opts.ExtendedSessionsEnabled,
		ExtendedSessionIdleTimeout: opts.ExtendedSessionIdleTimeout.String(),
		MaxOrchestrationActions:    opts.MaxOrchestrationActions,
		EntityMessageReorderWindow: opts.EntityMessageReorderWindow.String(),

		LocalRPCEndpointEnabled:              opts.LocalRPCEndpointEnabled,
		UseGracefulShutdown:                  opts.UseGracefulShutdown,
		RollbackEntityOperationsOnExceptions: opts.RollbackEntityOperationsOnExceptions,
		RaiseEventOnMissingOrchestration:     opts.RaiseEventOnMissingOrchestration,
		UseAppLease:                          opts.UseAppLease,
		StoreInputsInHistory:                 opts.StoreInputsInHistory,
		OverridableExistingInstanceStates:    opts.OverridableExistingInstanceStates.String(),

		HTTP: httpSnapshot{
			AsyncRequestSleepTime: opts.HTTP.AsyncRequestSleepTime.String(),
			RequestTimeout:        opts.HTTP.RequestTimeout.String(),
			LocalPort:             opts.HTTP.LocalPort,
		},
		Tracing: tracingSnapshot{
			Enabled:               opts.Tracing.Enabled,
			TraceInputsAndOutputs: opts.Tracing.TraceInputsAndOutputs,
			TraceReplayEvents:     opts.Tracing.TraceReplayEvents,
			Version:               opts.Tracing.Version.String(),
		},
		AppLease: appLeaseSnapshot{
			LeaseInterval:   opts.AppLease.LeaseInterval.String(),
			RenewInterval:   opts.AppLease.RenewInterval.String(),
			AcquireInterval: opts.AppLease.AcquireInterval.String(),
		},
		StorageProvider: opts.StorageProvider,
	}

	if opts.Notifications.Enabled() {
		topic := opts.Notifications.EventTopic
		snap.Notifications = notificationsSnapshot{
			Enabled:              true,
			TopicEndpoint:        topic.TopicEndpoint,
			KeySettingName:       topic.KeySettingName,
			PublishRetryCount:    topic.PublishRetryCount,
			PublishRetryInterval: topic.PublishRetryInterval.String(),
			PublishEventTypes:    strings.Join(topic.PublishEventTypes, ","),
		}
	}

	if len(storageProvider) > 0 {
		snap.StorageProvider = storageProvider
	}

	return snap
}

// Trace serializes the effective configuration and hands it to the sink as a
// (hub name, details) pair. The hub name on the pair is the effective
// resolved name; the snapshot body carries the pre-resolution original.
func Trace(opts *Options, sink TraceSink, storageProvider map[string]any) error {
	if opts == nil {
		return &PreconditionError{Argument: "options"}
	}
	if sink == nil {
		return &PreconditionError{Argument: "trace sink"}
	}

	snap := BuildSnapshot(opts, storageProvider)
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize configuration snapshot: %w", err)
	}

	sink.TraceConfiguration(opts.HubName(), string(data))
	return nil
}
