package options

import (
	"fmt"

	"github.com/tasklattice/taskhost/internal/fancy"
)

// String returns a pretty-printed tree representation of the options
func (o *Options) String() string {
	return OptionsTree(o)
}

// OptionsTree converts an Options value into a rendered tree string
func OptionsTree(opts *Options) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render(
		fmt.Sprintf("Task Host Options (hub: %s)", fancy.HubName(opts.HubName()))))

	hubTree := t.Child("Task Hub")
	hubTree.Child(fmt.Sprintf("Effective: %s", opts.HubName()))
	hubTree.Child(fmt.Sprintf("Configured: %s", opts.OriginalHubName()))
	hubTree.Child(fmt.Sprintf("Is Default: %t", opts.IsDefaultHubName()))

	limitsTree := t.Child("Limits")
	limitsTree.Child(formatBounded("Max Concurrent Activities", opts.MaxConcurrentActivities))
	limitsTree.Child(formatBounded("Max Concurrent Orchestrators", opts.MaxConcurrentOrchestrators))
	limitsTree.Child(formatBounded("Max Concurrent Entities", opts.MaxConcurrentEntities))
	limitsTree.Child(formatBounded("Max Entity Operation Batch Size", opts.MaxEntityOperationBatchSize))
	limitsTree.Child(fmt.Sprintf("Max Orchestration Actions: %d", opts.MaxOrchestrationActions))

	sessionsTree := t.Child("Sessions")
	sessionsTree.Child(fmt.Sprintf("Extended Sessions Enabled: %t", opts.ExtendedSessionsEnabled))
	sessionsTree.Child(fmt.Sprintf("Extended Session Idle Timeout: %s", opts.ExtendedSessionIdleTimeout))
	sessionsTree.Child(fmt.Sprintf("Entity Message Reorder Window: %s", opts.EntityMessageReorderWindow))

	behaviorTree := t.Child("Behavior")
	behaviorTree.Child(fmt.Sprintf("Use App Lease: %t", opts.UseAppLease))
	behaviorTree.Child(fmt.Sprintf("Use Graceful Shutdown: %t", opts.UseGracefulShutdown))
	behaviorTree.Child(fmt.Sprintf("Rollback Entity Operations On Exceptions: %t",
		opts.RollbackEntityOperationsOnExceptions))
	behaviorTree.Child(fmt.Sprintf("Store Inputs In History: %t", opts.StoreInputsInHistory))
	behaviorTree.Child(fmt.Sprintf("Overridable Existing Instance States: %s",
		opts.OverridableExistingInstanceStates))
	behaviorTree.Child(formatTriState("Local RPC Endpoint Enabled", opts.LocalRPCEndpointEnabled))
	behaviorTree.Child(formatTriState("Raise Event On Missing Orchestration",
		opts.RaiseEventOnMissingOrchestration))

	t.Child(opts.HTTP.ToTree().Tree())
	t.Child(opts.Tracing.ToTree().Tree())
	t.Child(opts.Notifications.ToTree().Tree())
	t.Child(opts.AppLease.ToTree().Tree())

	if len(opts.StorageProvider) > 0 {
		storageTree := t.Child("Storage Provider")
		storageTree.Child(fmt.Sprintf("Keys: %d (opaque)", len(opts.StorageProvider)))
	}

	return t.String()
}

func formatBounded(name string, value *int) string {
	if value == nil {
		return fmt.Sprintf("%s: host default", name)
	}
	return fmt.Sprintf("%s: %d", name, *value)
}

func formatTriState(name string, value *bool) string {
	if value == nil {
		return fmt.Sprintf("%s: unset", name)
	}
	return fmt.Sprintf("%s: %t", name, *value)
}
