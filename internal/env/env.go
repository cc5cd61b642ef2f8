// Package env provides the environment resolver used during host startup.
// Configuration code never reads process state directly; it goes through a
// Resolver so tests and the CLI can layer in alternate environments.
package env

// Well-known variable names consumed by the startup sequence.
const (
	// AppNameVariable identifies the host application. Its value is the
	// fallback task hub name when no hub is configured explicitly.
	AppNameVariable = "TASKHOST_APP_NAME"

	// SlotNameVariable names the deployment slot the host is running in.
	SlotNameVariable = "TASKHOST_SLOT_NAME"

	// WorkerRuntimeVariable names the worker runtime language of the host.
	WorkerRuntimeVariable = "TASKHOST_WORKER_RUNTIME"
)

// Resolver is a read-only view of an environment.
type Resolver interface {
	// Lookup returns the value of the named variable and whether it is set.
	Lookup(name string) (string, bool)

	// Expand substitutes every {TOKEN} placeholder in s using Lookup.
	// Tokens that do not resolve are left intact.
	Expand(s string) string
}
