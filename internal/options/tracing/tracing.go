// Package tracing holds the distributed tracing settings for orchestration
// traffic. These settings are data only; the trace exporter lives outside
// this subsystem.
package tracing

import "fmt"

// Constants for Version
const (
	VersionUnspecified Version = ""
	VersionV1          Version = "v1"
	VersionV2          Version = "v2"
)

// Config contains the distributed tracing settings.
type Config struct {
	// Enabled turns on correlation of orchestration messages.
	Enabled bool

	// TraceInputsAndOutputs includes operation payloads in trace spans.
	TraceInputsAndOutputs bool

	// TraceReplayEvents emits spans for replayed history events.
	TraceReplayEvents bool

	// Version selects the trace correlation protocol.
	Version Version
}

// Version represents the trace correlation protocol version
type Version string

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		Version: VersionV2,
	}
}

// String returns the string representation of Version
func (v Version) String() string {
	return string(v)
}

// IsValid checks if the Version is valid
func (v Version) IsValid() bool {
	switch v {
	case VersionUnspecified, VersionV1, VersionV2:
		return true
	default:
		return false
	}
}

// VersionFromString converts a string to a Version
func VersionFromString(version string) (Version, error) {
	switch version {
	case "v1", "V1":
		return VersionV1, nil
	case "v2", "V2":
		return VersionV2, nil
	case "":
		return VersionUnspecified, nil
	default:
		return VersionUnspecified, fmt.Errorf("unknown tracing version: %s", version)
	}
}
