package startup

import (
	"log/slog"

	"github.com/tasklattice/taskhost/internal/options"
)

var _ options.TraceSink = (*LogSink)(nil)

// LogSink emits the startup configuration trace through a slog.Logger.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a trace sink backed by the given logger. A nil logger
// falls back to slog.Default.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// TraceConfiguration implements options.TraceSink.
func (s *LogSink) TraceConfiguration(hubName, details string) {
	s.logger.Info("Host configuration", "hubName", hubName, "details", details)
}
