package vlc

import (
	"github.com/pion/logging"
)

// LogSource labels every forwarded native record.
const LogSource = "LibVLC"

// LogRouter forwards native records at or above a minimum severity to the
// host sinks: debug and notice to Info, warning to Warn, error to Error.
// Debug records are tagged so they stand out in the info stream.
type LogRouter struct {
	min     Severity
	logger  logging.LeveledLogger
	metrics *Metrics
}

var _ LogHandler = (*LogRouter)(nil)

// SelectLogRouter returns the router for level, or nil for LogLevelDisabled
// (and any unknown level): in that case no callback is registered at all.
func SelectLogRouter(level LogLevel, logger logging.LeveledLogger, metrics *Metrics) *LogRouter {
	var lowest Severity
	switch level {
	case LogLevelDebug:
		lowest = SeverityDebug
	case LogLevelInfo:
		lowest = SeverityNotice
	case LogLevelWarning:
		lowest = SeverityWarning
	case LogLevelError:
		lowest = SeverityError
	default:
		return nil
	}
	return &LogRouter{min: lowest, logger: logger, metrics: metrics}
}

// MinSeverity returns the lowest forwarded severity.
func (r *LogRouter) MinSeverity() Severity { return r.min }

// Enabled returns true for known severities at or above the minimum.
func (r *LogRouter) Enabled(severity Severity) bool {
	return severity.Known() && severity >= r.min
}

// Log forwards one formatted record. Records that are not Enabled are dropped.
func (r *LogRouter) Log(severity Severity, message string) {
	if !r.Enabled(severity) {
		return
	}
	switch severity {
	case SeverityDebug:
		r.logger.Info(LogSource + ": [DEBUG] " + message)
	case SeverityNotice:
		r.logger.Info(LogSource + ": " + message)
	case SeverityWarning:
		r.logger.Warn(LogSource + ": " + message)
	case SeverityError:
		r.logger.Error(LogSource + ": " + message)
	}
	r.metrics.logRecord(severity)
}
