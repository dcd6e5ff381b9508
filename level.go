package vlc

import (
	"fmt"
	"strconv"
	"strings"
)

// LogLevel is the value of the vlc/log_level setting: the minimum native
// severity forwarded to the host, or LogLevelDisabled.
type LogLevel int

const (
	LogLevelDebug    LogLevel = iota // Forward everything, debug records tagged
	LogLevelInfo                     // Notice and above
	LogLevelWarning                  // Warning and above
	LogLevelError                    // Errors only
	LogLevelDisabled                 // No log callback registered
	logLevelCount
)

// Labels in setting order, also used as the enum hint string.
var logLevelNames = [logLevelCount]string{
	LogLevelDebug:    "Debug",
	LogLevelInfo:     "Info",
	LogLevelWarning:  "Warning",
	LogLevelError:    "Error",
	LogLevelDisabled: "Disabled",
}

// Valid returns true if l is one of the five defined levels.
func (l LogLevel) Valid() bool { return l >= LogLevelDebug && l < logLevelCount }

func (l LogLevel) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return logLevelNames[l]
}

// ParseLogLevel accepts a level name (case-insensitive) or its number.
func ParseLogLevel(s string) (LogLevel, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if l := LogLevel(n); l.Valid() {
			return l, nil
		}
		return 0, fmt.Errorf("log level %d out of range 0-%d", n, logLevelCount-1)
	}
	for i, name := range logLevelNames {
		if strings.EqualFold(name, s) {
			return LogLevel(i), nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func logLevelHint() string { return strings.Join(logLevelNames[:], ", ") }

// Severity is a native libVLC log level (enum libvlc_log_level).
type Severity int

const (
	SeverityDebug   Severity = 0 // LIBVLC_DEBUG
	SeverityNotice  Severity = 2 // LIBVLC_NOTICE
	SeverityWarning Severity = 3 // LIBVLC_WARNING
	SeverityError   Severity = 4 // LIBVLC_ERROR
)

// Known returns true for the four severities libVLC emits.
func (s Severity) Known() bool {
	switch s {
	case SeverityDebug, SeverityNotice, SeverityWarning, SeverityError:
		return true
	}
	return false
}

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityNotice:
		return "notice"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
