package vlc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"0", LogLevelDebug},
		{"debug", LogLevelDebug},
		{"Info", LogLevelInfo},
		{" WARNING ", LogLevelWarning},
		{"3", LogLevelError},
		{"disabled", LogLevelDisabled},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"5", "-1", "verbose", ""} {
		_, err := ParseLogLevel(bad)
		assert.Error(t, err, bad)
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "Warning", LogLevelWarning.String())
	assert.Equal(t, "Disabled", LogLevelDisabled.String())
	assert.Equal(t, "unknown", LogLevel(7).String())
	assert.False(t, LogLevel(-1).Valid())
}

func TestSeverity(t *testing.T) {
	assert.True(t, SeverityNotice.Known())
	assert.False(t, Severity(1).Known())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(9).String())
	assert.Less(t, SeverityDebug, SeverityNotice)
	assert.Less(t, SeverityWarning, SeverityError)
}
