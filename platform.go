package vlc

import "os"

// Environment answers the read-only probes used for platform detection.
type Environment interface {
	LookupEnv(key string) (string, bool)
	FileExists(path string) bool
}

// OSEnvironment probes the real process environment and filesystem.
type OSEnvironment struct{}

func (OSEnvironment) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (OSEnvironment) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Markers of the handheld platform that needs compatibility mode.
var (
	compatibilityEnvVars    = []string{"SteamDeck", "STEAM_RUNTIME"}
	compatibilityMarkerFile = "/etc/steamos-release"
)

// DetectCompatibilityPlatform returns true if any compatibility marker is
// present: one of the environment variables is set (to any value) or the
// marker file exists.
func DetectCompatibilityPlatform(env Environment) bool {
	for _, key := range compatibilityEnvVars {
		if _, ok := env.LookupEnv(key); ok {
			return true
		}
	}
	return env.FileExists(compatibilityMarkerFile)
}
