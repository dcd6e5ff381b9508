package vlc

import (
	"math"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pion/logging"
)

// Setting names.
const (
	SettingLogLevel          = "vlc/log_level"
	SettingArguments         = "vlc/arguments"
	SettingCompatibilityMode = "vlc/compatibility_mode"
)

// DefaultLogLevel is stored when vlc/log_level is absent.
const DefaultLogLevel = LogLevelDisabled

// HardwareAccelerationArgument is appended in compatibility mode.
const HardwareAccelerationArgument = "--avcodec-hw=any"

// Any argument containing this (case-insensitive) already selects a decoder
// acceleration mode.
const hardwareAccelerationMarker = "avcodec-hw"

// Resolved is the outcome of one settings resolution.
type Resolved struct {
	LogLevel          LogLevel
	Arguments         []string
	CompatibilityMode bool
}

// Resolver turns the vlc/* settings into libvlc_new arguments.
type Resolver struct {
	settings SettingsStore
	env      Environment
	log      logging.LeveledLogger
}

// NewResolver creates a Resolver. A nil env probes the real OS.
func NewResolver(settings SettingsStore, env Environment, log logging.LeveledLogger) *Resolver {
	if env == nil {
		env = OSEnvironment{}
	}
	return &Resolver{settings: settings, env: env, log: log}
}

// Resolve registers defaults and metadata for every setting, then reads them.
// It never fails: unreadable values fall back to their defaults.
func (r *Resolver) Resolve() Resolved {
	r.register(SettingLogLevel, int(DefaultLogLevel), int(DefaultLogLevel), PropertyInfo{
		Name:       SettingLogLevel,
		Type:       PropertyTypeInt,
		Hint:       HintEnum,
		HintString: logLevelHint(),
	})
	r.register(SettingArguments, []string{}, []string{}, PropertyInfo{
		Name:       SettingArguments,
		Type:       PropertyTypeStringList,
		Hint:       HintTypeString,
		HintString: "String",
	})

	// Only the first write is detected; a reset goes back to false.
	var detected bool
	if !r.settings.HasSetting(SettingCompatibilityMode) {
		detected = DetectCompatibilityPlatform(r.env)
	}
	r.register(SettingCompatibilityMode, detected, false, PropertyInfo{
		Name:       SettingCompatibilityMode,
		Type:       PropertyTypeBool,
		Hint:       HintNone,
		HintString: "Compatibility mode for SteamOS handhelds (adds " + HardwareAccelerationArgument + ")",
	})

	res := Resolved{
		LogLevel:          r.logLevel(),
		Arguments:         r.arguments(),
		CompatibilityMode: r.compatibilityMode(),
	}
	if res.CompatibilityMode {
		r.log.Info("compatibility mode enabled, using hardware acceleration")
		res.Arguments = WithHardwareAcceleration(res.Arguments)
	}
	return res
}

func (r *Resolver) register(name string, value, initial any, info PropertyInfo) {
	if !r.settings.HasSetting(name) {
		r.settings.SetSetting(name, value)
	}
	r.settings.SetInitialValue(name, initial)
	r.settings.AddPropertyInfo(info)
	r.settings.SetRestartIfChanged(name, true)
}

func (r *Resolver) logLevel() LogLevel {
	v, ok := r.settings.Setting(SettingLogLevel)
	if !ok {
		return DefaultLogLevel
	}
	n, ok := toInt(v)
	if !ok || !LogLevel(n).Valid() {
		r.log.Warnf("invalid %s value %v, using %s", SettingLogLevel, v, DefaultLogLevel)
		return DefaultLogLevel
	}
	return LogLevel(n)
}

func (r *Resolver) arguments() []string {
	v, ok := r.settings.Setting(SettingArguments)
	if !ok {
		return []string{}
	}
	args, ok := toStringList(v)
	if !ok {
		r.log.Warnf("invalid %s value %v, using no arguments", SettingArguments, v)
		return []string{}
	}
	return args
}

func (r *Resolver) compatibilityMode() bool {
	v, ok := r.settings.Setting(SettingCompatibilityMode)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		r.log.Warnf("invalid %s value %v, using false", SettingCompatibilityMode, v)
		return false
	}
	return b
}

// WithHardwareAcceleration returns args with HardwareAccelerationArgument
// appended, unless an argument already configures hardware decoding.
// The input slice is never modified.
func WithHardwareAcceleration(args []string) []string {
	out := make([]string, len(args), len(args)+1)
	copy(out, args)
	if HasHardwareAcceleration(args) {
		return out
	}
	return append(out, HardwareAccelerationArgument)
}

// HasHardwareAcceleration reports whether any argument mentions avcodec-hw.
func HasHardwareAcceleration(args []string) bool {
	for _, arg := range args {
		if strings.Contains(strings.ToLower(arg), hardwareAccelerationMarker) {
			return true
		}
	}
	return false
}

// toInt accepts the integer encodings produced by the supported stores.
// Floats must be integral.
func toInt(v any) (int, bool) {
	switch f := v.(type) {
	case nil:
		return 0, false
	case float64:
		if f != math.Trunc(f) {
			return 0, false
		}
	case float32:
		if float64(f) != math.Trunc(float64(f)) {
			return 0, false
		}
	}
	var n int64
	if err := mapstructure.Decode(v, &n); err != nil {
		return 0, false
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

// toStringList copies v into a new []string. Lists holding anything other
// than strings are rejected as a whole.
func toStringList(v any) ([]string, bool) {
	if v == nil {
		return nil, false
	}
	out := []string{}
	if err := mapstructure.Decode(v, &out); err != nil {
		return nil, false
	}
	return out, true
}
