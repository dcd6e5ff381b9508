package vlc

import (
	"errors"
	"sync/atomic"

	"github.com/pion/logging"
)

var (
	// ErrNotInitialized is returned when the native instance has not been created yet.
	ErrNotInitialized = errors.New("vlc: instance not initialized")

	// ErrReleased is returned when the native instance was already released.
	ErrReleased = errors.New("vlc: instance released")
)

// Instance lifecycle: uninitialized -> active -> released.
const (
	stateUninitialized int32 = iota
	stateActive
	stateReleased
)

// InstanceConfig configures NewInstance.
type InstanceConfig struct {
	// Library is the native binding. Required.
	Library Library

	// Arguments are passed to libvlc_new in order.
	Arguments []string

	// LogLevel selects the log router; LogLevelDisabled registers none.
	LogLevel LogLevel

	// LoggerFactory provides the host sinks. Defaults to pion's default factory.
	LoggerFactory logging.LoggerFactory

	// Metrics is optional.
	Metrics *Metrics
}

// Instance exclusively owns one native libvlc instance. The handle may be
// invalid when creation failed; the instance is active either way until
// Release.
//
// Creation and Release are expected on the host's main sequence. Handle is
// safe to call concurrently with itself.
type Instance struct {
	state atomic.Int32

	lib     Library
	handle  Handle
	version string
	router  *LogRouter

	log     logging.LeveledLogger
	metrics *Metrics
}

// NewInstance creates the native instance with one blocking libvlc_new call.
// Failure is not an error: it is logged and the instance holds an invalid
// handle, leaving the host without media capability.
func NewInstance(cfg InstanceConfig) *Instance {
	factory := cfg.LoggerFactory
	if factory == nil {
		factory = logging.NewDefaultLoggerFactory()
	}

	i := &Instance{
		lib:     cfg.Library,
		log:     factory.NewLogger("vlc"),
		metrics: cfg.Metrics,
	}

	h := cfg.Library.New(cfg.Arguments)
	if !h.Valid() {
		i.log.Error("libvlc failed to initialize, make sure VLC is installed")
		i.metrics.instanceCreated(false)
	} else {
		version, ok := cfg.Library.Version()
		if !ok {
			version = "unknown"
		}
		i.version = version
		i.log.Infof("libvlc initialized, version %s", version)
		i.metrics.instanceCreated(true)

		if router := SelectLogRouter(cfg.LogLevel, factory.NewLogger("libvlc"), cfg.Metrics); router != nil {
			cfg.Library.SetLogCallback(h, router)
			i.router = router
		}
	}

	i.handle = h
	i.state.Store(stateActive)
	return i
}

// Handle returns the native handle, which may be invalid (check Valid).
// It fails with ErrNotInitialized on a zero Instance and ErrReleased after
// Release.
func (i *Instance) Handle() (Handle, error) {
	switch i.state.Load() {
	case stateActive:
		return i.handle, nil
	case stateReleased:
		return 0, ErrReleased
	default:
		return 0, ErrNotInitialized
	}
}

// Version returns the libvlc version logged at creation, or "" if creation failed.
func (i *Instance) Version() string { return i.version }

// LogRouter returns the registered router, or nil if none was registered.
func (i *Instance) LogRouter() *LogRouter { return i.router }

// Release detaches the log router and releases the native instance. Only
// the first call reaches the native library; later calls return ErrReleased.
func (i *Instance) Release() error {
	if !i.state.CompareAndSwap(stateActive, stateReleased) {
		if i.state.Load() == stateReleased {
			return ErrReleased
		}
		return ErrNotInitialized
	}

	if h := i.handle; h.Valid() {
		if i.router != nil {
			i.lib.SetLogCallback(h, nil)
		}
		i.lib.Release(h)
		i.metrics.instanceReleased()
		i.log.Debug("libvlc instance released")
	}
	return nil
}

// Close releases the instance. Unlike Release it may be called any number of
// times, so it can be deferred on every exit path.
func (i *Instance) Close() error {
	if err := i.Release(); err != nil && !errors.Is(err, ErrReleased) {
		return err
	}
	return nil
}
