package vlc

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/pion/logging"
)

// ErrAlreadyInitialized is returned by a second Module.Init.
var ErrAlreadyInitialized = errors.New("vlc: module already initialized")

// ModuleConfig configures a Module.
type ModuleConfig struct {
	// Settings is the host's settings storage. Required.
	Settings SettingsStore

	// Library is the native binding. Required.
	Library Library

	// Environment is probed for compatibility-mode detection. Defaults to the OS.
	Environment Environment

	// LoggerFactory provides the host sinks. Defaults to pion's default factory.
	LoggerFactory logging.LoggerFactory

	// Metrics is optional.
	Metrics *Metrics
}

// Module is the libvlc singleton: it resolves settings, owns the Instance,
// and releases it when closed.
type Module struct {
	id  uuid.UUID
	cfg ModuleConfig
	log logging.LeveledLogger

	mu       sync.Mutex
	resolved Resolved
	instance *Instance
}

var _ HandleProvider = (*Module)(nil)

// NewModule returns an uninitialized Module.
func NewModule(cfg ModuleConfig) *Module {
	if cfg.Environment == nil {
		cfg.Environment = OSEnvironment{}
	}
	if cfg.LoggerFactory == nil {
		cfg.LoggerFactory = logging.NewDefaultLoggerFactory()
	}
	return &Module{
		id:  uuid.New(),
		cfg: cfg,
		log: cfg.LoggerFactory.NewLogger("vlc"),
	}
}

// ID identifies this Module in logs.
func (m *Module) ID() uuid.UUID { return m.id }

// Init resolves settings, persists registered defaults when the store is a
// SettingsSaver, and creates the native instance. Settings and native
// failures only degrade the module; Init fails only when called twice.
func (m *Module) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.instance != nil {
		return ErrAlreadyInitialized
	}

	m.resolved = NewResolver(m.cfg.Settings, m.cfg.Environment, m.log).Resolve()
	if saver, ok := m.cfg.Settings.(SettingsSaver); ok {
		if err := saver.Save(); err != nil {
			m.log.Warnf("failed to save settings: %v", err)
		}
	}

	m.log.Debugf("module %s: creating libvlc instance, log level %s, %d arguments",
		m.id, m.resolved.LogLevel, len(m.resolved.Arguments))
	m.instance = NewInstance(InstanceConfig{
		Library:       m.cfg.Library,
		Arguments:     m.resolved.Arguments,
		LogLevel:      m.resolved.LogLevel,
		LoggerFactory: m.cfg.LoggerFactory,
		Metrics:       m.cfg.Metrics,
	})
	return nil
}

// Resolved returns the settings resolved by Init.
func (m *Module) Resolved() Resolved {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := m.resolved
	res.Arguments = make([]string, len(m.resolved.Arguments))
	copy(res.Arguments, m.resolved.Arguments)
	return res
}

// Instance returns the owned Instance, or nil before Init.
func (m *Module) Instance() *Instance {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.instance
}

// NativeHandle returns the native handle. It fails with ErrNotInitialized
// before Init and ErrReleased after Close.
func (m *Module) NativeHandle() (Handle, error) {
	inst := m.Instance()
	if inst == nil {
		return 0, ErrNotInitialized
	}
	return inst.Handle()
}

// Close releases the native instance. It is the module's pre-destruction
// hook and may be called more than once.
func (m *Module) Close() error {
	inst := m.Instance()
	if inst == nil {
		return nil
	}
	return inst.Close()
}

// Start creates, initializes and registers a Module as SingletonName.
func Start(reg *Registry, cfg ModuleConfig) (*Module, error) {
	m := NewModule(cfg)
	if err := m.Init(); err != nil {
		return nil, err
	}
	if err := reg.Register(SingletonName, m); err != nil {
		if cerr := m.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing %s: %w", SingletonName, cerr))
		}
		return nil, err
	}
	return m, nil
}

// Shutdown unregisters the singleton and closes it.
func Shutdown(reg *Registry) error {
	s, ok := reg.Unregister(SingletonName)
	if !ok {
		return ErrSingletonNotFound
	}
	closer, ok := s.(interface{ Close() error })
	if !ok {
		return nil
	}
	if err := closer.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", SingletonName, err)
	}
	return nil
}
