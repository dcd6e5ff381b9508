package vlc

import (
	"sort"
	"sync"
)

// PropertyType is the value type advertised for a setting.
type PropertyType uint8

const (
	PropertyTypeBool PropertyType = iota + 1
	PropertyTypeInt
	PropertyTypeStringList
)

func (t PropertyType) String() string {
	switch t {
	case PropertyTypeBool:
		return "bool"
	case PropertyTypeInt:
		return "int"
	case PropertyTypeStringList:
		return "string list"
	default:
		return "unknown"
	}
}

// PropertyHint tells the host how to present a setting.
type PropertyHint uint8

const (
	HintNone       PropertyHint = iota // HintString is a description
	HintEnum                           // HintString lists comma separated labels
	HintTypeString                     // HintString names the element type
)

// PropertyInfo is the metadata registered alongside a setting.
type PropertyInfo struct {
	Name       string
	Type       PropertyType
	Hint       PropertyHint
	HintString string
}

// SettingsStore is the host's persisted key-value settings storage.
// Implementations must be safe for concurrent use.
type SettingsStore interface {
	// HasSetting reports whether a value is stored under name.
	HasSetting(name string) bool

	// Setting returns the stored value. The dynamic type depends on the
	// backing store (int, int64, []any, ...).
	Setting(name string) (any, bool)

	// SetSetting stores a value.
	SetSetting(name string, value any)

	// SetInitialValue records the value a host-side reset restores.
	SetInitialValue(name string, value any)

	// AddPropertyInfo registers type and presentation metadata.
	AddPropertyInfo(info PropertyInfo)

	// SetRestartIfChanged flags that changing name needs a restart to apply.
	SetRestartIfChanged(name string, restart bool)
}

// SettingsSaver is implemented by stores that persist changes explicitly.
type SettingsSaver interface {
	Save() error
}

// MemorySettings is an in-process SettingsStore.
type MemorySettings struct {
	mu      sync.RWMutex
	values  map[string]any
	initial map[string]any
	info    map[string]PropertyInfo
	restart map[string]bool
}

var _ SettingsStore = (*MemorySettings)(nil)

// NewMemorySettings returns an empty store.
func NewMemorySettings() *MemorySettings {
	return &MemorySettings{
		values:  make(map[string]any),
		initial: make(map[string]any),
		info:    make(map[string]PropertyInfo),
		restart: make(map[string]bool),
	}
}

func (s *MemorySettings) HasSetting(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[name]
	return ok
}

func (s *MemorySettings) Setting(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

func (s *MemorySettings) SetSetting(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
}

func (s *MemorySettings) SetInitialValue(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initial[name] = value
}

func (s *MemorySettings) AddPropertyInfo(info PropertyInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info[info.Name] = info
}

func (s *MemorySettings) SetRestartIfChanged(name string, restart bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restart[name] = restart
}

// InitialValue returns the value registered with SetInitialValue.
func (s *MemorySettings) InitialValue(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.initial[name]
	return v, ok
}

// PropertyInfo returns the metadata registered for name.
func (s *MemorySettings) PropertyInfo(name string) (PropertyInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	info, ok := s.info[name]
	return info, ok
}

// RestartIfChanged reports whether name was flagged as requiring a restart.
func (s *MemorySettings) RestartIfChanged(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.restart[name]
}

// ResetSetting restores the registered initial value, or removes the value
// when none was registered. It returns false if name had neither.
func (s *MemorySettings) ResetSetting(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.initial[name]; ok {
		s.values[name] = v
		return true
	}
	if _, ok := s.values[name]; ok {
		delete(s.values, name)
		return true
	}
	return false
}

// Names returns the stored setting names in sorted order.
func (s *MemorySettings) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// snapshot copies the stored values.
func (s *MemorySettings) snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// replace swaps in a new set of stored values, keeping metadata.
func (s *MemorySettings) replace(values map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = values
}
