package vlc

import (
	"errors"
	"fmt"
	"sync"
)

// SingletonName is the registry name of the libvlc Module.
const SingletonName = "VLCInstance"

var (
	// ErrSingletonNotFound is returned when no handle provider is registered.
	ErrSingletonNotFound = errors.New("vlc: singleton not found")

	// ErrSingletonExists is returned when registering over a live singleton.
	ErrSingletonExists = errors.New("vlc: singleton already registered")
)

// HandleProvider is implemented by singletons that expose a native handle.
type HandleProvider interface {
	NativeHandle() (Handle, error)
}

// Registry resolves process-wide singletons by name.
type Registry struct {
	mu         sync.RWMutex
	singletons map[string]any
}

// DefaultRegistry is the process-wide registry used by GetNativeHandle.
var DefaultRegistry = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{singletons: make(map[string]any)}
}

// Register adds a singleton. Names are unique.
func (r *Registry) Register(name string, singleton any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.singletons[name]; ok {
		return fmt.Errorf("%w: %s", ErrSingletonExists, name)
	}
	r.singletons[name] = singleton
	return nil
}

// Lookup returns the singleton registered under name.
func (r *Registry) Lookup(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.singletons[name]
	return s, ok
}

// Unregister removes and returns the singleton registered under name.
func (r *Registry) Unregister(name string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.singletons[name]
	if ok {
		delete(r.singletons, name)
	}
	return s, ok
}

// NativeHandle returns the handle of the singleton registered as
// SingletonName. It has no side effects and may be called concurrently.
func (r *Registry) NativeHandle() (Handle, error) {
	s, ok := r.Lookup(SingletonName)
	if !ok {
		return 0, ErrSingletonNotFound
	}
	p, ok := s.(HandleProvider)
	if !ok {
		return 0, fmt.Errorf("%w: %s is a %T", ErrSingletonNotFound, SingletonName, s)
	}
	return p.NativeHandle()
}

// GetNativeHandle returns the process-wide libvlc handle from DefaultRegistry.
// A nil error does not imply a valid handle: creation may have failed.
func GetNativeHandle() (Handle, error) {
	return DefaultRegistry.NativeHandle()
}

// MustNativeHandle is like GetNativeHandle but panics on error.
func MustNativeHandle() Handle {
	h, err := GetNativeHandle()
	if err != nil {
		panic(err)
	}
	return h
}
