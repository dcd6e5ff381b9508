package vlc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProvider struct {
	h   Handle
	err error
}

func (p staticProvider) NativeHandle() (Handle, error) { return p.h, p.err }

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.NativeHandle()
	assert.ErrorIs(t, err, ErrSingletonNotFound)

	require.NoError(t, reg.Register(SingletonName, staticProvider{h: 7}))
	assert.ErrorIs(t, reg.Register(SingletonName, staticProvider{}), ErrSingletonExists)

	h, err := reg.NativeHandle()
	require.NoError(t, err)
	assert.Equal(t, Handle(7), h)

	s, ok := reg.Unregister(SingletonName)
	assert.True(t, ok)
	assert.Equal(t, staticProvider{h: 7}, s)

	_, ok = reg.Unregister(SingletonName)
	assert.False(t, ok)
}

func TestRegistryNonProvider(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(SingletonName, "not a provider"))

	_, err := reg.NativeHandle()
	assert.ErrorIs(t, err, ErrSingletonNotFound)
	assert.Contains(t, err.Error(), "string")
}

func TestRegistryPassesProviderError(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(SingletonName, staticProvider{err: ErrReleased}))

	_, err := reg.NativeHandle()
	assert.ErrorIs(t, err, ErrReleased)
}

func TestGetNativeHandle(t *testing.T) {
	_, err := GetNativeHandle()
	require.ErrorIs(t, err, ErrSingletonNotFound)
	assert.Panics(t, func() { MustNativeHandle() })

	require.NoError(t, DefaultRegistry.Register(SingletonName, staticProvider{h: fakeHandle}))
	t.Cleanup(func() { DefaultRegistry.Unregister(SingletonName) })

	h, err := GetNativeHandle()
	require.NoError(t, err)
	assert.Equal(t, fakeHandle, h)
	assert.Equal(t, fakeHandle, MustNativeHandle())
}

func TestNativeHandleConcurrentAccess(t *testing.T) {
	lib := newFakeLibrary()
	_, err := Start(DefaultRegistry, newTestModuleConfig(lib, NewMemorySettings()))
	require.NoError(t, err)
	t.Cleanup(func() { Shutdown(DefaultRegistry) })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				h, err := GetNativeHandle()
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, fakeHandle, h)

				h, err = DefaultRegistry.NativeHandle()
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, fakeHandle, h)
			}
		}()
	}
	wg.Wait()
	assert.Zero(t, lib.releaseCount())
}
