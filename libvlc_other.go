//go:build !darwin && !linux

package vlc

// IsLibraryAvailable reports false: no libvlc binding exists for this platform.
func IsLibraryAvailable() bool {
	return false
}

// NativeLibrary is unavailable on this platform.
type NativeLibrary struct{}

var _ Library = (*NativeLibrary)(nil)

// LoadLibrary always fails with ErrLibraryUnavailable on this platform.
func LoadLibrary() (*NativeLibrary, error) {
	return nil, ErrLibraryUnavailable
}

func (*NativeLibrary) New([]string) Handle { return 0 }

func (*NativeLibrary) Release(Handle) {}

func (*NativeLibrary) SetLogCallback(Handle, LogHandler) {}

func (*NativeLibrary) Version() (string, bool) { return "", false }
