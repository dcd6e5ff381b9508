package vlc

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// ErrLibraryUnavailable is returned by LoadLibrary when libvlc cannot be loaded.
var ErrLibraryUnavailable = errors.New("vlc: libvlc not available")

// Handle is an opaque libvlc_instance_t pointer. The zero Handle is the
// invalid sentinel returned when libvlc_new fails.
type Handle uintptr

// Valid returns true if h refers to a native instance.
func (h Handle) Valid() bool { return h != 0 }

// LogHandler receives native log records. Both methods are called from
// libVLC's own threads, concurrently, and must return promptly.
type LogHandler interface {
	// Enabled reports whether records of this severity are wanted. Records
	// that are not enabled are never formatted.
	Enabled(severity Severity) bool

	// Log receives a formatted record. An empty message means formatting failed.
	Log(severity Severity, message string)
}

// Library is the native libVLC boundary.
type Library interface {
	// New calls libvlc_new with args. It returns the zero Handle on failure.
	New(args []string) Handle

	// Release calls libvlc_release. It must be called at most once per handle.
	Release(h Handle)

	// SetLogCallback routes the instance's log records to handler, or stops
	// routing them when handler is nil.
	SetLogCallback(h Handle, handler LogHandler)

	// Version returns libvlc_get_version, or false if it returned NULL.
	Version() (string, bool)
}

// libVLCPaths returns the candidate library locations, most specific first.
func libVLCPaths() []string {
	var paths []string

	names := libVLCNames()

	// Environment override: a file or a directory
	if envPath := os.Getenv("VLC_LIB_PATH"); envPath != "" {
		if info, err := os.Stat(envPath); err == nil && info.IsDir() {
			for _, name := range names {
				paths = append(paths, filepath.Join(envPath, name))
			}
		} else {
			paths = append(paths, envPath)
		}
	}

	// Bundled next to the executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		for _, name := range names {
			paths = append(paths,
				filepath.Join(exeDir, name),
				filepath.Join(exeDir, "lib", name),
				filepath.Join(exeDir, "..", "lib", name),
			)
		}
	}

	// Loader search path, then well-known install locations
	paths = append(paths, names...)
	switch runtime.GOOS {
	case "darwin":
		paths = append(paths,
			"/Applications/VLC.app/Contents/MacOS/lib/libvlc.dylib",
			"/usr/local/lib/libvlc.dylib",
			"/opt/homebrew/lib/libvlc.dylib",
		)
	case "linux":
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu/libvlc.so.5",
			"/usr/lib/aarch64-linux-gnu/libvlc.so.5",
			"/usr/lib64/libvlc.so.5",
			"/usr/lib/libvlc.so.5",
			"/usr/local/lib/libvlc.so.5",
		)
	}

	return paths
}

func libVLCNames() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"libvlc.dylib", "libvlc.5.dylib"}
	case "windows":
		return []string{"libvlc.dll"}
	default:
		return []string{"libvlc.so.5", "libvlc.so"}
	}
}
