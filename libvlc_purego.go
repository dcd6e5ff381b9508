//go:build (darwin || linux) && !cgo

// libvlc binding via purego. The library is loaded dynamically at runtime,
// so the package builds with CGO_ENABLED=0 and runs without VLC installed.

package vlc

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

var (
	libvlcOnce    sync.Once
	libvlcHandle  uintptr
	libvlcInitErr error
)

// libvlc function pointers
var (
	libvlcNew        func(argc int32, argv uintptr) uintptr
	libvlcRelease    func(instance uintptr)
	libvlcLogSet     func(instance, callback, data uintptr)
	libvlcLogUnset   func(instance uintptr)
	libvlcGetVersion func() uintptr
)

// libc vsnprintf renders native log records with the native printf rules.
var libcVsnprintf func(buf *byte, size uintptr, format, args uintptr) int32

var libvlcSymbols = []string{
	"libvlc_new",
	"libvlc_release",
	"libvlc_log_set",
	"libvlc_log_unset",
	"libvlc_get_version",
}

// loadLibVLC loads libvlc and libc once.
func loadLibVLC() error {
	libvlcOnce.Do(func() {
		libvlcInitErr = loadLibVLCLib()
		if libvlcInitErr == nil {
			loadLibC()
		}
	})
	return libvlcInitErr
}

func loadLibVLCLib() error {
	var lastErr error
	for _, path := range libVLCPaths() {
		handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			lastErr = err
			continue
		}
		if err := loadLibVLCSymbols(handle); err != nil {
			purego.Dlclose(handle)
			lastErr = err
			continue
		}
		libvlcHandle = handle
		return nil
	}
	if lastErr != nil {
		return fmt.Errorf("%w: %v", ErrLibraryUnavailable, lastErr)
	}
	return ErrLibraryUnavailable
}

func loadLibVLCSymbols(handle uintptr) error {
	for _, name := range libvlcSymbols {
		if _, err := purego.Dlsym(handle, name); err != nil {
			return fmt.Errorf("missing symbol %s: %w", name, err)
		}
	}
	purego.RegisterLibFunc(&libvlcNew, handle, "libvlc_new")
	purego.RegisterLibFunc(&libvlcRelease, handle, "libvlc_release")
	purego.RegisterLibFunc(&libvlcLogSet, handle, "libvlc_log_set")
	purego.RegisterLibFunc(&libvlcLogUnset, handle, "libvlc_log_unset")
	purego.RegisterLibFunc(&libvlcGetVersion, handle, "libvlc_get_version")
	return nil
}

var libcOnce sync.Once

// loadLibC binds vsnprintf once. Without it records are forwarded with empty bodies.
func loadLibC() {
	libcOnce.Do(bindLibC)
}

func bindLibC() {
	path := "libc.so.6"
	if runtime.GOOS == "darwin" {
		path = "/usr/lib/libSystem.B.dylib"
	}
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return
	}
	if _, err := purego.Dlsym(handle, "vsnprintf"); err != nil {
		purego.Dlclose(handle)
		return
	}
	purego.RegisterLibFunc(&libcVsnprintf, handle, "vsnprintf")
}

// IsLibraryAvailable checks if libvlc can be loaded.
func IsLibraryAvailable() bool {
	return loadLibVLC() == nil
}

var (
	logCallbackPtr  uintptr
	logCallbackOnce sync.Once
)

func initLogCallback() {
	logCallbackOnce.Do(func() {
		logCallbackPtr = purego.NewCallback(logCallbackHandler)
	})
}

// logCallbackHandler implements libvlc_log_cb:
//
//	void (*)(void *data, int level, const libvlc_log_t *ctx, const char *fmt, va_list args)
//
// va_list reaches Go as a pointer on every supported ABI.
func logCallbackHandler(data, level, ctx, format, args uintptr) {
	defer func() {
		_ = recover()
	}()

	severity := Severity(int32(level))
	if !handlerEnabled(data, severity) {
		return
	}
	dispatchLogRecord(data, severity, vformat(format, args))
}

// logRecordMax bounds one rendered record; longer records are truncated.
const logRecordMax = 1024

var logRecordPool = sync.Pool{
	New: func() any { return new([logRecordMax]byte) },
}

// vformat renders a printf format and va_list. The args are only valid for
// the duration of the callback and are consumed exactly once.
func vformat(format, args uintptr) string {
	if format == 0 || libcVsnprintf == nil {
		return ""
	}
	buf := logRecordPool.Get().(*[logRecordMax]byte)
	defer logRecordPool.Put(buf)

	n := libcVsnprintf(&buf[0], logRecordMax, format, args)
	if n < 0 {
		return ""
	}
	if int(n) >= logRecordMax {
		n = logRecordMax - 1
	}
	return string(buf[:n])
}

// NativeLibrary is the libvlc Library loaded with purego.
type NativeLibrary struct{}

var _ Library = (*NativeLibrary)(nil)

// LoadLibrary loads libvlc. The error wraps ErrLibraryUnavailable.
func LoadLibrary() (*NativeLibrary, error) {
	if err := loadLibVLC(); err != nil {
		return nil, err
	}
	return &NativeLibrary{}, nil
}

func (*NativeLibrary) New(args []string) Handle {
	a := newCArgs(args)
	h := libvlcNew(a.argc(), a.argv())
	runtime.KeepAlive(a)
	return Handle(h)
}

func (*NativeLibrary) Release(h Handle) {
	if !h.Valid() {
		return
	}
	libvlcRelease(uintptr(h))
	unregisterLogHandler(uintptr(h))
}

func (*NativeLibrary) SetLogCallback(h Handle, handler LogHandler) {
	if !h.Valid() {
		return
	}
	if handler == nil {
		libvlcLogUnset(uintptr(h))
		unregisterLogHandler(uintptr(h))
		return
	}

	initLogCallback()
	registerLogHandler(uintptr(h), handler)
	libvlcLogSet(uintptr(h), logCallbackPtr, uintptr(h))
}

func (*NativeLibrary) Version() (string, bool) {
	ptr := libvlcGetVersion()
	if ptr == 0 {
		return "", false
	}
	return goStringFromPtr(ptr), true
}
