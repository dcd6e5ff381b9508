//go:build (darwin || linux) && cgo

// libvlc binding via CGO. This links libvlc at build time (pkg-config libvlc)
// and renders log records in C, avoiding purego's callback trampoline.

package vlc

/*
#cgo pkg-config: libvlc

#include <stdint.h>
#include <stdlib.h>
#include <vlc/vlc.h>

void vlc_set_log_callback(libvlc_instance_t *instance, uintptr_t data);
*/
import "C"

import (
	"unsafe"
)

// IsLibraryAvailable checks if libvlc is available.
// With CGO this is always true since it links at build time.
func IsLibraryAvailable() bool {
	return true
}

// NativeLibrary is the libvlc Library linked with CGO.
type NativeLibrary struct{}

var _ Library = (*NativeLibrary)(nil)

// LoadLibrary returns the linked libvlc.
func LoadLibrary() (*NativeLibrary, error) {
	return &NativeLibrary{}, nil
}

func instancePtr(h Handle) *C.libvlc_instance_t {
	return (*C.libvlc_instance_t)(unsafe.Pointer(uintptr(h)))
}

func (*NativeLibrary) New(args []string) Handle {
	argv := make([]*C.char, len(args)+1)
	for i, s := range args {
		argv[i] = C.CString(s)
	}
	defer func() {
		for _, p := range argv[:len(args)] {
			C.free(unsafe.Pointer(p))
		}
	}()

	instance := C.libvlc_new(C.int(len(args)), &argv[0])
	return Handle(uintptr(unsafe.Pointer(instance)))
}

func (*NativeLibrary) Release(h Handle) {
	if !h.Valid() {
		return
	}
	C.libvlc_release(instancePtr(h))
	unregisterLogHandler(uintptr(h))
}

func (*NativeLibrary) SetLogCallback(h Handle, handler LogHandler) {
	if !h.Valid() {
		return
	}
	if handler == nil {
		C.libvlc_log_unset(instancePtr(h))
		unregisterLogHandler(uintptr(h))
		return
	}
	registerLogHandler(uintptr(h), handler)
	C.vlc_set_log_callback(instancePtr(h), C.uintptr_t(h))
}

func (*NativeLibrary) Version() (string, bool) {
	cstr := C.libvlc_get_version()
	if cstr == nil {
		return "", false
	}
	return C.GoString(cstr), true
}

//export goVLCLogEnabled
func goVLCLogEnabled(data C.uintptr_t, level C.int) C.int {
	if !handlerEnabled(uintptr(data), Severity(level)) {
		return 0
	}
	return 1
}

//export goVLCLogRecord
func goVLCLogRecord(data C.uintptr_t, level C.int, msg *C.char, n C.int) {
	var message string
	if msg != nil && n > 0 {
		message = C.GoStringN(msg, n)
	}
	dispatchLogRecord(uintptr(data), Severity(level), message)
}
