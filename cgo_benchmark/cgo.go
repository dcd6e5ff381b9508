//go:build cgo && (darwin || linux)

// Package cgo_benchmark provides CGO benchmarks of libvlc calls for
// comparison with the purego binding.
package cgo_benchmark

/*
#cgo pkg-config: libvlc
#include <vlc/vlc.h>
#include <stddef.h>

static const char* cgo_libvlc_get_version() {
    return libvlc_get_version();
}

// Creates and releases an instance with the quietest arguments.
static int cgo_libvlc_new_release() {
    const char* argv[] = {"--quiet", "--no-video", "--no-audio", NULL};
    libvlc_instance_t* inst = libvlc_new(3, argv);
    if (inst == NULL) {
        return -1;
    }
    libvlc_release(inst);
    return 0;
}

static int cgo_noop() {
    return 42;
}
*/
import "C"

// Noop calls a minimal C function to measure pure call overhead
func Noop() int {
	return int(C.cgo_noop())
}

// GetVersion calls libvlc_get_version via CGO
func GetVersion() string {
	return C.GoString(C.cgo_libvlc_get_version())
}

// NewRelease creates and releases a libvlc instance
func NewRelease() int {
	return int(C.cgo_libvlc_new_release())
}
