//go:build (darwin || linux) && !cgo

// Memory helpers for the purego libvlc binding.

package vlc

import (
	"unsafe"
)

// maxCString bounds goStringFromPtr scans.
const maxCString = 4096

// goStringFromPtr converts a C string pointer to a Go string.
func goStringFromPtr(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	// Find string length
	p := unsafe.Pointer(ptr)
	var length int
	for length < maxCString {
		if *(*byte)(unsafe.Add(p, length)) == 0 {
			break
		}
		length++
	}
	if length == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(p), length))
}

// cArgs is an argc/argv pair for libvlc_new. Every argument is its own
// NUL-terminated copy and argv ends with a NULL entry. The value must stay
// reachable (runtime.KeepAlive) until the native call returns.
type cArgs struct {
	strs [][]byte
	ptrs []uintptr
}

func newCArgs(args []string) *cArgs {
	a := &cArgs{
		strs: make([][]byte, len(args)),
		ptrs: make([]uintptr, len(args)+1),
	}
	for i, s := range args {
		b := make([]byte, len(s)+1)
		copy(b, s)
		a.strs[i] = b
		a.ptrs[i] = uintptr(unsafe.Pointer(&b[0]))
	}
	return a
}

func (a *cArgs) argc() int32 { return int32(len(a.strs)) }

func (a *cArgs) argv() uintptr { return uintptr(unsafe.Pointer(&a.ptrs[0])) }
