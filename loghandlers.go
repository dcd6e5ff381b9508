package vlc

import "sync"

// Native log callbacks carry the instance handle as their opaque data
// pointer; this table maps it back to the instance's LogHandler. Lookups
// happen on libVLC threads, registration on the host's main sequence.
var (
	logHandlersMu sync.RWMutex
	logHandlers   = make(map[uintptr]LogHandler)
)

func registerLogHandler(data uintptr, handler LogHandler) {
	logHandlersMu.Lock()
	defer logHandlersMu.Unlock()
	logHandlers[data] = handler
}

func unregisterLogHandler(data uintptr) {
	logHandlersMu.Lock()
	defer logHandlersMu.Unlock()
	delete(logHandlers, data)
}

func lookupLogHandler(data uintptr) LogHandler {
	logHandlersMu.RLock()
	defer logHandlersMu.RUnlock()
	return logHandlers[data]
}

// handlerEnabled reports whether the handler registered for data wants
// records of severity. A panicking handler counts as not enabled.
func handlerEnabled(data uintptr, severity Severity) (enabled bool) {
	defer func() {
		// Nothing may unwind into libvlc's thread.
		if recover() != nil {
			enabled = false
		}
	}()

	handler := lookupLogHandler(data)
	return handler != nil && handler.Enabled(severity)
}

// dispatchLogRecord hands a rendered record to the handler registered for data.
func dispatchLogRecord(data uintptr, severity Severity, message string) {
	defer func() {
		_ = recover()
	}()

	if handler := lookupLogHandler(data); handler != nil {
		handler.Log(severity, message)
	}
}
