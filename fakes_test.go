package vlc

import (
	"fmt"
	"sync"

	"github.com/pion/logging"
)

const fakeHandle Handle = 0x1000

// fakeLibrary is an in-memory Library.
type fakeLibrary struct {
	mu sync.Mutex

	handle     Handle
	version    string
	hasVersion bool

	newCalls [][]string
	releases []Handle
	setCalls int
	unsets   int
	handlers map[Handle]LogHandler
	order    []string // "unset" and "release" calls
}

func newFakeLibrary() *fakeLibrary {
	return &fakeLibrary{
		handle:     fakeHandle,
		version:    "3.0.21 Vetinari",
		hasVersion: true,
		handlers:   make(map[Handle]LogHandler),
	}
}

func (f *fakeLibrary) New(args []string) Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.newCalls = append(f.newCalls, append([]string{}, args...))
	return f.handle
}

func (f *fakeLibrary) Release(h Handle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.releases = append(f.releases, h)
	f.order = append(f.order, "release")
	delete(f.handlers, h)
}

func (f *fakeLibrary) SetLogCallback(h Handle, handler LogHandler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if handler == nil {
		f.unsets++
		f.order = append(f.order, "unset")
		delete(f.handlers, h)
		return
	}
	f.setCalls++
	f.handlers[h] = handler
}

func (f *fakeLibrary) Version() (string, bool) { return f.version, f.hasVersion }

// emit behaves like a native thread logging through the registered callback.
func (f *fakeLibrary) emit(severity Severity, format string, args ...any) {
	f.mu.Lock()
	handler := f.handlers[f.handle]
	f.mu.Unlock()
	if handler == nil || !handler.Enabled(severity) {
		return
	}
	handler.Log(severity, fmt.Sprintf(format, args...))
}

func (f *fakeLibrary) releaseCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.releases)
}

func (f *fakeLibrary) lastArgs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.newCalls) == 0 {
		return nil
	}
	return f.newCalls[len(f.newCalls)-1]
}

// fakeEnv is an Environment with fixed variables and files.
type fakeEnv struct {
	vars  map[string]string
	files map[string]bool
}

func (e fakeEnv) LookupEnv(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

func (e fakeEnv) FileExists(path string) bool { return e.files[path] }

// recordingLogger is a logging.LeveledLogger that keeps every line.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	level string
	msg   string
}

var _ logging.LeveledLogger = (*recordingLogger)(nil)

func (l *recordingLogger) add(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level, msg})
}

func (l *recordingLogger) at(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.entries {
		if e.level == level {
			out = append(out, e.msg)
		}
	}
	return out
}

func (l *recordingLogger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *recordingLogger) Trace(msg string) { l.add("trace", msg) }
func (l *recordingLogger) Tracef(format string, args ...any) {
	l.add("trace", fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Debug(msg string) { l.add("debug", msg) }
func (l *recordingLogger) Debugf(format string, args ...any) {
	l.add("debug", fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Info(msg string) { l.add("info", msg) }
func (l *recordingLogger) Infof(format string, args ...any) {
	l.add("info", fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Warn(msg string) { l.add("warn", msg) }
func (l *recordingLogger) Warnf(format string, args ...any) {
	l.add("warn", fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Error(msg string) { l.add("error", msg) }
func (l *recordingLogger) Errorf(format string, args ...any) {
	l.add("error", fmt.Sprintf(format, args...))
}

// recordingFactory hands out one recordingLogger per scope.
type recordingFactory struct {
	mu      sync.Mutex
	loggers map[string]*recordingLogger
}

func newRecordingFactory() *recordingFactory {
	return &recordingFactory{loggers: make(map[string]*recordingLogger)}
}

func (f *recordingFactory) NewLogger(scope string) logging.LeveledLogger {
	return f.scope(scope)
}

func (f *recordingFactory) scope(scope string) *recordingLogger {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.loggers[scope]
	if !ok {
		l = &recordingLogger{}
		f.loggers[scope] = l
	}
	return l
}

// discardLogger drops everything.
type discardLogger struct{}

func (discardLogger) Trace(string)          {}
func (discardLogger) Tracef(string, ...any) {}
func (discardLogger) Debug(string)          {}
func (discardLogger) Debugf(string, ...any) {}
func (discardLogger) Info(string)           {}
func (discardLogger) Infof(string, ...any)  {}
func (discardLogger) Warn(string)           {}
func (discardLogger) Warnf(string, ...any)  {}
func (discardLogger) Error(string)          {}
func (discardLogger) Errorf(string, ...any) {}

// panicHandler accepts everything and panics on every record.
type panicHandler struct{}

func (panicHandler) Enabled(Severity) bool { return true }
func (panicHandler) Log(Severity, string)  { panic("sink failed") }
