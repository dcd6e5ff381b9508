// Package vlc manages the process-wide libVLC instance of a host application.
//
// Key pieces include:
//   - Resolver: turns persisted settings into libvlc_new arguments
//   - Instance: owns the native handle and releases it exactly once
//   - LogRouter: forwards native log records to host sinks by severity
//   - Module/Registry: the singleton object and its name-based lookup
//
// # Architecture
//
//	Settings -> Resolver -> Instance (libvlc_new) -> LogRouter (libvlc_log_set)
//	Registry.NativeHandle -> Module -> Instance.Handle
//	Module.Close -> Instance.Release (libvlc_release, once)
//
// # Settings
//
// Three settings are read on every start, all flagged as requiring a restart:
//   - vlc/log_level: 0 Debug, 1 Info, 2 Warning, 3 Error, 4 Disabled (default)
//   - vlc/arguments: extra libvlc_new arguments, passed in order
//   - vlc/compatibility_mode: appends --avcodec-hw=any; detected on first run
//
// # Native Library
//
// By default the package loads libvlc with purego (CGO_ENABLED=0). With CGO
// enabled it links against libvlc directly. Set VLC_LIB_PATH to the library
// file or the directory containing it. When libvlc cannot be created the
// module keeps running without media capability and Handle.Valid reports false.
package vlc
