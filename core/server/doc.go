// Package server holds the HTTP server configuration, port selection
// and lifecycle handling.
//
// # Port selection
//
// Listen walks the configured port window (start port plus a bounded
// number of attempts) and binds the first free port. The winning bind
// is the listener the server keeps, so no other process can steal the
// port between a probe and the real bind. Exhausting the window is the
// only fatal startup condition.
//
// # Lifecycle
//
// The Server type wraps the Fiber app and the bound listener. Start
// blocks serving requests; Shutdown is idempotent and releases the
// socket exactly once, which makes graceful-shutdown behavior testable
// without OS signals.
//
// # Configuration
//
// The Config struct defines the port window, the document root, the
// WASM asset directory and the live-reload toggle.
package server
