// Package reload implements optional live-reload support for the WASM
// player server.
//
// When enabled, a filesystem watcher observes the document root and
// broadcasts a reload signal to connected browsers over a Server-Sent
// Events endpoint at /events. Rapid bursts of filesystem events (a build
// rewriting many files) are debounced into a single signal.
//
// The feature is disabled by default; enable it with
// SERVER_LIVE_RELOAD=true. Pages opt in by subscribing to /events and
// reloading on any "reload" message.
package reload
