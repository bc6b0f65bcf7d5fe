// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming
//     request, injecting it into the context and response headers for
//     tracing.
//   - Isolation: Appends the Cross-Origin-Embedder-Policy and
//     Cross-Origin-Opener-Policy headers to every response, which browsers
//     require before exposing SharedArrayBuffer to the WASM player.
//
// These middleware components are registered globally in the main
// application setup, before any feature routes.
package middleware
