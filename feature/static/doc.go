// Package static implements the file-serving feature of the WASM player
// server.
//
// It resolves request paths to files under the document root and streams
// their contents with content types from an extension table. Three logical
// filenames (the CavalryWasm runtime bundle) are special-cased: a rewrite
// table maps both their bare and /wasm-lib/ prefixed URL forms to the
// configured asset directory, regardless of where under the document root
// the request came from.
//
// # Resolution order
//
//  1. Exact match against the six-entry rewrite table.
//  2. Traversal-safe resolution under the document root; requests can
//     never escape it.
//  3. Directories serve their index.html or 404 without one.
//
// # Content types
//
// Lookup consults the override table first (js, wasm, cv, images, fonts),
// then the platform MIME table, then falls back to
// application/octet-stream. Both tables are built once at load time and
// never mutated afterwards.
package static
