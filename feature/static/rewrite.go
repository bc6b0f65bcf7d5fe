package static

import "path/filepath"

// bundleFiles are the logical filenames of the WASM runtime bundle.
var bundleFiles = []string{
	"CavalryWasm.js",
	"CavalryWasm.wasm",
	"CavalryWasm.data",
}

// RewriteTable maps a fixed set of literal request paths to absolute
// file locations in the asset directory. Each bundle file is reachable
// under two URL forms: bare (/CavalryWasm.js) and prefixed
// (/wasm-lib/CavalryWasm.js). Built once, immutable afterwards.
type RewriteTable struct {
	targets map[string]string
}

// NewRewriteTable builds the six-entry table pointing into assetDir.
func NewRewriteTable(assetDir string) *RewriteTable {
	targets := make(map[string]string, 2*len(bundleFiles))
	for _, name := range bundleFiles {
		target := filepath.Join(assetDir, name)
		targets["/"+name] = target
		targets["/wasm-lib/"+name] = target
	}
	return &RewriteTable{targets: targets}
}

// Resolve returns the rewritten file path for an exact-match request
// path, or false when the path is not in the table.
func (t *RewriteTable) Resolve(requestPath string) (string, bool) {
	target, ok := t.targets[requestPath]
	return target, ok
}

// Len returns the number of entries in the table.
func (t *RewriteTable) Len() int {
	return len(t.targets)
}
