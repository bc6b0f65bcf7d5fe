package static_test

import (
	"path/filepath"
	"testing"

	"wasm-player-server/feature/static"

	"github.com/stretchr/testify/assert"
)

func TestRewriteTable_Resolve(t *testing.T) {
	assetDir := filepath.Join("/srv", "demos", "wasm-lib")
	table := static.NewRewriteTable(assetDir)

	assert.Equal(t, 6, table.Len())

	tests := []struct {
		name        string
		requestPath string
		wantFile    string
	}{
		{"BareJS", "/CavalryWasm.js", "CavalryWasm.js"},
		{"PrefixedJS", "/wasm-lib/CavalryWasm.js", "CavalryWasm.js"},
		{"BareWasm", "/CavalryWasm.wasm", "CavalryWasm.wasm"},
		{"PrefixedWasm", "/wasm-lib/CavalryWasm.wasm", "CavalryWasm.wasm"},
		{"BareData", "/CavalryWasm.data", "CavalryWasm.data"},
		{"PrefixedData", "/wasm-lib/CavalryWasm.data", "CavalryWasm.data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := table.Resolve(tt.requestPath)
			assert.True(t, ok)
			assert.Equal(t, filepath.Join(assetDir, tt.wantFile), target)
		})
	}
}

func TestRewriteTable_Resolve_Misses(t *testing.T) {
	table := static.NewRewriteTable("/srv/wasm-lib")

	for _, path := range []string{
		"/",
		"/CavalryWasm.map",
		"/cavalrywasm.js",
		"/demos/CavalryWasm.js",
		"/wasm-lib/",
	} {
		_, ok := table.Resolve(path)
		assert.False(t, ok, "path %q must not rewrite", path)
	}
}
