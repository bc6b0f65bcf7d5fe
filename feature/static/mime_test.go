package static_test

import (
	"testing"

	"wasm-player-server/feature/static"

	"github.com/stretchr/testify/assert"
)

func TestTypeTable_Lookup_Overrides(t *testing.T) {
	table := static.NewTypeTable()

	tests := []struct {
		ext  string
		want string
	}{
		{".js", "application/javascript"},
		{".wasm", "application/wasm"},
		{".cv", "application/octet-stream"},
		{".jpg", "image/jpeg"},
		{".jpeg", "image/jpeg"},
		{".png", "image/png"},
		{".ttf", "font/ttf"},
		{".otf", "font/otf"},
		{".woff", "font/woff"},
		{".woff2", "font/woff2"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Lookup(tt.ext))
		})
	}
}

func TestTypeTable_Lookup_PlatformFallback(t *testing.T) {
	table := static.NewTypeTable()
	assert.Contains(t, table.Lookup(".html"), "text/html")
}

func TestTypeTable_Lookup_BinaryFallback(t *testing.T) {
	table := static.NewTypeTable()
	assert.Equal(t, "application/octet-stream", table.Lookup(".data"))
	assert.Equal(t, "application/octet-stream", table.Lookup(""))
}

func TestTypeTable_Lookup_CaseSensitive(t *testing.T) {
	table := static.NewTypeTable()
	// Overrides match the stored extension exactly; .CV is not an entry
	assert.Equal(t, "application/octet-stream", table.Lookup(".CV"))
	assert.NotEqual(t, "application/javascript", table.Lookup(".JS"))
}
