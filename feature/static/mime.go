package static

import "mime"

// fallbackType is served when neither the override table nor the
// platform knows the extension.
const fallbackType = "application/octet-stream"

// TypeTable maps file extensions (with the dot) to content types. The
// override entries take precedence over whatever the platform MIME
// database says; anything else falls through to the platform and then
// to the binary fallback. Built once, immutable afterwards.
type TypeTable struct {
	overrides map[string]string
}

// NewTypeTable builds the table with the player's override entries.
func NewTypeTable() *TypeTable {
	return &TypeTable{overrides: map[string]string{
		".js":    "application/javascript",
		".wasm":  "application/wasm",
		".cv":    "application/octet-stream",
		".jpg":   "image/jpeg",
		".jpeg":  "image/jpeg",
		".png":   "image/png",
		".ttf":   "font/ttf",
		".otf":   "font/otf",
		".woff":  "font/woff",
		".woff2": "font/woff2",
	}}
}

// Lookup returns the content type for an extension. The extension is
// matched exactly as given; overrides are stored lowercase only.
func (t *TypeTable) Lookup(ext string) string {
	if typ, ok := t.overrides[ext]; ok {
		return typ
	}
	if typ := mime.TypeByExtension(ext); typ != "" {
		return typ
	}
	return fallbackType
}
