package static

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveUnderRoot(t *testing.T) {
	root, err := filepath.Abs(t.TempDir())
	assert.NoError(t, err)

	tests := []struct {
		name        string
		requestPath string
		want        string
	}{
		{"Root", "/", root},
		{"Plain", "/demo.html", filepath.Join(root, "demo.html")},
		{"Nested", "/demos/player/index.html", filepath.Join(root, "demos", "player", "index.html")},
		{"DotSegments", "/demos/./player/../demo.html", filepath.Join(root, "demos", "demo.html")},
		{"TraversalClamped", "/../../etc/passwd", filepath.Join(root, "etc", "passwd")},
		{"LeadingDotsClamped", "/..", root},
		{"NoLeadingSlash", "demo.html", filepath.Join(root, "demo.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveUnderRoot(root, tt.requestPath))
		})
	}
}
