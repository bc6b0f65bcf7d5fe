package static

import "path/filepath"

// resolveUnderRoot maps a request path to an absolute location inside
// root. Anchoring the path at "/" before cleaning collapses any ".."
// segments against the root, so the result cannot escape it. root must
// already be absolute.
func resolveUnderRoot(root, requestPath string) string {
	cleanPath := filepath.Clean("/" + filepath.FromSlash(requestPath))
	return filepath.Join(root, cleanPath)
}
