package static

import (
	"fmt"
	"path/filepath"

	"wasm-player-server/core/server"

	"go.uber.org/zap"
)

// Service resolves request paths to files and content types.
type Service struct {
	root     string
	rewrites *RewriteTable
	types    *TypeTable
	logger   *zap.Logger
}

// NewService builds the immutable resolution tables from the server
// configuration.
func NewService(cfg server.Config, logger *zap.Logger) (*Service, error) {
	root, err := cfg.ResolvedRoot()
	if err != nil {
		return nil, fmt.Errorf("resolve document root: %w", err)
	}
	assetDir, err := cfg.ResolvedAssetDir()
	if err != nil {
		return nil, fmt.Errorf("resolve asset directory: %w", err)
	}
	return &Service{
		root:     root,
		rewrites: NewRewriteTable(assetDir),
		types:    NewTypeTable(),
		logger:   logger,
	}, nil
}

// Resolve maps a request path to a file-system path. Rewrite entries
// take precedence over document-root resolution.
func (s *Service) Resolve(requestPath string) string {
	if target, ok := s.rewrites.Resolve(requestPath); ok {
		return target
	}
	return resolveUnderRoot(s.root, requestPath)
}

// ContentType returns the content type for a resolved file path.
func (s *Service) ContentType(path string) string {
	return s.types.Lookup(filepath.Ext(path))
}
