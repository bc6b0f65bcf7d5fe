package server

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the first port the server will try to bind.
	Port int `mapstructure:"port" default:"8000"`
	// MaxAttempts is how many successive ports are tried before giving up.
	MaxAttempts int `mapstructure:"max_attempts" default:"10"`
	// Root is the document root served to the browser.
	Root string `mapstructure:"root" default:"."`
	// AssetDir is the directory holding the WASM runtime bundle
	// (CavalryWasm.js, CavalryWasm.wasm, CavalryWasm.data). Relative
	// paths are resolved under Root.
	AssetDir string `mapstructure:"asset_dir" default:"wasm-lib"`
	// LiveReload enables the /events reload endpoint and file watcher.
	LiveReload bool `mapstructure:"live_reload" default:"false"`
}

// PortRange returns the inclusive range of candidate ports.
func (c Config) PortRange() (first, last int) {
	return c.Port, c.Port + c.MaxAttempts - 1
}

// ResolvedRoot returns the absolute document root.
func (c Config) ResolvedRoot() (string, error) {
	root, err := filepath.Abs(c.Root)
	if err != nil {
		return "", fmt.Errorf("invalid document root: %w", err)
	}
	return root, nil
}

// ResolvedAssetDir returns the absolute asset directory, resolving
// relative paths against the document root.
func (c Config) ResolvedAssetDir() (string, error) {
	dir := c.AssetDir
	if !filepath.IsAbs(dir) {
		root, err := c.ResolvedRoot()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(root, dir)
	}
	return dir, nil
}

// Validate checks that the configuration describes a servable setup.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1, got %d", c.MaxAttempts)
	}
	root, err := c.ResolvedRoot()
	if err != nil {
		return err
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("document root %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("document root %s is not a directory", root)
	}
	return nil
}
