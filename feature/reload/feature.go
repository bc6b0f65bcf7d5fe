package reload

import (
	"fmt"

	"wasm-player-server/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires live reload into the application when enabled.
type Feature struct {
	cfg    server.Config
	logger *zap.Logger

	hub     *Hub
	watcher *Watcher
}

// NewFeature creates the reload feature.
func NewFeature(cfg server.Config, logger *zap.Logger) *Feature {
	return &Feature{cfg: cfg, logger: logger}
}

// Name identifies the feature in logs.
func (f *Feature) Name() string {
	return "reload"
}

// IsEnabled reports whether live reload was requested in configuration.
func (f *Feature) IsEnabled() bool {
	return f.cfg.LiveReload
}

// Load starts the watcher over the document root and registers /events.
func (f *Feature) Load(app fiber.Router) error {
	root, err := f.cfg.ResolvedRoot()
	if err != nil {
		return err
	}

	f.hub = NewHub()
	f.watcher, err = NewWatcher(root, f.hub, f.logger, 0)
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}

	NewHandler(f.hub).RegisterRoutes(app)
	f.logger.Info("Live reload watching", zap.String("dir", root))
	return nil
}

// Close stops the watcher and terminates every open event stream so the
// server can drain connections during shutdown.
func (f *Feature) Close() error {
	var err error
	if f.watcher != nil {
		err = f.watcher.Close()
	}
	if f.hub != nil {
		f.hub.Close()
	}
	return err
}
