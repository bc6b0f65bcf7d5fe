package static

import (
	"wasm-player-server/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the static file serving into the application.
type Feature struct {
	cfg    server.Config
	logger *zap.Logger
}

// NewFeature creates the static feature.
func NewFeature(cfg server.Config, logger *zap.Logger) *Feature {
	return &Feature{cfg: cfg, logger: logger}
}

// Name identifies the feature in logs.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled always reports true; serving files is the whole point.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load builds the resolution tables and registers the file route.
func (f *Feature) Load(app fiber.Router) error {
	svc, err := NewService(f.cfg, f.logger)
	if err != nil {
		return err
	}
	NewHandler(svc).RegisterRoutes(app)
	return nil
}
