package loader

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature is the contract every application feature implements.
type Feature interface {
	// Name identifies the feature in logs.
	Name() string
	// IsEnabled reports whether the feature should be loaded.
	IsEnabled() bool
	// Load registers the feature's routes and starts its background work.
	Load(app fiber.Router) error
}

// Manager holds the registry of available features.
type Manager struct {
	logger   *zap.Logger
	features []Feature
	loaded   []Feature
}

// NewManager creates an empty feature registry.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{logger: logger}
}

// Register adds a feature to the registry. Order is preserved.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadAll loads every enabled feature into the app. Disabled features
// are skipped with a log line. The first load error aborts.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			m.logger.Info("Feature disabled, skipping", zap.String("feature", f.Name()))
			continue
		}
		if err := f.Load(app); err != nil {
			return fmt.Errorf("load feature %s: %w", f.Name(), err)
		}
		m.loaded = append(m.loaded, f)
		m.logger.Info("Feature loaded", zap.String("feature", f.Name()))
	}
	return nil
}

// CloseAll shuts down loaded features that hold resources, in reverse
// load order.
func (m *Manager) CloseAll() {
	for i := len(m.loaded) - 1; i >= 0; i-- {
		if c, ok := m.loaded[i].(io.Closer); ok {
			if err := c.Close(); err != nil {
				m.logger.Warn("Feature close failed",
					zap.String("feature", m.loaded[i].Name()), zap.Error(err))
			}
		}
	}
}
