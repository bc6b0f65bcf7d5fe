package static

import (
	"os"
	"path/filepath"

	"wasm-player-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// indexFile is served when a request resolves to a directory.
const indexFile = "index.html"

// Handler handles HTTP requests for static files.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catch-all file route. Fiber serves HEAD
// through the same handler and rejects other methods with 405.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/*", h.HandleFile)
}

// HandleFile resolves the request path and streams the file back.
// Every failure is scoped to this one request.
func (h *Handler) HandleFile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	target := h.service.Resolve(c.Path())

	info, err := os.Stat(target)
	if err != nil {
		return h.statError(c, l, target, err)
	}
	if info.IsDir() {
		target = filepath.Join(target, indexFile)
		info, err = os.Stat(target)
		if err != nil {
			return h.statError(c, l, target, err)
		}
	}

	f, err := os.Open(target)
	if err != nil {
		// The file can disappear or change mode between stat and open.
		return h.statError(c, l, target, err)
	}

	c.Set(fiber.HeaderContentType, h.service.ContentType(target))
	return c.SendStream(f, int(info.Size()))
}

// statError maps a filesystem error to the per-request status code.
func (h *Handler) statError(c *fiber.Ctx, l *zap.Logger, target string, err error) error {
	switch {
	case os.IsNotExist(err):
		return c.Status(fiber.StatusNotFound).SendString("404 Not Found")
	case os.IsPermission(err):
		l.Warn("Permission denied", zap.String("file", target))
		return c.Status(fiber.StatusForbidden).SendString("403 Forbidden")
	default:
		l.Error("File access failed", zap.String("file", target), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("500 Internal Server Error")
	}
}
