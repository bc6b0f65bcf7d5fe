package server

import (
	"fmt"
	"net"
	"sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Server couples a Fiber app with the listener chosen by the port
// search. It exists so startup and shutdown can be driven (and tested)
// without OS signal delivery.
type Server struct {
	app    *fiber.App
	ln     net.Listener
	logger *zap.Logger
	port   int

	shutdownOnce sync.Once
	shutdownErr  error
}

// New binds a listener for the configured port window and wraps it
// together with the app. The listener stays open until Shutdown.
func New(app *fiber.App, cfg Config, logger *zap.Logger) (*Server, error) {
	ln, port, err := Listen(cfg)
	if err != nil {
		return nil, err
	}
	return &Server{
		app:    app,
		ln:     ln,
		logger: logger,
		port:   port,
	}, nil
}

// Port returns the bound port.
func (s *Server) Port() int {
	return s.port
}

// URL returns the address to open in a browser.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d/", s.port)
}

// Start serves requests on the bound listener. It blocks until
// Shutdown is called or the listener fails.
func (s *Server) Start() error {
	return s.app.Listener(s.ln)
}

// Shutdown stops accepting connections and drains in-flight requests.
// Safe to call more than once; only the first call does any work.
func (s *Server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		s.logger.Info("Closing listener", zap.Int("port", s.port))
		s.shutdownErr = s.app.Shutdown()
	})
	return s.shutdownErr
}
