package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"wasm-player-server/core/config"
	"wasm-player-server/core/loader"
	"wasm-player-server/core/logger"
	"wasm-player-server/core/middleware/isolation"
	"wasm-player-server/core/middleware/rayid"
	"wasm-player-server/core/server"

	"wasm-player-server/feature/reload"
	"wasm-player-server/feature/static"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the WASM player server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	if err := cfg.Server.Validate(); err != nil {
		logg.Fatal("Invalid configuration", zap.Error(err))
	}

	// 3. Initialize Fiber App
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We will log our own startup message
	})

	// Middleware Registration
	// 1. RayID (Must be first to trace everything)
	app.Use(rayid.New())

	// 2. Logging Middleware (Custom to use Zap + RayID)
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
			return err
		}
		l.Info("Request served",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
		)
		return nil
	})

	// 3. Cross-origin isolation headers on every response
	app.Use(isolation.New())

	// 4. Initialize Feature Loader
	// The static feature registers a catch-all route, so it must load
	// after every feature with routes of its own.
	mgr := loader.NewManager(logg)
	mgr.Register(reload.NewFeature(cfg.Server, logg))
	mgr.Register(static.NewFeature(cfg.Server, logg))

	if err := mgr.LoadAll(app); err != nil {
		logg.Fatal("Failed to load features", zap.Error(err))
	}

	// 5. Bind the first free port in the window
	srv, err := server.New(app, cfg.Server, logg)
	if err != nil {
		if errors.Is(err, server.ErrNoAvailablePort) {
			first, last := cfg.Server.PortRange()
			fmt.Fprintf(os.Stderr, "Could not find an available port in range %d-%d\n", first, last)
		}
		logg.Fatal("Startup failed", zap.Error(err))
	}

	// 6. Start Server
	go func() {
		fmt.Printf("Serving Cavalry Web Player at %s\n", srv.URL())
		logg.Info("Starting server", zap.Int("port", srv.Port()))
		if err := srv.Start(); err != nil {
			logg.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// 7. Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	fmt.Println("\nShutting down...")
	logg.Info("Shutting down server...")
	mgr.CloseAll()
	_ = srv.Shutdown()
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
