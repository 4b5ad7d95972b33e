package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"md2pdf/internal/config"
	"md2pdf/internal/http/server"
	"md2pdf/internal/infra/logging"
	"md2pdf/internal/infra/wkhtmltopdf"
	"md2pdf/internal/version"
)

func main() {
	cfg := config.Load()
	// Allow common container env var to override pdf.binary.
	if v := os.Getenv("WKHTMLTOPDF_BIN"); v != "" {
		cfg.PDF.Binary = v
	}
	logging.Init(
		cfg.Logger.File,
		cfg.Logger.MaxSizeMB,
		cfg.Logger.MaxBackups,
		cfg.Logger.MaxAgeDays,
		cfg.Logger.Compress,
		cfg.Logger.Level,
	)

	engine := wkhtmltopdf.New(cfg)

	// The rendering tool must be present before we bind the listener.
	probeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err := engine.Probe(probeCtx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s is not installed. Please install it first.\n", cfg.PDF.Binary)
		os.Exit(1)
	}

	app := server.New(server.Deps{Config: cfg, Renderer: engine, Prober: engine})

	logging.Info("Starting md2pdf", "version", version.Version, "addr", cfg.Server.Host+cfg.Server.Port)

	idleConnsClosed := make(chan struct{})
	startServer(app, cfg, idleConnsClosed)
	<-idleConnsClosed
}

// startServer starts the Fiber app and listens for shutdown signals
func startServer(app *fiber.App, cfg config.Config, idleConnsClosed chan struct{}) {
	go func() {
		if err := app.Listen(cfg.Server.Host + cfg.Server.Port); err != nil {
			logging.Error("Server error", "error", err)
		}
	}()

	// Listen for OS termination signals
	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
	<-sigint

	logging.Warn("Shutdown signal received, closing server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
	}

	close(idleConnsClosed)
	logging.Info("Server stopped cleanly")
}
