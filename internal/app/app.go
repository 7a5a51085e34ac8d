package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"csvexport/internal/config"
	"csvexport/internal/exporter"
	"csvexport/internal/infrastructure"
	"csvexport/internal/transport/mcpsrv"
)

// Application wires configuration, logging, the export writer and the
// MCP transport together.
type Application struct {
	cfg    *config.Config
	paths  *config.Paths
	logger *slog.Logger
	server *mcpsrv.Server
}

// NewApplication builds the application container from configuration
func NewApplication(cfg *config.Config) (*Application, error) {
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	paths := config.GetPaths()
	writer := exporter.NewWriter(paths.ExportDir, logger)
	server := mcpsrv.New(cfg.App, writer, logger)

	return &Application{
		cfg:    cfg,
		paths:  paths,
		logger: logger,
		server: server,
	}, nil
}

// Run prepares the export directory, logs readiness and serves the
// stdio transport until the client disconnects or the process receives
// an interrupt.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.paths.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to prepare export directory: %w", err)
	}

	a.logger.Info("CSV export server running on stdio",
		slog.String("name", a.cfg.App.Name),
		slog.String("version", a.cfg.App.Version),
		slog.String("export_dir", a.paths.ExportDir))

	defer infrastructure.CloseLogFile()
	return a.server.Run(ctx)
}
