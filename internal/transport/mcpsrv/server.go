package mcpsrv

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"csvexport/internal/config"
	"csvexport/internal/exporter"
)

// Server binds the csv_export tool to an MCP stdio endpoint.
//
// Tool dispatch lives in the SDK: a call naming any tool other than
// csv_export is rejected at the protocol level before reaching this
// package, which keeps unknown-tool failures distinct from the
// soft-error results the handler produces for bad data.
type Server struct {
	mcp    *mcp.Server
	writer *exporter.Writer
	logger *slog.Logger
}

// New assembles the MCP server and registers the tool catalog
func New(cfg config.AppConfig, writer *exporter.Writer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		writer: writer,
		logger: logger.With(slog.String("component", "mcp_server")),
	}
	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, nil)
	s.mcp.AddTool(csvExportTool(), s.handleCSVExport)
	return s
}

// Run serves the stdio transport until the client disconnects or ctx
// is canceled. Requests are handled one at a time by the transport.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
