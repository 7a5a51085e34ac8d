package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// exportDirName is the well-known directory under the host temp area
// that receives every exported file. The location is fixed: callers of
// the export tool never choose where files land.
const exportDirName = "protex-intelligence-file-exports"

// Paths contains all the application paths.
// This is the single source of truth for file locations.
type Paths struct {
	ExportDir string
}

// GetPaths returns the application paths. The export directory always
// resolves under the host's temporary-files area.
func GetPaths() *Paths {
	return &Paths{
		ExportDir: filepath.Join(os.TempDir(), exportDirName),
	}
}

// GetExportPath returns the full path for an exported file
func (p *Paths) GetExportPath(filename string) string {
	return filepath.Join(p.ExportDir, filename)
}

// EnsureDirectories creates the export directory if it does not exist.
// Safe to call repeatedly and from concurrent processes.
func (p *Paths) EnsureDirectories() error {
	if _, err := os.Stat(p.ExportDir); err == nil {
		slog.Debug("Export directory exists", slog.String("path", p.ExportDir))
		return nil
	}
	if err := os.MkdirAll(p.ExportDir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory %s: %w", p.ExportDir, err)
	}
	slog.Info("Created export directory", slog.String("path", p.ExportDir))
	return nil
}
