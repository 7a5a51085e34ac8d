package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer persists encoded CSV payloads under a single export directory
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter creates a writer rooted at dir. The directory is injected
// rather than discovered so tests can point the writer anywhere.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		dir:    dir,
		logger: logger.With(slog.String("component", "export_writer")),
	}
}

// Dir returns the export directory this writer targets
func (w *Writer) Dir() string {
	return w.dir
}

// Write persists content to <dir>/<filename> in one operation and
// returns the absolute path. The directory is created on demand; a
// same-named existing file is overwritten. Failures propagate wrapped,
// with no retry and no cleanup of partial writes.
func (w *Writer) Write(content, filename string) (string, error) {
	if _, err := os.Stat(w.dir); os.IsNotExist(err) {
		if err := os.MkdirAll(w.dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create export directory: %w", err)
		}
		w.logger.Info("Created export directory", slog.String("path", w.dir))
	}

	fullPath := filepath.Join(w.dir, filename)
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	w.logger.Info("File written",
		slog.String("path", fullPath),
		slog.Int("bytes", len(content)))

	return fullPath, nil
}

// SizeLabel renders a human-facing size for a payload: kilobytes
// rounded up with a floor of 1 KB, re-expressed with two decimals in
// megabytes from 1024 KB upward.
func SizeLabel(content string) string {
	bytes := len(content)
	kb := (bytes + 1023) / 1024
	if kb >= 1024 {
		return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
	}
	if kb < 1 {
		kb = 1
	}
	return fmt.Sprintf("%d KB", kb)
}
