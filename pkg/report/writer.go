package report

import (
	"bytes"
	"fmt"

	"igosint/pkg/logger"
	"igosint/pkg/storage"
)

// Writer persists reports through a storage manager
type Writer struct {
	store    *storage.Manager
	markdown bool
	logger   logger.Logger
}

// NewWriter creates a report writer. When markdown is set a companion
// Markdown report is written next to the JSON one.
func NewWriter(store *storage.Manager, markdown bool, log logger.Logger) *Writer {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Writer{store: store, markdown: markdown, logger: log}
}

// Write stores r as {username}_report.json and returns the JSON path
func (w *Writer) Write(r *Report) (string, error) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, r); err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	path, err := w.store.SaveReport(JSONFilename(r.Username), buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}

	w.logger.InfoWithFields("Report saved", map[string]interface{}{
		"username": r.Username,
		"path":     path,
	})

	if w.markdown {
		w.writeMarkdown(r)
	}

	return path, nil
}

// writeMarkdown failures are logged; the JSON report is authoritative
func (w *Writer) writeMarkdown(r *Report) {
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, r); err != nil {
		w.logger.WithError(err).Warn("Failed to render Markdown report")
		return
	}

	path, err := w.store.SaveReport(MarkdownFilename(r.Username), buf.Bytes())
	if err != nil {
		w.logger.WithError(err).Warn("Failed to save Markdown report")
		return
	}

	w.logger.DebugWithFields("Markdown report saved", map[string]interface{}{"path": path})
}
