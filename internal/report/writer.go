package report

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"url-checker/internal/config"
)

// Writer persists the aggregated document as indented JSON.
type Writer struct {
	path   string
	logger *zap.Logger
}

func NewWriter(cfg *config.Config, logger *zap.Logger) *Writer {
	return &Writer{
		path:   cfg.OutputPath,
		logger: logger,
	}
}

func (w *Writer) Write(doc []Entry) error {
	data, err := sonic.ConfigStd.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", w.path, err)
	}

	w.logger.Info("report written",
		zap.String("path", w.path),
		zap.Int("results", len(doc)))
	return nil
}
