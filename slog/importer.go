package slog

import (
	"context"
	"log/slog"
	"time"

	"kbase"
)

// Ensure LoggingImporter implements kbase.Importer.
var _ kbase.Importer = (*LoggingImporter)(nil)

// LoggingImporter wraps an Importer with per-import logging.
type LoggingImporter struct {
	next   kbase.Importer
	logger *slog.Logger
}

// NewLoggingImporter creates a new LoggingImporter.
func NewLoggingImporter(next kbase.Importer, logger *slog.Logger) *LoggingImporter {
	return &LoggingImporter{next: next, logger: logger}
}

func (i *LoggingImporter) ImportText(ctx context.Context, req kbase.ImportRequest) (*kbase.ImportResult, error) {
	begin := time.Now()
	result, err := i.next.ImportText(ctx, req)
	i.log(ctx, "import text", result, err, "duration", time.Since(begin))
	return result, err
}

func (i *LoggingImporter) ImportFile(ctx context.Context, filename string, data []byte, mode string, req kbase.ImportRequest) (*kbase.ImportResult, error) {
	begin := time.Now()
	result, err := i.next.ImportFile(ctx, filename, data, mode, req)
	i.log(ctx, "import file", result, err,
		"filename", filename,
		"bytes", len(data),
		"mode", mode,
		"duration", time.Since(begin),
	)
	return result, err
}

func (i *LoggingImporter) log(ctx context.Context, msg string, result *kbase.ImportResult, err error, attrs ...any) {
	if err != nil {
		attrs = append(attrs, "err", err)
		i.logger.ErrorContext(ctx, msg, attrs...)
		return
	}
	attrs = append(attrs, "created", result.Created, "skipped", result.Skipped)
	i.logger.InfoContext(ctx, msg, attrs...)
}
