package mock

import (
	"context"

	"kbase"
)

var _ kbase.Importer = (*Importer)(nil)

// Importer is a mock implementation of kbase.Importer.
type Importer struct {
	ImportTextFn func(ctx context.Context, req kbase.ImportRequest) (*kbase.ImportResult, error)
	ImportFileFn func(ctx context.Context, filename string, data []byte, mode string, req kbase.ImportRequest) (*kbase.ImportResult, error)
}

func (i *Importer) ImportText(ctx context.Context, req kbase.ImportRequest) (*kbase.ImportResult, error) {
	return i.ImportTextFn(ctx, req)
}

func (i *Importer) ImportFile(ctx context.Context, filename string, data []byte, mode string, req kbase.ImportRequest) (*kbase.ImportResult, error) {
	return i.ImportFileFn(ctx, filename, data, mode, req)
}
