// Package convert dispatches uploaded documents to format-specific
// converters by file extension.
package convert

import (
	"strings"

	"kbase"
)

// Ensure Registry implements kbase.Converter at compile time.
var _ kbase.Converter = (*Registry)(nil)

// Registry routes Convert calls to the converter registered for the
// declared file extension. Extensions are matched case-insensitively
// with or without a leading dot.
type Registry struct {
	converters map[string]kbase.Converter
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{converters: make(map[string]kbase.Converter)}
}

// Register adds a converter for an extension.
// If a converter is already registered for the extension, it is replaced.
func (r *Registry) Register(ext string, conv kbase.Converter) {
	r.converters[normalizeExt(ext)] = conv
}

// Extensions returns all registered extensions.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.converters))
	for ext := range r.converters {
		exts = append(exts, ext)
	}
	return exts
}

// Convert dispatches to the converter registered for ext.
// Returns EUNPROCESSABLE for formats without a registered converter.
func (r *Registry) Convert(data []byte, ext string) (*kbase.ConvertResult, error) {
	conv, ok := r.converters[normalizeExt(ext)]
	if !ok {
		return nil, kbase.Errorf(kbase.EUNPROCESSABLE, "unsupported document format %q", ext)
	}
	return conv.Convert(data, ext)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
