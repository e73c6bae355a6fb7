package convert

import (
	"bytes"

	"kbase"
)

// Ensure Plain implements kbase.Converter at compile time.
var _ kbase.Converter = (*Plain)(nil)

// Plain passes text files through unchanged.
type Plain struct{}

// NewPlain creates a new Plain converter.
func NewPlain() *Plain {
	return &Plain{}
}

// Convert returns the file bytes as plain text.
func (p *Plain) Convert(data []byte, ext string) (*kbase.ConvertResult, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, kbase.Errorf(kbase.EUNPROCESSABLE, "document contains no text")
	}
	return &kbase.ConvertResult{Text: string(data)}, nil
}
