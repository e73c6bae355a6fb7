// Package trafilatura extracts main content from uploaded HTML documents.
package trafilatura

import (
	"bytes"

	"kbase"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Converter implements kbase.Converter at compile time.
var _ kbase.Converter = (*Converter)(nil)

// Converter wraps go-trafilatura to turn uploaded HTML files into clean
// content markup, with boilerplate (nav, footer, sidebar) removed.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert extracts the main content from raw HTML bytes. The result is
// simple HTML suitable for heading-based section splitting.
func (c *Converter) Convert(data []byte, ext string) (*kbase.ConvertResult, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, kbase.Errorf(kbase.EUNPROCESSABLE, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(bytes.NewReader(data), opts)
	if err != nil {
		return nil, kbase.Errorf(kbase.EUNPROCESSABLE, "failed to extract HTML content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &kbase.ConvertResult{
		Title: result.Metadata.Title,
		Text:  contentHTML,
		HTML:  true,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
