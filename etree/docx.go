// Package etree extracts text from Word (.docx) documents. A docx file
// is a zip archive whose main part, word/document.xml, carries the
// document body as WordprocessingML.
package etree

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"

	"kbase"

	"github.com/beevik/etree"
)

// Ensure Converter implements kbase.Converter at compile time.
var _ kbase.Converter = (*Converter)(nil)

// documentPart is the archive entry holding the document body.
const documentPart = "word/document.xml"

// Converter extracts plain text from docx bytes. Paragraphs styled as
// headings are rendered as markdown heading lines ("## Title"), so the
// output can be fed directly to heading-based section splitting.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert extracts the document text. The first heading paragraph, if
// any, becomes the result title.
func (c *Converter) Convert(data []byte, ext string) (*kbase.ConvertResult, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, kbase.Errorf(kbase.EUNPROCESSABLE, "not a Word document archive")
	}

	part, err := readArchiveFile(zr, documentPart)
	if err != nil {
		return nil, kbase.Errorf(kbase.EUNPROCESSABLE, "Word document has no %s part", documentPart)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(part); err != nil {
		return nil, kbase.Errorf(kbase.EUNPROCESSABLE, "failed to parse document body: %v", err)
	}

	var lines []string
	var title string

	for _, p := range doc.FindElements("//w:p") {
		text := paragraphText(p)
		if strings.TrimSpace(text) == "" {
			continue
		}

		if level := headingLevel(p); level > 0 {
			if title == "" {
				title = text
			}
			// Heading 1 maps to "##" so that every heading line
			// carries at least two markers.
			lines = append(lines, strings.Repeat("#", level+1)+" "+text)
			continue
		}
		lines = append(lines, text)
	}

	return &kbase.ConvertResult{
		Title: title,
		Text:  strings.Join(lines, "\n"),
	}, nil
}

// readArchiveFile returns the contents of a named zip entry.
func readArchiveFile(zr *zip.Reader, name string) ([]byte, error) {
	f, err := zr.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// paragraphText joins the text runs of a paragraph element.
func paragraphText(p *etree.Element) string {
	var sb strings.Builder
	for _, t := range p.FindElements(".//w:t") {
		sb.WriteString(t.Text())
	}
	return sb.String()
}

// headingLevel returns the heading level of a paragraph (1 for
// "Heading1", 2 for "Heading2", ...) or 0 for body paragraphs.
func headingLevel(p *etree.Element) int {
	style := p.FindElement("w:pPr/w:pStyle")
	if style == nil {
		return 0
	}
	val := style.SelectAttrValue("w:val", "")
	name := strings.ToLower(val)
	if !strings.HasPrefix(name, "heading") {
		if name == "title" {
			return 1
		}
		return 0
	}
	switch strings.TrimPrefix(name, "heading") {
	case "1":
		return 1
	case "2":
		return 2
	case "3":
		return 3
	default:
		return 4
	}
}
