package kbase

// ConvertResult holds the text extracted from an uploaded document.
type ConvertResult struct {
	// Title extracted from document metadata, if any.
	Title string

	// Text is the extracted content: plain text, or simple HTML when
	// HTML is true.
	Text string

	// HTML reports whether Text is markup rather than plain text.
	HTML bool
}

// Converter turns uploaded file bytes into text. The ext argument is the
// declared file extension without the dot (e.g. "docx", "html", "txt").
// Returns EUNPROCESSABLE for unsupported formats or when no text could
// be extracted.
type Converter interface {
	Convert(data []byte, ext string) (*ConvertResult, error)
}

// HTMLConverter converts simple HTML markup to plain-text markdown for
// storage as article content.
type HTMLConverter interface {
	Convert(html string) (string, error)
}
