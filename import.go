package kbase

import "context"

// Upload extraction modes.
const (
	ModeSingle = "single" // whole document becomes one article
	ModeSplit  = "split"  // document is split into per-section articles
)

// ImportRequest describes a structured-text import.
type ImportRequest struct {
	// Raw document text. Required for text imports.
	Text string `json:"text"`

	// Splitting strategy. Defaults to FormatHeadings; setting Marker
	// implies FormatMarker.
	Format SplitFormat `json:"format,omitempty"`
	Marker string      `json:"marker,omitempty"`

	// Identifier allocation. A zero Start uses the shared counter;
	// a positive Start numbers this batch locally from that value.
	Prefix string `json:"prefix,omitempty"`
	Start  int64  `json:"start,omitempty"`

	// Fields applied to every created article.
	Tags     []string `json:"tags,omitempty"`
	Category string   `json:"category,omitempty"`
	Status   string   `json:"status,omitempty"`
}

// ImportResult reports the outcome of an import.
type ImportResult struct {
	// Number of articles created.
	Created int `json:"created"`

	// First and last assigned identifiers.
	FirstID string `json:"firstId,omitempty"`
	LastID  string `json:"lastId,omitempty"`

	// Sections skipped as duplicates (colliding identifier or repeated
	// content within the batch).
	Skipped int `json:"skipped,omitempty"`
}

// Importer orchestrates document ingestion: splitting, summarizing,
// identifier allocation, and storage.
type Importer interface {
	// ImportText splits raw text into sections and stores one article
	// per section. Returns EINVALID for blank text and EEMPTY when the
	// splitter finds no sections in otherwise non-empty input.
	ImportText(ctx context.Context, req ImportRequest) (*ImportResult, error)

	// ImportFile converts uploaded file bytes to text and stores either
	// one article (ModeSingle) or one per section (ModeSplit).
	// Returns EINVALID for an empty file, EUNPROCESSABLE when no text
	// could be extracted.
	ImportFile(ctx context.Context, filename string, data []byte, mode string, req ImportRequest) (*ImportResult, error)
}

// SeenFilter screens repeated section content within an import. False
// positives are possible; false negatives are not.
type SeenFilter interface {
	Add(key string)
	Test(key string) bool
}
