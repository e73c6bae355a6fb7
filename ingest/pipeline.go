// Package ingest orchestrates document ingestion: section splitting,
// summarization, identifier allocation, and storage.
package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"kbase"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

// Ensure Pipeline implements kbase.Importer at compile time.
var _ kbase.Importer = (*Pipeline)(nil)

// DefaultConcurrency bounds parallel section processing per import.
const DefaultConcurrency = 4

// Pipeline converts, splits, summarizes, and stores imported documents.
type Pipeline struct {
	Articles kbase.ArticleService
	Counters kbase.CounterService

	// Converter turns uploaded file bytes into text by extension.
	Converter kbase.Converter

	// Markdown rewrites extracted HTML into markdown when a whole
	// document is stored as one article. When nil, HTML content is
	// stored as extracted. Split sections never pass through it: the
	// markup splitter already strips tags.
	Markdown kbase.HTMLConverter

	// HTMLSplitter partitions converted rich-text markup into sections.
	HTMLSplitter kbase.SectionSplitter

	// Seen screens repeated section content within and across imports.
	// When nil, no content dedup is performed.
	Seen kbase.SeenFilter

	// Identifier allocation settings. Zero values fall back to the
	// package defaults; ImportRequest.Prefix overrides Prefix per call.
	Counter string
	Prefix  string
	Pad     int

	// Concurrency bounds parallel section processing.
	Concurrency int
}

// ImportText splits raw text into sections and stores one article per
// section. Returns EINVALID for blank text and EEMPTY when the splitter
// finds no sections.
func (p *Pipeline) ImportText(ctx context.Context, req kbase.ImportRequest) (*kbase.ImportResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, kbase.Errorf(kbase.EINVALID, "import text is required")
	}

	sections, err := p.splitText(req.Text, req)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, kbase.Errorf(kbase.EEMPTY, "no sections found in import text")
	}

	return p.storeSections(ctx, sections, req)
}

// ImportFile converts uploaded file bytes to text and stores either one
// article (ModeSingle) or one per section (ModeSplit). Returns EINVALID
// for an empty file, EUNPROCESSABLE when no text could be extracted.
func (p *Pipeline) ImportFile(ctx context.Context, filename string, data []byte, mode string, req kbase.ImportRequest) (*kbase.ImportResult, error) {
	if len(data) == 0 {
		return nil, kbase.Errorf(kbase.EINVALID, "uploaded file is empty")
	}

	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	result, err := p.Converter.Convert(data, ext)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.Text) == "" {
		return nil, kbase.Errorf(kbase.EUNPROCESSABLE, "no text could be extracted from %q", filename)
	}

	title := result.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	switch mode {
	case kbase.ModeSingle, "":
		// The single-article path is the only place content is still
		// markup: the markup splitter strips tags as it splits.
		content := result.Text
		if result.HTML && p.Markdown != nil {
			content, err = p.Markdown.Convert(content)
			if err != nil {
				return nil, err
			}
		}
		sections := []kbase.Section{{Title: title, Content: content}}
		return p.storeSections(ctx, sections, req)
	case kbase.ModeSplit:
		var sections []kbase.Section
		var err error
		if result.HTML {
			sections, err = p.htmlSplitter().Split(result.Text)
		} else {
			sections, err = p.splitText(result.Text, req)
		}
		if err != nil {
			return nil, err
		}
		if len(sections) == 0 {
			return nil, kbase.Errorf(kbase.EEMPTY, "no sections found in %q", filename)
		}
		return p.storeSections(ctx, sections, req)
	default:
		return nil, kbase.Errorf(kbase.EINVALID, "unknown extraction mode %q", mode)
	}
}

// splitText picks a splitter from the request and applies it. Every
// splitter, the markup splitter included, emits plain-text sections.
func (p *Pipeline) splitText(text string, req kbase.ImportRequest) ([]kbase.Section, error) {
	if req.Marker != "" {
		return kbase.MarkerSplitter(req.Marker).Split(text)
	}

	switch req.Format {
	case kbase.FormatMarker:
		return nil, kbase.Errorf(kbase.EINVALID, "marker is required for marker-based splitting")
	case kbase.FormatHTML:
		return p.htmlSplitter().Split(text)
	case kbase.FormatHeadings, "":
		return kbase.HeadingSplitter().Split(text)
	default:
		return nil, kbase.Errorf(kbase.EINVALID, "unknown split format %q", req.Format)
	}
}

// storeSections summarizes sections in parallel, allocates identifiers in
// document order, and bulk-inserts the resulting articles. Section content
// is stored as given; heading-only sections keep their empty content.
func (p *Pipeline) storeSections(ctx context.Context, sections []kbase.Section, req kbase.ImportRequest) (*kbase.ImportResult, error) {
	sections, skipped := p.dedupe(sections)
	if len(sections) == 0 {
		return &kbase.ImportResult{Skipped: skipped}, nil
	}

	articles := make([]*kbase.Article, len(sections))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency())
	for i, section := range sections {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			articles[i] = &kbase.Article{
				Title:    section.Title,
				Summary:  kbase.Summarize(section.Content),
				Content:  section.Content,
				Tags:     req.Tags,
				Status:   req.Status,
				Category: req.Category,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := p.allocate(ctx, articles, req); err != nil {
		return nil, err
	}

	inserted, err := p.Articles.BulkInsertArticles(ctx, articles, true)
	if err != nil {
		return nil, err
	}

	if req.Start > 0 {
		// Move the shared counter past the batch-local run so later
		// counter-based allocations cannot reuse these numbers.
		floor := req.Start + int64(len(articles)) - 1
		if err := p.Counters.SeedCounter(ctx, p.counterName(), floor); err != nil {
			return nil, err
		}
	}

	return &kbase.ImportResult{
		Created: inserted.Inserted,
		FirstID: inserted.FirstID,
		LastID:  inserted.LastID,
		Skipped: skipped + len(inserted.Duplicates),
	}, nil
}

// allocate assigns identifiers in document order. A positive Start
// numbers the batch from a local cursor; otherwise each identifier is one
// atomic increment of the shared counter.
func (p *Pipeline) allocate(ctx context.Context, articles []*kbase.Article, req kbase.ImportRequest) error {
	prefix := req.Prefix
	if prefix == "" {
		prefix = p.Prefix
	}

	if req.Start > 0 {
		cursor := req.Start
		for _, article := range articles {
			article.ID = kbase.FormatIdentifier(prefix, cursor, p.Pad)
			cursor++
		}
		return nil
	}

	alloc := &kbase.Allocator{
		Counters: p.Counters,
		Counter:  p.counterName(),
		Prefix:   prefix,
		Pad:      p.Pad,
	}
	for _, article := range articles {
		id, err := alloc.Allocate(ctx)
		if err != nil {
			return err
		}
		article.ID = id
	}
	return nil
}

// dedupe drops sections whose content hash has been seen before.
func (p *Pipeline) dedupe(sections []kbase.Section) ([]kbase.Section, int) {
	if p.Seen == nil {
		return sections, 0
	}

	kept := sections[:0]
	skipped := 0
	for _, section := range sections {
		key := hashSection(section)
		if p.Seen.Test(key) {
			skipped++
			continue
		}
		p.Seen.Add(key)
		kept = append(kept, section)
	}
	return kept, skipped
}

func (p *Pipeline) htmlSplitter() kbase.SectionSplitter {
	if p.HTMLSplitter != nil {
		return p.HTMLSplitter
	}
	return kbase.HeadingSplitter()
}

func (p *Pipeline) counterName() string {
	if p.Counter != "" {
		return p.Counter
	}
	return kbase.DefaultCounterName
}

func (p *Pipeline) concurrency() int {
	if p.Concurrency > 0 {
		return p.Concurrency
	}
	return DefaultConcurrency
}

func hashSection(section kbase.Section) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(section.Title+"\x00"+section.Content))
}
