// Package goquery provides HTML-based section splitting for converted
// rich-text documents.
package goquery

import (
	"strings"

	"kbase"

	"github.com/PuerkitoBio/goquery"
)

// Ensure Splitter implements kbase.SectionSplitter at compile time.
var _ kbase.SectionSplitter = (*Splitter)(nil)

// DefaultHeadingSelector matches the block-level heading tags used as
// section boundaries in converted documents.
const DefaultHeadingSelector = "h1, h2, h3"

// Splitter splits simple HTML into sections at heading tags. The text
// inside a heading (markup stripped) becomes the section title; the
// stripped text of everything up to the next heading becomes its content.
type Splitter struct {
	// Heading selector. Defaults to DefaultHeadingSelector.
	Selector string
}

// NewSplitter creates a Splitter with the default heading selector.
func NewSplitter() *Splitter {
	return &Splitter{Selector: DefaultHeadingSelector}
}

// Split partitions HTML markup into sections. Markup before the first
// heading is discarded as preamble. Returns no sections when the markup
// contains no heading tags.
func (s *Splitter) Split(markup string) ([]kbase.Section, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, kbase.Errorf(kbase.EINVALID, "failed to parse HTML: %v", err)
	}

	selector := s.Selector
	if selector == "" {
		selector = DefaultHeadingSelector
	}

	var sections []kbase.Section
	doc.Find(selector).Each(func(_ int, heading *goquery.Selection) {
		title := strings.TrimSpace(heading.Text())
		if title == "" {
			title = kbase.UntitledTitle
		}

		var parts []string
		heading.NextUntil(selector).Each(func(_ int, block *goquery.Selection) {
			if text := strings.TrimSpace(block.Text()); text != "" {
				parts = append(parts, text)
			}
		})

		sections = append(sections, kbase.Section{
			Title:   title,
			Content: strings.Join(parts, "\n"),
		})
	})

	return sections, nil
}
