package kbase

import (
	"regexp"
	"strings"
)

// UntitledTitle is assigned to sections whose title is blank after trimming.
const UntitledTitle = "Untitled"

// Section represents one candidate article produced by splitting a
// document. Content may legitimately be empty for a heading-only section.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SplitFormat selects the splitting strategy for a document.
type SplitFormat string

// Splitting strategies. FormatMarker and FormatHeadings operate on plain
// text; FormatHTML operates on converted rich-text markup and is
// implemented by the goquery subpackage.
const (
	FormatMarker   SplitFormat = "marker"
	FormatHeadings SplitFormat = "headings"
	FormatHTML     SplitFormat = "html"
)

// SectionSplitter partitions a document's text into candidate sections.
type SectionSplitter interface {
	Split(text string) ([]Section, error)
}

// headingRe matches a new-section boundary: optional leading whitespace,
// a numeric/bullet prefix ("1.", "2)", "3-") or a markdown heading marker
// ("##" or more), followed by non-empty text.
var headingRe = regexp.MustCompile(`^\s*(?:\d+\s*[.)-]|#{2,})\s*(\S.*)$`)

// SplitMarker splits text wherever a line matches the case-insensitive
// literal marker phrase followed by a colon, optionally preceded by a
// numeric prefix (e.g. "3. Task type: X"). The marker line's trailing
// text becomes the section title and everything up to the next marker
// becomes its content. Text before the first marker is discarded as
// document preamble. Returns nil if no marker line is found.
func SplitMarker(text, marker string) []Section {
	if text == "" || marker == "" {
		return nil
	}

	markerRe := regexp.MustCompile(`(?i)^\s*(?:\d+\s*[.)-]\s*)?` + regexp.QuoteMeta(marker) + `\s*:\s*(.*)$`)

	var sections []Section
	var current *Section
	var content []string

	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.TrimSpace(strings.Join(content, "\n"))
		sections = append(sections, *current)
		current = nil
		content = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if m := markerRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &Section{Title: sectionTitle(m[1])}
			continue
		}
		if current != nil {
			content = append(content, line)
		}
	}
	flush()

	return sections
}

// SplitHeadings splits text on heading lines (see headingRe) and
// accumulates subsequent non-heading lines as each section's content.
// Blank lines are dropped before boundary detection. Text before the
// first heading is discarded. Returns nil if no heading line is found.
func SplitHeadings(text string) []Section {
	if text == "" {
		return nil
	}

	var sections []Section
	var current *Section
	var content []string

	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.TrimSpace(strings.Join(content, "\n"))
		sections = append(sections, *current)
		current = nil
		content = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if m := headingRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &Section{Title: sectionTitle(m[1])}
			continue
		}
		if current != nil {
			content = append(content, line)
		}
	}
	flush()

	return sections
}

// sectionTitle trims a raw title line, defaulting blank titles.
func sectionTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if title == "" {
		return UntitledTitle
	}
	return title
}

// splitterFunc adapts a plain function to the SectionSplitter interface.
type splitterFunc func(text string) ([]Section, error)

func (f splitterFunc) Split(text string) ([]Section, error) { return f(text) }

// MarkerSplitter returns a SectionSplitter using marker-based splitting.
func MarkerSplitter(marker string) SectionSplitter {
	return splitterFunc(func(text string) ([]Section, error) {
		return SplitMarker(text, marker), nil
	})
}

// HeadingSplitter returns a SectionSplitter using heading-based splitting.
func HeadingSplitter() SectionSplitter {
	return splitterFunc(func(text string) ([]Section, error) {
		return SplitHeadings(text), nil
	})
}
