package kbase

import "strings"

// FormatArticles formats articles for display. Each article renders as an
// identifier-and-title header followed by its summary. Articles are
// separated by blank lines.
func FormatArticles(articles []*Article) string {
	if len(articles) == 0 {
		return ""
	}

	parts := make([]string, 0, len(articles))
	for _, a := range articles {
		header := a.ID + "  " + a.Title
		if a.Summary == "" {
			parts = append(parts, header)
			continue
		}
		parts = append(parts, header+"\n"+a.Summary)
	}

	return strings.Join(parts, "\n\n")
}
