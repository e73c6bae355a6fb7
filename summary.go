package kbase

import "strings"

// SummaryBudget is the character budget for derived summaries.
const SummaryBudget = 140

// ellipsis marks a truncated summary.
const ellipsis = "..."

// Summarize derives a short preview string from article body text using
// the default budget. See SummarizeN.
func Summarize(content string) string {
	return SummarizeN(content, SummaryBudget)
}

// SummarizeN collapses all whitespace runs to a single space, trims the
// result, and truncates it to the budget with a trailing ellipsis when it
// is too long. The function is pure and idempotent: a string already at
// or below the budget is returned unchanged, including the empty string.
func SummarizeN(content string, budget int) string {
	if budget <= 0 {
		budget = SummaryBudget
	}

	collapsed := strings.Join(strings.Fields(content), " ")

	runes := []rune(collapsed)
	if len(runes) <= budget {
		return collapsed
	}

	// Truncate so that the final length, ellipsis included, stays within
	// the budget. This keeps SummarizeN idempotent: re-summarizing a
	// truncated summary leaves it unchanged.
	cut := budget - len(ellipsis)
	if cut < 0 {
		cut = 0
	}
	return strings.TrimRight(string(runes[:cut]), " ") + ellipsis
}
