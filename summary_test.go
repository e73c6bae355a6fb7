package kbase_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"kbase"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a b c", kbase.Summarize("  a \t b\n\n c  "))
	})

	t.Run("returns short content unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "short summary", kbase.Summarize("short summary"))
	})

	t.Run("returns empty string for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", kbase.Summarize(""))
		assert.Equal(t, "", kbase.Summarize("   \n\t "))
	})

	t.Run("truncates long content with ellipsis", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("word ", 100)

		got := kbase.Summarize(long)

		assert.True(t, strings.HasSuffix(got, "..."))
		assert.LessOrEqual(t, utf8.RuneCountInString(got), kbase.SummaryBudget)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"",
			"short",
			strings.Repeat("x", 139),
			strings.Repeat("x", 140),
			strings.Repeat("x", 141),
			strings.Repeat("lorem ipsum dolor ", 50),
			"  spaced   out   content  ",
		}

		for _, in := range inputs {
			once := kbase.Summarize(in)
			assert.Equal(t, once, kbase.Summarize(once))
		}
	})

	t.Run("is length bounded", func(t *testing.T) {
		t.Parallel()

		for _, n := range []int{0, 1, 139, 140, 141, 500, 10000} {
			got := kbase.Summarize(strings.Repeat("a", n))
			assert.LessOrEqual(t, utf8.RuneCountInString(got), kbase.SummaryBudget+3)
		}
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		t.Parallel()

		got := kbase.SummarizeN(strings.Repeat("ż", 200), 120)

		assert.LessOrEqual(t, utf8.RuneCountInString(got), 120)
		assert.True(t, strings.HasSuffix(got, "..."))
	})
}

func TestSummarizeN_VariantBudget(t *testing.T) {
	t.Parallel()

	got := kbase.SummarizeN(strings.Repeat("a", 200), 120)

	assert.Equal(t, 120, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
}
