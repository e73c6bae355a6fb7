package kbase_test

import (
	"testing"

	"kbase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid article passes", func(t *testing.T) {
		t.Parallel()

		a := &kbase.Article{ID: "KB-000001", Title: "Title", Status: kbase.StatusDraft}

		require.NoError(t, a.Validate())
	})

	t.Run("requires identifier", func(t *testing.T) {
		t.Parallel()

		a := &kbase.Article{Title: "Title"}

		err := a.Validate()
		require.Error(t, err)
		assert.Equal(t, kbase.EINVALID, kbase.ErrorCode(err))
	})

	t.Run("requires title", func(t *testing.T) {
		t.Parallel()

		a := &kbase.Article{ID: "KB-000001"}

		err := a.Validate()
		require.Error(t, err)
		assert.Equal(t, kbase.EINVALID, kbase.ErrorCode(err))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		t.Parallel()

		a := &kbase.Article{ID: "KB-000001", Title: "Title", Status: "archived"}

		err := a.Validate()
		require.Error(t, err)
		assert.Equal(t, kbase.EINVALID, kbase.ErrorCode(err))
	})
}

func TestArticle_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		a := &kbase.Article{ID: "KB-000001", Title: "Title", Content: "Some body text."}
		a.Normalize()

		assert.Equal(t, kbase.StatusPublished, a.Status)
		assert.Equal(t, kbase.DefaultCategory, a.Category)
		assert.Equal(t, "Some body text.", a.Summary)
	})

	t.Run("keeps supplied summary", func(t *testing.T) {
		t.Parallel()

		a := &kbase.Article{ID: "KB-000001", Title: "Title", Content: "body", Summary: "custom"}
		a.Normalize()

		assert.Equal(t, "custom", a.Summary)
	})

	t.Run("dedupes tags preserving order", func(t *testing.T) {
		t.Parallel()

		a := &kbase.Article{ID: "KB-000001", Title: "Title", Tags: []string{"b", "a", "b", "", "c", "a"}}
		a.Normalize()

		assert.Equal(t, []string{"b", "a", "c"}, a.Tags)
	})
}
