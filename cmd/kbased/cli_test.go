package main_test

import (
	"bytes"
	"context"
	"os"
	"testing"

	"kbase"
	main "kbase/cmd/kbased"
	"kbase/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists articles sorted by identifier", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps()
		deps.Articles = &mock.ArticleService{
			FindArticlesFn: func(ctx context.Context, filter kbase.ArticleFilter) ([]*kbase.Article, error) {
				assert.Equal(t, kbase.SortByID, filter.SortBy)
				return []*kbase.Article{
					{ID: "KB-000001", Title: "Backups", Summary: "Nightly backups"},
					{ID: "KB-000002", Title: "Restores", Summary: "Restore drill"},
				}, nil
			},
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "KB-000001")
		assert.Contains(t, stdout.String(), "Backups")
		assert.Empty(t, stderr.String())
	})

	t.Run("prints a hint when no articles exist", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Articles = &mock.ArticleService{
			FindArticlesFn: func(ctx context.Context, filter kbase.ArticleFilter) ([]*kbase.Article, error) {
				return nil, nil
			},
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No articles found")
	})

	t.Run("passes status and category filters through", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps()
		deps.Articles = &mock.ArticleService{
			FindArticlesFn: func(ctx context.Context, filter kbase.ArticleFilter) ([]*kbase.Article, error) {
				require.NotNil(t, filter.Status)
				assert.Equal(t, "draft", *filter.Status)
				require.NotNil(t, filter.Category)
				assert.Equal(t, "Ops", *filter.Category)
				return nil, nil
			},
		}

		cmd := &main.ListCmd{Status: "draft", Category: "Ops"}
		err := cmd.Run(deps)

		require.NoError(t, err)
	})
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints matches", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Articles = &mock.ArticleService{
			SearchArticlesFn: func(ctx context.Context, query string, limit int) ([]*kbase.Article, error) {
				assert.Equal(t, "backup", query)
				assert.Equal(t, 10, limit)
				return []*kbase.Article{{ID: "KB-000001", Title: "Backups"}}, nil
			},
		}

		cmd := &main.SearchCmd{Query: "backup", Limit: 10}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "KB-000001")
	})

	t.Run("reports when nothing matches", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Articles = &mock.ArticleService{
			SearchArticlesFn: func(ctx context.Context, query string, limit int) ([]*kbase.Article, error) {
				return nil, nil
			},
		}

		cmd := &main.SearchCmd{Query: "nothing", Limit: 50}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `No articles match "nothing"`)
	})
}

func TestGetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the article", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Articles = &mock.ArticleService{
			FindArticleByIDFn: func(ctx context.Context, id string) (*kbase.Article, error) {
				return &kbase.Article{
					ID:       id,
					Title:    "Backups",
					Content:  "run backup.sh nightly",
					Status:   kbase.StatusPublished,
					Category: "Ops",
					Tags:     []string{"backup", "cron"},
				}, nil
			},
		}

		cmd := &main.GetCmd{ID: "KB-000001"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "KB-000001  Backups")
		assert.Contains(t, output, "tags: backup, cron")
		assert.Contains(t, output, "run backup.sh nightly")
	})

	t.Run("surfaces not found errors", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Articles = &mock.ArticleService{
			FindArticleByIDFn: func(ctx context.Context, id string) (*kbase.Article, error) {
				return nil, kbase.Errorf(kbase.ENOTFOUND, "article %q not found", id)
			},
		}

		cmd := &main.GetCmd{ID: "KB-999999"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "not found")
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		deleted := false
		deps, _, stderr := newDeps()
		deps.Articles = &mock.ArticleService{
			DeleteArticleFn: func(ctx context.Context, id string) error {
				deleted = true
				return nil
			},
		}

		cmd := &main.DeleteCmd{ID: "KB-000001"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, kbase.EINVALID, kbase.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
		assert.False(t, deleted)
	})

	t.Run("deletes with --force", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Articles = &mock.ArticleService{
			DeleteArticleFn: func(ctx context.Context, id string) error {
				assert.Equal(t, "KB-000001", id)
				return nil
			},
		}

		cmd := &main.DeleteCmd{ID: "KB-000001", Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Deleted KB-000001")
	})
}

func TestImportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reads the file and reports the identifier range", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := dir + "/batch.txt"
		require.NoError(t, writeFile(path, "Task type: A\nbody1\nTask type: B\nbody2"))

		deps, stdout, _ := newDeps()
		deps.Importer = &mock.Importer{
			ImportTextFn: func(ctx context.Context, req kbase.ImportRequest) (*kbase.ImportResult, error) {
				assert.Equal(t, "Task type", req.Marker)
				assert.Contains(t, req.Text, "body1")
				return &kbase.ImportResult{Created: 2, FirstID: "KB-000001", LastID: "KB-000002"}, nil
			},
		}

		cmd := &main.ImportCmd{File: path, Marker: "Task type"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Created 2 articles (KB-000001 through KB-000002)")
	})

	t.Run("reports skipped duplicates", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := dir + "/batch.txt"
		require.NoError(t, writeFile(path, "1. A\nbody"))

		deps, stdout, _ := newDeps()
		deps.Importer = &mock.Importer{
			ImportTextFn: func(ctx context.Context, req kbase.ImportRequest) (*kbase.ImportResult, error) {
				return &kbase.ImportResult{Created: 1, FirstID: "KB-000001", LastID: "KB-000001", Skipped: 2}, nil
			},
		}

		cmd := &main.ImportCmd{File: path}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Created KB-000001")
		assert.Contains(t, stdout.String(), "Skipped 2 duplicate sections")
	})
}
