package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"kbase"
	kbslog "kbase/slog"
	"kbase/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingArticleService_SearchArticles(t *testing.T) {
	t.Parallel()

	t.Run("logs query with result count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticleService{
			SearchArticlesFn: func(ctx context.Context, query string, limit int) ([]*kbase.Article, error) {
				return []*kbase.Article{{ID: "KB-000001", Title: "Setup"}}, nil
			},
		}

		svc := kbslog.NewLoggingArticleService(inner, logger)
		articles, err := svc.SearchArticles(context.Background(), "setup", 10)

		require.NoError(t, err)
		assert.Len(t, articles, 1)
		output := buf.String()
		assert.Contains(t, output, "search")
		assert.Contains(t, output, "query=setup")
		assert.Contains(t, output, "results=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs errors at error level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticleService{
			CreateArticleFn: func(ctx context.Context, article *kbase.Article) error {
				return kbase.Errorf(kbase.ECONFLICT, "article %q already exists", article.ID)
			},
		}

		svc := kbslog.NewLoggingArticleService(inner, logger)
		err := svc.CreateArticle(context.Background(), &kbase.Article{ID: "KB-000001", Title: "Setup"})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "already exists")
	})

	t.Run("logs bulk insert counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticleService{
			BulkInsertArticlesFn: func(ctx context.Context, articles []*kbase.Article, allowPartial bool) (*kbase.BulkInsertResult, error) {
				return &kbase.BulkInsertResult{Inserted: 2, Duplicates: []string{"KB-000003"}}, nil
			},
		}

		svc := kbslog.NewLoggingArticleService(inner, logger)
		_, err := svc.BulkInsertArticles(context.Background(), make([]*kbase.Article, 3), true)

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "batch=3")
		assert.Contains(t, output, "inserted=2")
		assert.Contains(t, output, "duplicates=1")
	})

	t.Run("reads pass through without logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticleService{
			FindArticleByIDFn: func(ctx context.Context, id string) (*kbase.Article, error) {
				return &kbase.Article{ID: id, Title: "Setup"}, nil
			},
		}

		svc := kbslog.NewLoggingArticleService(inner, logger)
		article, err := svc.FindArticleByID(context.Background(), "KB-000001")

		require.NoError(t, err)
		assert.Equal(t, "KB-000001", article.ID)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingImporter_ImportText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Importer{
		ImportTextFn: func(ctx context.Context, req kbase.ImportRequest) (*kbase.ImportResult, error) {
			return &kbase.ImportResult{Created: 3, Skipped: 1}, nil
		},
	}

	importer := kbslog.NewLoggingImporter(inner, logger)
	result, err := importer.ImportText(context.Background(), kbase.ImportRequest{Text: "x"})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Created)
	output := buf.String()
	assert.Contains(t, output, "import text")
	assert.Contains(t, output, "created=3")
	assert.Contains(t, output, "skipped=1")
}
