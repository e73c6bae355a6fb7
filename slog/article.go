// Package slog provides logging decorators for service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"kbase"
)

// Ensure LoggingArticleService implements kbase.ArticleService.
var _ kbase.ArticleService = (*LoggingArticleService)(nil)

// LoggingArticleService wraps an ArticleService with operation logging.
type LoggingArticleService struct {
	next   kbase.ArticleService
	logger *slog.Logger
}

// NewLoggingArticleService creates a new LoggingArticleService.
func NewLoggingArticleService(next kbase.ArticleService, logger *slog.Logger) *LoggingArticleService {
	return &LoggingArticleService{next: next, logger: logger}
}

func (s *LoggingArticleService) CreateArticle(ctx context.Context, article *kbase.Article) error {
	begin := time.Now()
	err := s.next.CreateArticle(ctx, article)
	s.log(ctx, "create article", err,
		"id", article.ID,
		"duration", time.Since(begin),
	)
	return err
}

func (s *LoggingArticleService) FindArticleByID(ctx context.Context, id string) (*kbase.Article, error) {
	return s.next.FindArticleByID(ctx, id)
}

func (s *LoggingArticleService) FindArticles(ctx context.Context, filter kbase.ArticleFilter) ([]*kbase.Article, error) {
	return s.next.FindArticles(ctx, filter)
}

func (s *LoggingArticleService) UpdateArticle(ctx context.Context, id string, upd kbase.ArticleUpdate) (*kbase.Article, error) {
	begin := time.Now()
	article, err := s.next.UpdateArticle(ctx, id, upd)
	s.log(ctx, "update article", err,
		"id", id,
		"duration", time.Since(begin),
	)
	return article, err
}

func (s *LoggingArticleService) DeleteArticle(ctx context.Context, id string) error {
	begin := time.Now()
	err := s.next.DeleteArticle(ctx, id)
	s.log(ctx, "delete article", err,
		"id", id,
		"duration", time.Since(begin),
	)
	return err
}

func (s *LoggingArticleService) BulkInsertArticles(ctx context.Context, articles []*kbase.Article, allowPartial bool) (*kbase.BulkInsertResult, error) {
	begin := time.Now()
	result, err := s.next.BulkInsertArticles(ctx, articles, allowPartial)
	attrs := []any{
		"batch", len(articles),
		"duration", time.Since(begin),
	}
	if result != nil {
		attrs = append(attrs, "inserted", result.Inserted, "duplicates", len(result.Duplicates))
	}
	s.log(ctx, "bulk insert", err, attrs...)
	return result, err
}

func (s *LoggingArticleService) SearchArticles(ctx context.Context, query string, limit int) ([]*kbase.Article, error) {
	begin := time.Now()
	articles, err := s.next.SearchArticles(ctx, query, limit)
	s.log(ctx, "search", err,
		"query", query,
		"results", len(articles),
		"duration", time.Since(begin),
	)
	return articles, err
}

func (s *LoggingArticleService) log(ctx context.Context, msg string, err error, attrs ...any) {
	if err != nil {
		attrs = append(attrs, "err", err)
		s.logger.ErrorContext(ctx, msg, attrs...)
		return
	}
	s.logger.InfoContext(ctx, msg, attrs...)
}
