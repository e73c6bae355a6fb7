package mock

import (
	"context"

	"kbase"
)

var _ kbase.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of kbase.ArticleService.
type ArticleService struct {
	CreateArticleFn      func(ctx context.Context, article *kbase.Article) error
	FindArticleByIDFn    func(ctx context.Context, id string) (*kbase.Article, error)
	FindArticlesFn       func(ctx context.Context, filter kbase.ArticleFilter) ([]*kbase.Article, error)
	UpdateArticleFn      func(ctx context.Context, id string, upd kbase.ArticleUpdate) (*kbase.Article, error)
	DeleteArticleFn      func(ctx context.Context, id string) error
	BulkInsertArticlesFn func(ctx context.Context, articles []*kbase.Article, allowPartial bool) (*kbase.BulkInsertResult, error)
	SearchArticlesFn     func(ctx context.Context, query string, limit int) ([]*kbase.Article, error)
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *kbase.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*kbase.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter kbase.ArticleFilter) ([]*kbase.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) UpdateArticle(ctx context.Context, id string, upd kbase.ArticleUpdate) (*kbase.Article, error) {
	return s.UpdateArticleFn(ctx, id, upd)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}

func (s *ArticleService) BulkInsertArticles(ctx context.Context, articles []*kbase.Article, allowPartial bool) (*kbase.BulkInsertResult, error) {
	return s.BulkInsertArticlesFn(ctx, articles, allowPartial)
}

func (s *ArticleService) SearchArticles(ctx context.Context, query string, limit int) ([]*kbase.Article, error) {
	return s.SearchArticlesFn(ctx, query, limit)
}
