package kbase

import (
	"context"
	"time"
)

// Article statuses. Only published articles are eligible for search.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// DefaultCategory is assigned to articles created without a category.
const DefaultCategory = "General"

// Article represents a single knowledge-base entry. The identifier is
// human readable (e.g. "KB-001001"), globally unique, and immutable once
// assigned.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags"`
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.ID == "" {
		return Errorf(EINVALID, "article identifier required")
	}
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.Status != "" && a.Status != StatusPublished && a.Status != StatusDraft {
		return Errorf(EINVALID, "article status must be %q or %q", StatusPublished, StatusDraft)
	}
	return nil
}

// Normalize fills defaulted fields and removes duplicate tags while
// preserving their order. The summary, if absent, is derived from content.
func (a *Article) Normalize() {
	if a.Status == "" {
		a.Status = StatusPublished
	}
	if a.Category == "" {
		a.Category = DefaultCategory
	}
	if a.Summary == "" {
		a.Summary = Summarize(a.Content)
	}
	a.Tags = dedupeTags(a.Tags)
}

func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// SortOrder represents the sort order for article queries.
type SortOrder string

// SortOrder constants for ArticleFilter.
const (
	SortByID        SortOrder = "id"
	SortByUpdatedAt SortOrder = "updated_at"
)

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID       *string `json:"id"`
	Status   *string `json:"status"`
	Category *string `json:"category"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// ArticleUpdate represents fields that can be updated on an article.
// The identifier is deliberately absent: it is immutable once assigned
// and the store never writes it on update, regardless of caller input.
type ArticleUpdate struct {
	Title    *string   `json:"title"`
	Summary  *string   `json:"summary"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	Status   *string   `json:"status"`
	Category *string   `json:"category"`
}

// BulkInsertResult reports the outcome of a bulk insert.
type BulkInsertResult struct {
	// Number of articles durably inserted.
	Inserted int `json:"inserted"`

	// Identifiers that collided with existing articles and were skipped.
	Duplicates []string `json:"duplicates,omitempty"`

	// First and last successfully inserted identifiers, in batch order.
	FirstID string `json:"firstId,omitempty"`
	LastID  string `json:"lastId,omitempty"`
}

// DefaultSearchLimit caps search results when the caller does not supply
// a limit.
const DefaultSearchLimit = 50

// ArticleService represents a service for managing articles and their
// text index.
type ArticleService interface {
	// CreateArticle creates a new article.
	// Returns ECONFLICT if the identifier already exists.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by identifier.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// UpdateArticle updates an existing article. The identifier cannot
	// be changed. Returns ENOTFOUND if the article does not exist.
	UpdateArticle(ctx context.Context, id string, upd ArticleUpdate) (*Article, error)

	// DeleteArticle permanently removes an article.
	// Returns ENOTFOUND if the article does not exist.
	DeleteArticle(ctx context.Context, id string) error

	// BulkInsertArticles inserts a batch of articles. With allowPartial,
	// identifier collisions are skipped and reported in the result
	// instead of aborting the batch; without it the first collision
	// stops the batch (already-inserted articles remain).
	BulkInsertArticles(ctx context.Context, articles []*Article, allowPartial bool) (*BulkInsertResult, error)

	// SearchArticles resolves a free-text query plus an identifier
	// pattern shortcut into a ranked result set of published articles.
	// A blank query returns an empty result set.
	SearchArticles(ctx context.Context, query string, limit int) ([]*Article, error)
}
