package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"kbase"

	"github.com/cespare/xxhash/v2"
)

// Compile-time interface verification.
var _ kbase.ArticleService = (*ArticleService)(nil)

// articleColumns is the canonical column list shared by all article queries.
const articleColumns = "id, title, summary, content, tags, status, category, content_hash, created_at, updated_at"

// ArticleService implements kbase.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateArticle creates a new article.
// Returns ECONFLICT if the identifier already exists; the existing
// article is left unchanged.
func (s *ArticleService) CreateArticle(ctx context.Context, article *kbase.Article) error {
	article.Normalize()
	if err := article.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	article.CreatedAt = now
	article.UpdatedAt = now
	article.ContentHash = hashContent(article.Content)

	return s.insertArticle(ctx, article)
}

// insertArticle writes a single row, classifying primary-key collisions
// as ECONFLICT.
func (s *ArticleService) insertArticle(ctx context.Context, article *kbase.Article) error {
	tags, err := marshalTags(article.Tags)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO articles (id, title, summary, content, tags, status, category, content_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.Title, article.Summary, article.Content, tags, article.Status, article.Category,
		article.ContentHash, article.CreatedAt.Format(time.RFC3339), article.UpdatedAt.Format(time.RFC3339))

	if isUniqueConstraintErr(err) {
		return kbase.Errorf(kbase.ECONFLICT, "article %q already exists", article.ID)
	}
	return err
}

// FindArticleByID retrieves an article by identifier.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*kbase.Article, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+articleColumns+" FROM articles WHERE id = ?", id)

	article, err := scanArticle(row.Scan)
	if err == sql.ErrNoRows {
		return nil, kbase.Errorf(kbase.ENOTFOUND, "article %q not found", id)
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// FindArticles retrieves articles matching the filter.
func (s *ArticleService) FindArticles(ctx context.Context, filter kbase.ArticleFilter) ([]*kbase.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + articleColumns + " FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}

	switch filter.SortBy {
	case kbase.SortByID:
		query.WriteString(" ORDER BY id ASC")
	default:
		query.WriteString(" ORDER BY updated_at DESC, id ASC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectArticles(rows)
}

// UpdateArticle updates an existing article. The identifier column is
// never part of the update set, so the stored identifier cannot change
// regardless of caller input.
func (s *ArticleService) UpdateArticle(ctx context.Context, id string, upd kbase.ArticleUpdate) (*kbase.Article, error) {
	article, err := s.FindArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		article.Title = *upd.Title
	}
	if upd.Summary != nil {
		article.Summary = *upd.Summary
	}
	if upd.Content != nil {
		article.Content = *upd.Content
		article.ContentHash = hashContent(article.Content)
	}
	if upd.Tags != nil {
		article.Tags = *upd.Tags
	}
	if upd.Status != nil {
		article.Status = *upd.Status
	}
	if upd.Category != nil {
		article.Category = *upd.Category
	}

	article.Normalize()
	if err := article.Validate(); err != nil {
		return nil, err
	}
	article.UpdatedAt = time.Now().UTC()

	tags, err := marshalTags(article.Tags)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE articles
		SET title = ?, summary = ?, content = ?, tags = ?, status = ?, category = ?, content_hash = ?, updated_at = ?
		WHERE id = ?
	`, article.Title, article.Summary, article.Content, tags, article.Status, article.Category,
		article.ContentHash, article.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}
	return article, nil
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return kbase.Errorf(kbase.ENOTFOUND, "article %q not found", id)
	}
	return nil
}

// BulkInsertArticles inserts a batch of articles. Identifier collisions
// are reported per item; with allowPartial the batch continues past them,
// so one bad identifier cannot discard the rest of a large import.
// Already-inserted articles remain durable either way.
func (s *ArticleService) BulkInsertArticles(ctx context.Context, articles []*kbase.Article, allowPartial bool) (*kbase.BulkInsertResult, error) {
	if len(articles) == 0 {
		return nil, kbase.Errorf(kbase.EINVALID, "bulk insert requires at least one article")
	}

	result := &kbase.BulkInsertResult{}
	now := time.Now().UTC()

	for _, article := range articles {
		article.Normalize()
		if err := article.Validate(); err != nil {
			return result, err
		}
		article.CreatedAt = now
		article.UpdatedAt = now
		article.ContentHash = hashContent(article.Content)

		err := s.insertArticle(ctx, article)
		if kbase.ErrorCode(err) == kbase.ECONFLICT {
			result.Duplicates = append(result.Duplicates, article.ID)
			if !allowPartial {
				return result, err
			}
			continue
		}
		if err != nil {
			return result, err
		}

		result.Inserted++
		if result.FirstID == "" {
			result.FirstID = article.ID
		}
		result.LastID = article.ID
	}

	return result, nil
}

// SearchArticles resolves a query into a ranked result set.
//
// Ranking is a two-tier total order: articles whose identifier contains
// the query (case-insensitive) form a strictly higher tier than text
// relevance matches, ordered by updated_at descending then id. The
// relevance tier below it orders by bm25 score (best first), then
// updated_at descending, then id. The order is total and reproducible
// for equal inputs. Only published articles are eligible.
func (s *ArticleService) SearchArticles(ctx context.Context, query string, limit int) ([]*kbase.Article, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*kbase.Article{}, nil
	}
	if limit <= 0 {
		limit = kbase.DefaultSearchLimit
	}

	results := make([]*kbase.Article, 0, limit)
	seen := make(map[string]struct{})

	// Tier 1: identifier pattern matches. These carry no computed
	// relevance score and are treated as maximally relevant.
	idRows, err := s.db.QueryContext(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE status = ? AND id LIKE ? ESCAPE '\'
		ORDER BY updated_at DESC, id ASC
		LIMIT ?
	`, kbase.StatusPublished, "%"+escapeLike(query)+"%", limit)
	if err != nil {
		return nil, err
	}
	idMatches, err := collectArticles(idRows)
	idRows.Close()
	if err != nil {
		return nil, err
	}
	for _, a := range idMatches {
		results = append(results, a)
		seen[a.ID] = struct{}{}
	}

	if len(results) >= limit {
		return results[:limit], nil
	}

	// Tier 2: text relevance over the FTS index.
	match := ftsMatchExpr(query)
	ftsRows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.title, a.summary, a.content, a.tags, a.status, a.category, a.content_hash, a.created_at, a.updated_at
		FROM articles a
		JOIN articles_fts ON a.rowid = articles_fts.rowid
		WHERE articles_fts MATCH ? AND a.status = ?
		ORDER BY bm25(articles_fts), a.updated_at DESC, a.id ASC
		LIMIT ?
	`, match, kbase.StatusPublished, limit)
	if err != nil {
		return nil, err
	}
	ftsMatches, err := collectArticles(ftsRows)
	ftsRows.Close()
	if err != nil {
		return nil, err
	}
	for _, a := range ftsMatches {
		if _, ok := seen[a.ID]; ok {
			continue
		}
		results = append(results, a)
		if len(results) >= limit {
			break
		}
	}

	return results, nil
}

// marshalTags encodes tags as a JSON array. The FTS index tokenizes the
// JSON text, so tag words remain searchable.
func marshalTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(b), nil
}

// scanArticle reads one article row using the articleColumns order.
func scanArticle(scan func(dest ...any) error) (*kbase.Article, error) {
	var article kbase.Article
	var tags, createdAt, updatedAt string

	if err := scan(&article.ID, &article.Title, &article.Summary, &article.Content, &tags,
		&article.Status, &article.Category, &article.ContentHash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tags), &article.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}

	var err error
	if article.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if article.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &article, nil
}

// collectArticles drains rows into a slice.
func collectArticles(rows *sql.Rows) ([]*kbase.Article, error) {
	var articles []*kbase.Article
	for rows.Next() {
		article, err := scanArticle(rows.Scan)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}
