package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kbase"
)

// listResponse wraps collection replies.
type listResponse struct {
	Items []*kbase.Article `json:"items"`
}

// handleSearchArticles handles GET /api/articles?q=...
func (s *Server) handleSearchArticles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := kbase.DefaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.writeError(w, r, kbase.Errorf(kbase.EINVALID, "invalid limit %q", raw))
			return
		}
		limit = n
	}

	articles, err := s.Articles.SearchArticles(r.Context(), query, limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if articles == nil {
		articles = []*kbase.Article{}
	}
	writeJSON(w, http.StatusOK, listResponse{Items: articles})
}

// handleListArticles handles GET /api/articles/all.
func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	filter := kbase.ArticleFilter{SortBy: kbase.SortByID}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}

	articles, err := s.Articles.FindArticles(r.Context(), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if articles == nil {
		articles = []*kbase.Article{}
	}
	writeJSON(w, http.StatusOK, listResponse{Items: articles})
}

// handleGetArticle handles GET /api/articles/{id}.
func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	article, err := s.Articles.FindArticleByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// handleCreateArticle handles POST /api/articles.
func (s *Server) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var article kbase.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		s.writeError(w, r, kbase.Errorf(kbase.EINVALID, "invalid JSON body"))
		return
	}

	if err := s.Articles.CreateArticle(r.Context(), &article); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, &article)
}

// handleUpdateArticle handles PATCH /api/articles/{id}. An id field in
// the body is ignored: identifiers are immutable.
func (s *Server) handleUpdateArticle(w http.ResponseWriter, r *http.Request) {
	var upd kbase.ArticleUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		s.writeError(w, r, kbase.Errorf(kbase.EINVALID, "invalid JSON body"))
		return
	}

	article, err := s.Articles.UpdateArticle(r.Context(), r.PathValue("id"), upd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// handleDeleteArticle handles DELETE /api/articles/{id}.
func (s *Server) handleDeleteArticle(w http.ResponseWriter, r *http.Request) {
	if err := s.Articles.DeleteArticle(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleBulkInsert handles POST /api/articles/bulk.
func (s *Server) handleBulkInsert(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Articles     []*kbase.Article `json:"articles"`
		AllowPartial bool             `json:"allowPartial"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, r, kbase.Errorf(kbase.EINVALID, "invalid JSON body"))
		return
	}

	result, err := s.Articles.BulkInsertArticles(r.Context(), body.Articles, body.AllowPartial)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
