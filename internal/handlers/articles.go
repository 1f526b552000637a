package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/halcyon-ai/halcyon/internal/db"
	"github.com/halcyon-ai/halcyon/internal/models"
	"github.com/halcyon-ai/halcyon/internal/sanitize"
)

const defaultPageSize = 12

type ArticlesHandler struct {
	store  *db.Store
	logger *slog.Logger
}

func NewArticlesHandler(store *db.Store, logger *slog.Logger) *ArticlesHandler {
	return &ArticlesHandler{store: store, logger: logger}
}

type ArticlesResponse struct {
	Articles   []models.ArticleSummary `json:"articles"`
	Total      int                     `json:"total"`
	Page       int                     `json:"page"`
	TotalPages int                     `json:"total_pages"`
}

// List serves the public paginated article feed with optional search.
func (h *ArticlesHandler) List(w http.ResponseWriter, r *http.Request) {
	page := parsePositiveInt(r.URL.Query().Get("page"), 1)
	limit := parsePositiveInt(r.URL.Query().Get("limit"), defaultPageSize)
	if limit > 100 {
		limit = 100
	}
	// Never trust client sanitization alone.
	search := sanitize.Text(r.URL.Query().Get("search"))
	offset := (page - 1) * limit

	articles, total, err := h.store.ListArticles(r.Context(), limit, offset, search)
	if err != nil {
		h.logger.Error("list articles failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load articles")
		return
	}

	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	respondJSON(w, http.StatusOK, ArticlesResponse{
		Articles:   articles,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	})
}

func parsePositiveInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
