package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/halcyon-ai/halcyon/internal/db"
	"github.com/halcyon-ai/halcyon/internal/middleware"
	"github.com/halcyon-ai/halcyon/internal/models"
	"github.com/halcyon-ai/halcyon/internal/token"
)

const minAdminPasswordLen = 8

// AdminHandler serves the executive console: login with mandatory
// first-use password rotation, dashboard data and article CRUD.
type AdminHandler struct {
	store  *db.Store
	issuer *token.Issuer
	logger *slog.Logger
}

func NewAdminHandler(store *db.Store, issuer *token.Issuer, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{store: store, issuer: issuer, logger: logger}
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Token                  string `json:"token"`
	RequiresPasswordChange bool   `json:"requires_password_change"`
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if !decodeValid(w, r, &req) {
		return
	}

	admin, err := h.store.GetAdminByUsername(r.Context(), req.Username)
	if err != nil {
		h.logger.Error("admin login lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "db error")
		return
	}
	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	signed, err := h.issuer.Issue(admin.ID, token.RealmAdmin, admin.MustChangePassword)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "token error")
		return
	}
	respondJSON(w, http.StatusOK, AdminLoginResponse{
		Token:                  signed,
		RequiresPasswordChange: admin.MustChangePassword,
	})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// ChangePassword rotates the admin credential. The issued token stays
// valid afterwards; only the pwc claim becomes stale, and the rotation
// gate reads the database, not the claim, once the flag is cleared.
func (h *AdminHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req ChangePasswordRequest
	if !decodeValid(w, r, &req) {
		return
	}
	if len(req.NewPassword) < minAdminPasswordLen {
		respondError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	admin, err := h.store.GetAdminByID(r.Context(), claims.Subject)
	if err != nil {
		h.logger.Error("admin lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "db error")
		return
	}
	if admin == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)) != nil {
		respondError(w, http.StatusBadRequest, "Current password is incorrect")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to change password")
		return
	}
	if err := h.store.UpdateAdminPassword(r.Context(), admin.ID, string(hash)); err != nil {
		h.logger.Error("password update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to change password")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Password changed successfully"})
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats(r.Context())
	if err != nil {
		h.logger.Error("stats failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("list users failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load users")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.store.ListContacts(r.Context())
	if err != nil {
		h.logger.Error("list contacts failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load contacts")
		return
	}
	respondJSON(w, http.StatusOK, contacts)
}

func (h *AdminHandler) Inquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.store.ListInquiries(r.Context())
	if err != nil {
		h.logger.Error("list inquiries failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load inquiries")
		return
	}
	respondJSON(w, http.StatusOK, inquiries)
}

func (h *AdminHandler) Articles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.store.ListArticlesFull(r.Context())
	if err != nil {
		h.logger.Error("list articles failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load articles")
		return
	}
	respondJSON(w, http.StatusOK, articles)
}

type ArticleRequest struct {
	Title    string `json:"title" validate:"required"`
	Excerpt  string `json:"excerpt" validate:"required"`
	Category string `json:"category" validate:"required"`
	Content  string `json:"content"`
}

func (h *AdminHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req ArticleRequest
	if !decodeValid(w, r, &req) {
		return
	}
	created, err := h.store.CreateArticle(r.Context(), models.Article{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Category: req.Category,
		Content:  req.Content,
	})
	if err != nil {
		h.logger.Error("create article failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create article")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *AdminHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req ArticleRequest
	if !decodeValid(w, r, &req) {
		return
	}
	updated, err := h.store.UpdateArticle(r.Context(), id, models.Article{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Category: req.Category,
		Content:  req.Content,
	})
	if err != nil {
		h.logger.Error("update article failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to update article")
		return
	}
	if updated == nil {
		respondError(w, http.StatusNotFound, "article not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := h.store.DeleteArticle(r.Context(), id)
	if err != nil {
		h.logger.Error("delete article failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to delete article")
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "article not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Article deleted"})
}
