package handlers

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/halcyon-ai/halcyon/internal/db"
	"github.com/halcyon-ai/halcyon/internal/middleware"
	"github.com/halcyon-ai/halcyon/internal/models"
	"github.com/halcyon-ai/halcyon/internal/token"
)

type AuthHandler struct {
	store  *db.Store
	issuer *token.Issuer
	logger *slog.Logger
}

func NewAuthHandler(store *db.Store, issuer *token.Issuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{store: store, issuer: issuer, logger: logger}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeValid(w, r, &req) {
		return
	}

	existing, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		h.logger.Error("register lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "db error")
		return
	}
	if existing != nil {
		respondError(w, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	created, err := h.store.CreateUser(r.Context(), models.User{
		Name:         req.Name,
		Email:        req.Email,
		Country:      req.Country,
		PasswordHash: string(hash),
	})
	if err != nil {
		h.logger.Error("create user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	signed, err := h.issuer.Issue(created.ID, token.RealmUser, false)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "token error")
		return
	}
	respondJSON(w, http.StatusOK, AuthResponse{Token: signed, User: created})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeValid(w, r, &req) {
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		h.logger.Error("login lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "db error")
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	signed, err := h.issuer.Issue(user.ID, token.RealmUser, false)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "token error")
		return
	}
	respondJSON(w, http.StatusOK, AuthResponse{Token: signed, User: user})
}

// Me returns the profile for the bearer token's subject.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := h.store.GetUserByID(r.Context(), claims.Subject)
	if err != nil {
		h.logger.Error("me lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "db error")
		return
	}
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	respondJSON(w, http.StatusOK, user)
}
