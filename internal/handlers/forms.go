package handlers

import (
	"log/slog"
	"net/http"

	"github.com/halcyon-ai/halcyon/internal/db"
	"github.com/halcyon-ai/halcyon/internal/models"
)

// FormsHandler accepts the public contact and investor-inquiry
// submissions.
type FormsHandler struct {
	store  *db.Store
	logger *slog.Logger
}

func NewFormsHandler(store *db.Store, logger *slog.Logger) *FormsHandler {
	return &FormsHandler{store: store, logger: logger}
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type InquiryRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Company         string `json:"company"`
	InvestmentRange string `json:"investment_range"`
	Message         string `json:"message"`
}

func (h *FormsHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !decodeValid(w, r, &req) {
		return
	}
	_, err := h.store.CreateContact(r.Context(), models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.logger.Error("store contact failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to submit contact form")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Contact form submitted successfully"})
}

func (h *FormsHandler) InvestorInquiry(w http.ResponseWriter, r *http.Request) {
	var req InquiryRequest
	if !decodeValid(w, r, &req) {
		return
	}
	_, err := h.store.CreateInquiry(r.Context(), models.InvestorInquiry{
		Name:            req.Name,
		Email:           req.Email,
		Company:         req.Company,
		InvestmentRange: req.InvestmentRange,
		Message:         req.Message,
	})
	if err != nil {
		h.logger.Error("store inquiry failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to submit inquiry")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Investor inquiry submitted successfully"})
}
