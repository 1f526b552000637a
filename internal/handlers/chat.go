package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/halcyon-ai/halcyon/internal/db"
	"github.com/halcyon-ai/halcyon/internal/middleware"
	"github.com/halcyon-ai/halcyon/internal/models"
)

type ChatHandler struct {
	store  *db.Store
	logger *slog.Logger
}

func NewChatHandler(store *db.Store, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{store: store, logger: logger}
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// Handle answers a chat message with the placeholder reply and records
// the exchange. The model integration sits behind this endpoint later;
// the log row is what the analytics dashboard counts.
func (h *ChatHandler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req ChatRequest
	if !decodeValid(w, r, &req) {
		return
	}

	reply := fmt.Sprintf(
		"This is a placeholder response. The Halcyon backend is ready for your model integration. Your message was: '%s'",
		req.Message,
	)

	err := h.store.CreateChatLog(r.Context(), models.ChatLog{
		UserID:   claims.Subject,
		Realm:    claims.Realm,
		Message:  req.Message,
		Response: reply,
	})
	if err != nil {
		// Chat still works when analytics logging fails.
		h.logger.Error("chat log failed", "error", err)
	}

	respondJSON(w, http.StatusOK, ChatResponse{Response: reply})
}
