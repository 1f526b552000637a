package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/halcyon-ai/halcyon/internal/token"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// ClaimsFrom returns the verified token claims attached by RequireRealm.
func ClaimsFrom(r *http.Request) (token.Claims, bool) {
	claims, ok := r.Context().Value(claimsContextKey).(token.Claims)
	return claims, ok
}

func denyJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) < 8 || !strings.EqualFold(header[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

// RequireRealm rejects requests without a valid bearer token for the
// given realm and attaches the claims to the request context.
func RequireRealm(issuer *token.Issuer, realm string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				denyJSON(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			claims, err := issuer.Verify(raw, realm)
			if err != nil {
				denyJSON(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BlockPendingRotation refuses admin requests while the account still
// owes a mandatory password change. Mounted on every admin route except
// change-password, so a half-authenticated console cannot reach the
// dashboard by skipping the rotation screen. The check reads current
// state through pending rather than the token's pwc claim: the claim
// goes stale the moment the password is changed.
func BlockPendingRotation(pending func(ctx context.Context, adminID string) (bool, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFrom(r)
			if !ok {
				denyJSON(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			due, err := pending(r.Context(), claims.Subject)
			if err != nil {
				denyJSON(w, http.StatusInternalServerError, "db error")
				return
			}
			if due {
				denyJSON(w, http.StatusForbidden, "password change required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// StaticToken guards operational endpoints with a fixed bearer token.
func StaticToken(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expected == "" || bearerToken(r) != expected {
				denyJSON(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
