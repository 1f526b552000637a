package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, t.TempDir(), nil), srv
}

func TestAdminLoginRotationRequiredRoutesToChangePassword(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "root", body["username"])
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":                    "fresh-token",
			"requires_password_change": true,
		})
	}))

	next, err := c.AdminLogin(context.Background(), "root", "initial-pw")
	require.NoError(t, err)
	assert.Equal(t, RedirectChangePassword, next)

	// Token stored before the destination is evaluated.
	assert.Equal(t, "fresh-token", c.AdminSession().Token())
	assert.Equal(t, AuthenticatedPendingRotation, c.AdminSession().State())
}

func TestAdminLoginNoRotationGoesToDashboard(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":                    "tok",
			"requires_password_change": false,
		})
	}))

	next, err := c.AdminLogin(context.Background(), "root", "pw")
	require.NoError(t, err)
	assert.Equal(t, Proceed, next)
	assert.Equal(t, Authenticated, c.AdminSession().State())
}

func TestAdminLoginFailureStoresNothing(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
	}))

	next, err := c.AdminLogin(context.Background(), "root", "wrong")
	assert.Equal(t, RedirectLogin, next)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.Empty(t, c.AdminSession().Token())
}

func TestAdminLoginFailureWithoutServerMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.AdminLogin(context.Background(), "root", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestChangePasswordMismatchIssuesNoRequest(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	err := c.AdminChangePassword(context.Background(), "cur", "new-password", "other-password")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Zero(t, calls.Load())
}

func TestChangePasswordTooShortIssuesNoRequest(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	// Matching but short: mismatch check passes, length check fires.
	err := c.AdminChangePassword(context.Background(), "cur", "short", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
	assert.Zero(t, calls.Load())
}

func TestChangePasswordSuccessClearsRotationFlag(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cur", body["current_password"])
		assert.Equal(t, "new-password", body["new_password"])
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	require.NoError(t, c.AdminSession().Save(Session{Token: "tok", RequiresPasswordChange: true}))

	err := c.AdminChangePassword(context.Background(), "cur", "new-password", "new-password")
	require.NoError(t, err)
	assert.Equal(t, Authenticated, c.AdminSession().State())
	assert.Equal(t, "tok", c.AdminSession().Token())
}

func TestChangePasswordServerFailureKeepsPendingState(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Current password is incorrect"})
	}))
	require.NoError(t, c.AdminSession().Save(Session{Token: "tok", RequiresPasswordChange: true}))

	err := c.AdminChangePassword(context.Background(), "bad", "new-password", "new-password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Current password is incorrect")
	assert.Equal(t, AuthenticatedPendingRotation, c.AdminSession().State())
}

func TestUnauthorizedResponseClearsOnlyThatRealm(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	require.NoError(t, c.AdminSession().Save(Session{Token: "admin-tok"}))
	require.NoError(t, c.UserSession().Save(Session{Token: "user-tok"}))

	_, err := c.AdminStats(context.Background())
	require.True(t, IsStatus(err, http.StatusUnauthorized))

	assert.Equal(t, Anonymous, c.AdminSession().State())
	assert.Equal(t, RedirectLogin, Require(c.AdminSession().State()))
	assert.Equal(t, "user-tok", c.UserSession().Token())
}

func TestAdminLogoutLeavesUserRealm(t *testing.T) {
	c, _ := newTestClient(t, http.NotFoundHandler())
	require.NoError(t, c.AdminSession().Save(Session{Token: "a"}))
	require.NoError(t, c.UserSession().Save(Session{Token: "u"}))

	c.AdminLogout()
	assert.Empty(t, c.AdminSession().Token())
	assert.Equal(t, "u", c.UserSession().Token())
}
