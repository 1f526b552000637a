package client

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

func TestStateDerivation(t *testing.T) {
	store := NewSessionStore(t.TempDir(), RealmAdmin)

	assert.Equal(t, Anonymous, store.State())

	require.NoError(t, store.Save(Session{Token: "tok", RequiresPasswordChange: true}))
	assert.Equal(t, AuthenticatedPendingRotation, store.State())

	require.NoError(t, store.Save(Session{Token: "tok"}))
	assert.Equal(t, Authenticated, store.State())

	store.Clear()
	assert.Equal(t, Anonymous, store.State())
}

func TestRequireDecisions(t *testing.T) {
	assert.Equal(t, RedirectLogin, Require(Anonymous))
	assert.Equal(t, RedirectChangePassword, Require(AuthenticatedPendingRotation))
	assert.Equal(t, Proceed, Require(Authenticated))
}

func TestRequireForPasswordChangeDecisions(t *testing.T) {
	assert.Equal(t, RedirectLogin, RequireForPasswordChange(Anonymous))
	assert.Equal(t, Proceed, RequireForPasswordChange(AuthenticatedPendingRotation))
	assert.Equal(t, Proceed, RequireForPasswordChange(Authenticated))
}

// The rotation state survives a restart because it is persisted next to
// the token, not threaded through from the login response.
func TestPendingRotationSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewSessionStore(dir, RealmAdmin).Save(Session{
		Token:                  "tok",
		RequiresPasswordChange: true,
	}))

	reopened := NewSessionStore(dir, RealmAdmin)
	assert.Equal(t, AuthenticatedPendingRotation, reopened.State())
	assert.Equal(t, RedirectChangePassword, Require(reopened.State()))
}
