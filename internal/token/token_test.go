package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("test-secret")

	signed, err := issuer.Issue("user-1", RealmUser, false)
	require.NoError(t, err)

	claims, err := issuer.Verify(signed, RealmUser)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, RealmUser, claims.Realm)
	assert.False(t, claims.PasswordChangeDue)
}

func TestVerifyRejectsWrongRealm(t *testing.T) {
	issuer := NewIssuer("test-secret")

	signed, err := issuer.Issue("user-1", RealmUser, false)
	require.NoError(t, err)

	_, err = issuer.Verify(signed, RealmAdmin)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewIssuer("secret-a").Issue("admin-1", RealmAdmin, false)
	require.NoError(t, err)

	_, err = NewIssuer("secret-b").Verify(signed, RealmAdmin)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestAdminTokenCarriesRotationFlag(t *testing.T) {
	issuer := NewIssuer("test-secret")

	signed, err := issuer.Issue("admin-1", RealmAdmin, true)
	require.NoError(t, err)

	claims, err := issuer.Verify(signed, RealmAdmin)
	require.NoError(t, err)
	assert.True(t, claims.PasswordChangeDue)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewIssuer("test-secret").Verify("not-a-token", RealmUser)
	assert.ErrorIs(t, err, ErrInvalid)
}
