// Package token issues and verifies the bearer tokens used by both
// identity realms. Tokens are HS256 JWTs with a 24 hour lifetime; the
// realm claim keeps a user token from opening admin routes and vice
// versa, and admin tokens carry a pwc claim while the account still has
// a pending mandatory password change.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// RealmUser marks tokens for the public site dashboard.
	RealmUser = "user"
	// RealmAdmin marks tokens for the executive console.
	RealmAdmin = "admin"
)

const lifetime = 24 * time.Hour

var ErrInvalid = errors.New("invalid token")

// Claims is the decoded identity carried by a verified token.
type Claims struct {
	Subject           string
	Realm             string
	PasswordChangeDue bool
}

type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Issue signs a token for the given principal. passwordChangeDue is only
// meaningful for the admin realm.
func (i *Issuer) Issue(subject, realm string, passwordChangeDue bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   subject,
		"realm": realm,
		"iat":   now.Unix(),
		"exp":   now.Add(lifetime).Unix(),
	}
	if passwordChangeDue {
		claims["pwc"] = true
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string and checks it belongs to
// the expected realm.
func (i *Issuer) Verify(tokenString, realm string) (Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalid
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalid
	}
	sub, _ := mapClaims["sub"].(string)
	tokenRealm, _ := mapClaims["realm"].(string)
	pwc, _ := mapClaims["pwc"].(bool)
	if sub == "" || tokenRealm != realm {
		return Claims{}, ErrInvalid
	}

	return Claims{Subject: sub, Realm: tokenRealm, PasswordChangeDue: pwc}, nil
}
