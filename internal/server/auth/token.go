// Package auth verifies bearer tokens presented to the HTTP API. Token
// issuance is out of scope: the server accepts a static API token, and,
// when a JWT secret is configured, HS256-signed JWTs from an external issuer.
package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/dmitrijs2005/awarddeck/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	jwt.RegisteredClaims
	Subject string
}

// Verifier checks bearer tokens against the configured static token and,
// optionally, a JWT HMAC secret.
type Verifier struct {
	apiToken  string
	jwtSecret []byte
}

func NewVerifier(apiToken, jwtSecret string) *Verifier {
	v := &Verifier{apiToken: apiToken}
	if jwtSecret != "" {
		v.jwtSecret = []byte(jwtSecret)
	}
	return v
}

// FromHeader extracts the token from an "Authorization: Bearer x" value.
func FromHeader(header string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", common.ErrInvalidToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", common.ErrInvalidToken
	}
	return token, nil
}

// Verify reports whether the token is acceptable: either it matches the
// static API token, or it parses as a valid HS256 JWT under the secret.
func (v *Verifier) Verify(token string) error {
	if v.apiToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(v.apiToken)) == 1 {
		return nil
	}
	if v.jwtSecret == nil {
		return common.ErrInvalidToken
	}
	return verifyJWT(token, v.jwtSecret)
}

func verifyJWT(tokenString string, secretKey []byte) error {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		return common.ErrInvalidToken
	}

	if !token.Valid {
		return common.ErrInvalidToken
	}

	return nil
}
