package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/awarddeck/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret []byte, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
		Subject: "editor",
	})
	s, err := token.SignedString(secret)
	require.NoError(t, err)
	return s
}

func TestFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc123", want: "abc123"},
		{name: "missing prefix", header: "abc123", wantErr: true},
		{name: "empty token", header: "Bearer ", wantErr: true},
		{name: "empty header", header: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromHeader(tc.header)
			if tc.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestVerifier_StaticToken(t *testing.T) {
	v := NewVerifier("s3cret", "")

	assert.NoError(t, v.Verify("s3cret"))
	assert.ErrorIs(t, v.Verify("wrong"), common.ErrInvalidToken)
}

func TestVerifier_JWT(t *testing.T) {
	secret := []byte("jwtsecret")
	v := NewVerifier("static", string(secret))

	assert.NoError(t, v.Verify(signToken(t, secret, time.Hour)))
	assert.ErrorIs(t, v.Verify(signToken(t, secret, -time.Hour)), common.ErrInvalidToken)
	assert.ErrorIs(t, v.Verify(signToken(t, []byte("othersecret"), time.Hour)), common.ErrInvalidToken)

	// static token still accepted alongside JWTs
	assert.NoError(t, v.Verify("static"))
}

func TestVerifier_NoJWTSecretRejectsJWT(t *testing.T) {
	v := NewVerifier("static", "")
	assert.ErrorIs(t, v.Verify(signToken(t, []byte("any"), time.Hour)), common.ErrInvalidToken)
}
