package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0thman3698/on-demand-backend/internal/domain"
)

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifier_Verify(t *testing.T) {
	v := NewVerifier("test-secret")

	token := signToken(t, "test-secret", Claims{
		Sub:  "u1",
		Role: "USER",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	principal, err := v.Verify(token)

	require.NoError(t, err)
	assert.Equal(t, "u1", principal.AccountID)
	assert.Equal(t, domain.RoleUser, principal.Role)
}

func TestVerifier_Verify_WrongSecret(t *testing.T) {
	v := NewVerifier("test-secret")

	token := signToken(t, "other-secret", Claims{Sub: "u1", Role: "USER"})

	_, err := v.Verify(token)

	require.Error(t, err)
}

func TestVerifier_Verify_Expired(t *testing.T) {
	v := NewVerifier("test-secret")

	token := signToken(t, "test-secret", Claims{
		Sub:  "u1",
		Role: "USER",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := v.Verify(token)

	require.Error(t, err)
}

func TestVerifier_Verify_Garbage(t *testing.T) {
	v := NewVerifier("test-secret")

	_, err := v.Verify("not.a.token")

	require.Error(t, err)
}

func TestVerifier_Verify_RejectsUnsignedAlg(t *testing.T) {
	v := NewVerifier("test-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Sub: "u1", Role: "ADMIN"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = v.Verify(signed)

	require.Error(t, err)
}
