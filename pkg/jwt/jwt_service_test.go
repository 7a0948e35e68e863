package jwt

import (
	"Nutrition-Density-Backend/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)

	token, err := svc.GenerateTokenUser("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := svc.GetUsernameByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.GenerateTokenUser("alice")
	require.NoError(t, err)

	_, err = svc.GetUsernameByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Minute)
	verifier := NewJWTService("secret-b", time.Minute)

	token, err := issuer.GenerateTokenUser("alice")
	require.NoError(t, err)

	_, err = verifier.GetUsernameByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)

	_, err := svc.GetUsernameByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)

	claims := jwt.RegisteredClaims{
		Subject:   "mallory",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.GetUsernameByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_MissingSubject(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)

	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.GetUsernameByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
