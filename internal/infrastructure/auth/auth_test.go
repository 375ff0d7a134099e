package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"turnero/internal/shared/authorization"
)

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, h.Verify("s3cret-pass", hash))
	assert.Error(t, h.Verify("wrong-pass", hash))
	assert.Error(t, h.Verify("s3cret-pass", "not-a-hash"))
}

func TestBcryptPasswordHasherClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(99).cost)
}

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 30)

	token, err := svc.Generate(7, "maria", authorization.RoleSupervisor, "ses_abc")
	require.NoError(t, err)
	assert.Equal(t, int64(1800), token.ExpiresIn)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), token.ExpiresAt, time.Minute)

	claims, err := svc.Verify(token.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, authorization.RoleSupervisor, claims.Role)
	assert.Equal(t, "ses_abc", claims.SessionID)
}

func TestJWTServiceRejectsForeignSecret(t *testing.T) {
	token, err := NewJWTService("one", 30).Generate(1, "a", authorization.RoleAdmin, "ses_1")
	require.NoError(t, err)

	_, err = NewJWTService("two", 30).Verify(token.Token)
	assert.Error(t, err)
}

func TestJWTServiceRejectsExpired(t *testing.T) {
	svc := NewJWTService("secret", 30)
	past := time.Now().Add(-time.Hour)
	claims := &Claims{
		AdminID:   1,
		SessionID: "ses_1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(past),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.Error(t, err)
}

func TestJWTServiceRejectsMissingIdentity(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWTService("secret", 30).Verify(signed)
	assert.Error(t, err)
}
