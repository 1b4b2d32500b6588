package auth_test

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aetheris/airline-platform/internal/auth"
	"github.com/aetheris/airline-platform/internal/domain"
)

func TestTokenCodecRoundTrip(t *testing.T) {
	t.Parallel()

	codec := auth.NewTokenCodec("unit-secret", 3600)

	token, err := codec.Issue(42, domain.RoleAdmin, "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.SubjectID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "admin@example.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestTokenCodecRejectsTampered(t *testing.T) {
	t.Parallel()

	codec := auth.NewTokenCodec("unit-secret", 3600)
	token, err := codec.Issue(7, domain.RoleCustomer, "c@example.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = codec.Verify(tampered)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenCodecRejectsForeignSecret(t *testing.T) {
	t.Parallel()

	issuer := auth.NewTokenCodec("secret-a", 3600)
	verifier := auth.NewTokenCodec("secret-b", 3600)

	token, err := issuer.Issue(7, domain.RoleCustomer, "c@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenCodecRejectsExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	claims := &auth.Claims{
		SubjectID: 7,
		Role:      domain.RoleCustomer,
		Email:     "c@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-secret"))
	require.NoError(t, err)

	codec := auth.NewTokenCodec("unit-secret", 3600)
	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenCodecRejectsWrongSigningMethod(t *testing.T) {
	t.Parallel()

	now := time.Now()
	claims := &auth.Claims{
		SubjectID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("unit-secret"))
	require.NoError(t, err)

	codec := auth.NewTokenCodec("unit-secret", 3600)
	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenCodecExpirySeconds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 120, auth.NewTokenCodec("s", 120).ExpirySeconds())

	// Non-positive lifetimes fall back to the one-day default.
	assert.Equal(t, 86400, auth.NewTokenCodec("s", 0).ExpirySeconds())
	assert.Equal(t, 86400, auth.NewTokenCodec("s", -5).ExpirySeconds())
}
