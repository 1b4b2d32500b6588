package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/aetheris/airline-platform/internal/domain"
)

// ErrInvalidToken is the single verification failure. A malformed payload, a
// bad signature and an expired token are deliberately indistinguishable.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the session token payload.
type Claims struct {
	SubjectID int64       `json:"id"`
	Role      domain.Role `json:"rol"`
	Email     string      `json:"email"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies signed session tokens using a shared secret.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec with the given secret and lifetime in seconds.
func NewTokenCodec(secret string, ttlSeconds int) *TokenCodec {
	if ttlSeconds <= 0 {
		ttlSeconds = 86400
	}
	return &TokenCodec{secret: []byte(secret), ttl: time.Duration(ttlSeconds) * time.Second}
}

// Issue builds and signs a session token for the subject.
func (tc *TokenCodec) Issue(subjectID int64, role domain.Role, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		SubjectID: subjectID,
		Role:      role,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tc.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tc.secret)
}

// Verify recomputes the signature and checks expiry. It fails closed: every
// failure mode collapses into ErrInvalidToken.
func (tc *TokenCodec) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tc.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExpirySeconds exposes the configured lifetime so the cookie Max-Age stays
// consistent with the token's own expiry.
func (tc *TokenCodec) ExpirySeconds() int {
	return int(tc.ttl / time.Second)
}
