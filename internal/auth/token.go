package auth

import (
	"errors"
	"time"

	"github.com/brewboard/brewboard/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var errInvalidToken = errors.New("invalid capability token")

// CapabilityToken mints and verifies signed capability tokens.
type CapabilityToken struct {
	key []byte
	ttl time.Duration
}

// NewCapabilityToken creates a token factory with the given signing key
// and token lifetime.
func NewCapabilityToken(key []byte, ttl time.Duration) *CapabilityToken {
	return &CapabilityToken{key: key, ttl: ttl}
}

// Create mints a new capability token. Each token carries a unique id
// so issued capabilities are distinguishable in logs.
func (ct *CapabilityToken) Create() (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ct.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ct.key)
}

// Verify parses and validates tokenString and returns its payload.
func (ct *CapabilityToken) Verify(tokenString string) (*models.CapabilityPayload, error) {
	claims := jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return ct.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.ID == "" {
		return nil, errInvalidToken
	}

	payload := models.CapabilityPayload{
		TokenID:   claims.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}

	return &payload, nil
}
