package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by API access tokens.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService validates bearer tokens issued by the identity provider.
type TokenService interface {
	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// IssueToken signs a token for userID. Used by operator tooling and tests.
	IssueToken(userID uuid.UUID, ttl time.Duration) (string, error)
}
