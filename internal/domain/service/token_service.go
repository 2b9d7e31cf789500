package service

import (
	"time"

	"varse/internal/domain/entity"

	"github.com/google/uuid"
)

// Token type claims. A refresh token is never accepted where an access token
// is required, and vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims carries the identity information encoded in a token.
type Claims struct {
	IdentityID uuid.UUID
	Role       entity.Role
	Type       string
	ExpiresAt  time.Time
	IssuedAt   time.Time
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given identity.
	GenerateTokens(identityID uuid.UUID, role entity.Role) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
