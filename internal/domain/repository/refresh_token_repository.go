// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"varse/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for refresh-token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExpired is returned when a refresh token exists but has expired.
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// RefreshTokenRepository defines the standard operations for refresh-token persistence.
// Only the SHA-256 hash of a token is ever stored.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a refresh token record by its securely stored hash.
	// Expired records are reported as ErrRefreshTokenExpired.
	FindByHash(ctx context.Context, hash string) (*entity.RefreshToken, error)

	// DeleteByHash deletes a refresh token by its hash, ending the session.
	DeleteByHash(ctx context.Context, hash string) error

	// DeleteByIdentityID deletes every refresh token of an identity.
	DeleteByIdentityID(ctx context.Context, identityID uuid.UUID) error

	// DeleteExpired removes all expired refresh tokens.
	DeleteExpired(ctx context.Context) error
}
