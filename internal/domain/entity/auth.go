// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, authorized session.
// It is used to obtain a new access token after the old one expires, without
// requiring credentials.
type RefreshToken struct {
	ID         uuid.UUID // The unique ID for this specific refresh token record.
	IdentityID uuid.UUID // Links this session to the Identity it belongs to.
	TokenHash  string    // SHA-256 hash of the raw refresh token; the raw token is never stored.
	ExpiresAt  time.Time // The exact time when this refresh token expires and becomes invalid.
	CreatedAt  time.Time // Timestamp of when this session was created.
}

// Expired reports whether the token is past its expiry at the given instant.
func (t *RefreshToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
