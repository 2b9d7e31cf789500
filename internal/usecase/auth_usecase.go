// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"varse/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new identity.
// Vendor and Rider fields are optional role-profile payloads; when supplied
// alongside a matching role, the profile is created in the same transaction.
type RegisterInput struct {
	Username        string               `json:"username" validate:"required,min=3,max=150"`
	Email           string               `json:"email" validate:"required,email"`
	Password        string               `json:"password" validate:"required,min=8"`
	ConfirmPassword string               `json:"confirm_password" validate:"required"`
	Role            string               `json:"role" validate:"required"`
	Vendor          *VendorProfileInput  `json:"vendor,omitempty"`
	Rider           *RiderProfileInput   `json:"rider,omitempty"`
}

// LoginInput defines the data required to log in. Login accepts either the
// username or the email address.
type LoginInput struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput defines the data required to refresh a token pair.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutInput defines the data required to end a session.
type LogoutInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created identity's basic information.
// The credential hash is never included.
type RegisterOutput struct {
	Identity *entity.Identity
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Identity     *entity.Identity `json:"-"`
}

// RefreshTokenOutput returns the rotated token pair.
type RefreshTokenOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error

	// LogoutAll ends every session of the identity at once.
	LogoutAll(ctx context.Context, identityID uuid.UUID) error

	// CleanupExpiredSessions removes expired refresh tokens from storage.
	// Intended for a periodic background sweep.
	CleanupExpiredSessions(ctx context.Context) error
}
