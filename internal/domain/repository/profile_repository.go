// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"varse/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for role-profile persistence.
var (
	// ErrVendorProfileNotFound is returned when a vendor profile is not found.
	ErrVendorProfileNotFound = errors.New("vendor profile not found")
	// ErrRiderProfileNotFound is returned when a rider profile is not found.
	ErrRiderProfileNotFound = errors.New("rider profile not found")
)

// ProfileRepository defines the standard operations for role-profile persistence.
// At most one profile of each kind exists per identity; the identity reference
// is the primary key, so a duplicate insert fails at the storage layer.
type ProfileRepository interface {
	// CreateVendorProfile persists a new vendor profile for an identity.
	CreateVendorProfile(ctx context.Context, profile *entity.VendorProfile) error

	// FindVendorProfile retrieves the vendor profile owned by the given identity.
	FindVendorProfile(ctx context.Context, identityID uuid.UUID) (*entity.VendorProfile, error)

	// UpdateVendorProfile modifies an existing vendor profile.
	UpdateVendorProfile(ctx context.Context, profile *entity.VendorProfile) error

	// CreateRiderProfile persists a new rider profile for an identity.
	CreateRiderProfile(ctx context.Context, profile *entity.RiderProfile) error

	// FindRiderProfile retrieves the rider profile owned by the given identity.
	FindRiderProfile(ctx context.Context, identityID uuid.UUID) (*entity.RiderProfile, error)

	// UpdateRiderProfile modifies an existing rider profile.
	UpdateRiderProfile(ctx context.Context, profile *entity.RiderProfile) error
}
