// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"varse/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// VendorProfileInput defines the business data required to register a vendor profile.
type VendorProfileInput struct {
	BusinessName        string `json:"business_name" validate:"required,max=100"`
	BusinessAddress     string `json:"business_address" validate:"required"`
	BusinessPhone       string `json:"business_phone" validate:"required"`
	BusinessEmail       string `json:"business_email" validate:"required,email"`
	BusinessDescription string `json:"business_description"`
}

// RiderProfileInput defines the data required to register a rider profile.
type RiderProfileInput struct {
	PhoneNumber  string `json:"phone_number" validate:"required"`
	VehicleType  string `json:"vehicle_type" validate:"required"`
	VehiclePlate string `json:"vehicle_plate"`
}

// ApprovalInput flips the approval flag of a role profile.
type ApprovalInput struct {
	Approved bool `json:"approved"`
}

// AvailabilityInput toggles a rider's availability.
type AvailabilityInput struct {
	Available bool `json:"available"`
}

// VerificationInput flips the verification flag of an identity.
type VerificationInput struct {
	Verified bool `json:"verified"`
}

// ProfileUsecase defines the interface for identity- and role-profile-related
// business operations.
type ProfileUsecase interface {
	// GetProfile returns the identity with its role profiles, credential omitted.
	GetProfile(ctx context.Context, identityID uuid.UUID) (*entity.Identity, error)

	// RegisterVendor completes vendor registration by creating the vendor
	// profile for an identity whose role is vendor.
	RegisterVendor(ctx context.Context, identityID uuid.UUID, input *VendorProfileInput) (*entity.VendorProfile, error)

	// RegisterRider completes rider registration by creating the rider
	// profile for an identity whose role is rider.
	RegisterRider(ctx context.Context, identityID uuid.UUID, input *RiderProfileInput) (*entity.RiderProfile, error)

	// SetVendorApproval flips a vendor profile's approval flag. Administrative only; idempotent.
	SetVendorApproval(ctx context.Context, identityID uuid.UUID, approved bool) error

	// SetRiderApproval flips a rider profile's approval flag. Administrative only; idempotent.
	SetRiderApproval(ctx context.Context, identityID uuid.UUID, approved bool) error

	// SetRiderAvailability toggles a rider's availability. Rider self-service;
	// independent of the approval state.
	SetRiderAvailability(ctx context.Context, identityID uuid.UUID, available bool) error

	// SetVerification flips an identity's verification flag. Administrative only; idempotent.
	SetVerification(ctx context.Context, identityID uuid.UUID, verified bool) error

	// StoreQR renders a storefront QR code PNG for a vendor identity.
	StoreQR(ctx context.Context, identityID uuid.UUID) ([]byte, error)
}
