// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VehicleType represents the kind of vehicle a rider operates.
type VehicleType string

const (
	// VehicleMotorcycle indicates a motorcycle.
	VehicleMotorcycle VehicleType = "motorcycle"
	// VehicleBicycle indicates a bicycle.
	VehicleBicycle VehicleType = "bicycle"
	// VehicleCar indicates a car.
	VehicleCar VehicleType = "car"
)

// String returns the string representation of the VehicleType.
func (v VehicleType) String() string {
	return string(v)
}

// IsValid checks if the VehicleType is a valid value.
func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleMotorcycle, VehicleBicycle, VehicleCar:
		return true
	default:
		return false
	}
}

// VendorProfile holds data specific to the "vendor" role. Exactly one profile
// may exist per identity; the identity reference doubles as the primary key.
type VendorProfile struct {
	IdentityID          uuid.UUID // Links this profile to its owning Identity.
	BusinessName        string    // The vendor's official business name.
	BusinessAddress     string    // The physical address of the business.
	BusinessPhone       string    // Business contact phone.
	BusinessEmail       string    // Business contact email.
	BusinessDescription string    // Free-form description of the business.
	Approved            bool      // Set only by an administrative actor; defaults to false.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// RiderProfile holds data specific to the "rider" role.
type RiderProfile struct {
	IdentityID   uuid.UUID   // Links this profile to its owning Identity.
	PhoneNumber  string      // Rider contact phone.
	VehicleType  VehicleType // Vehicle the rider operates.
	VehiclePlate string      // Optional registration plate.
	Approved     bool        // Set only by an administrative actor; defaults to false.
	Available    bool        // Toggled freely by the rider; defaults to true.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Dispatchable reports whether the rider may be offered deliveries.
// Availability alone is not enough: the profile must also be approved.
func (r *RiderProfile) Dispatchable() bool {
	return r.Approved && r.Available
}
