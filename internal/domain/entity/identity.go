// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the core entity in the system, representing a unique "person" or
// "account". It carries the login credential and the role tag; role-specific
// data lives in the optional profile entities.
type Identity struct {
	ID            uuid.UUID      // The Global Unique Identifier (GUID) for the identity.
	Username      string         // Globally unique login name.
	Email         string         // Globally unique contact email, also accepted as login.
	PasswordHash  string         // bcrypt hash of the credential. Never serialized to clients.
	Role          Role           // The single role tag of this identity.
	Verified      bool           // Flipped by an administrative process; defaults to false.
	VendorProfile *VendorProfile // Non-nil only when a vendor profile has been registered.
	RiderProfile  *RiderProfile  // Non-nil only when a rider profile has been registered.
	CreatedAt     time.Time      // Timestamp of when this account was created.
	UpdatedAt     time.Time      // Timestamp of the last modification to this account.
}

// HasRole reports whether the identity carries the given role.
func (i *Identity) HasRole(role Role) bool {
	return i.Role == role
}
