// Package entity contains the core business objects of the project.
package entity

// Role represents the type of account an identity holds in the system.
// Every identity carries exactly one role; role-specific data lives in the
// matching profile entity, never in subtypes of Identity.
type Role string

const (
	// RoleCustomer indicates a regular buying customer.
	RoleCustomer Role = "customer"
	// RoleVendor indicates a selling vendor.
	RoleVendor Role = "vendor"
	// RoleRider indicates a delivery rider.
	RoleRider Role = "rider"
	// RoleAdmin indicates an administrative account. Admin accounts are
	// provisioned, never self-registered.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleRider, RoleAdmin:
		return true
	default:
		return false
	}
}

// Registrable reports whether the role may be chosen at self-registration.
func (r Role) Registrable() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleRider:
		return true
	default:
		return false
	}
}
