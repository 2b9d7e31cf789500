// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is a standalone catalog grouping. Globally readable,
// administratively writable.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product is a catalog item owned by exactly one vendor profile,
// referenced through the owning identity id.
type Product struct {
	ID          uuid.UUID
	VendorID    uuid.UUID       // Identity id of the owning vendor profile.
	CategoryID  *uuid.UUID      // Optional category reference.
	Name        string
	Description string
	Price       decimal.Decimal // Fixed-point, never negative.
	ImageURL    string          // Optional reference to externally stored media.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy reports whether the product belongs to the given vendor identity.
func (p *Product) OwnedBy(vendorID uuid.UUID) bool {
	return p.VendorID == vendorID
}
