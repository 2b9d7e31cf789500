package service

import "github.com/google/uuid"

// QRCodeService generates and parses storefront QR codes.
// A storefront code embeds the vendor identity id so a buyer scanning it can
// be routed to the vendor's public catalog.
type QRCodeService interface {
	// GenerateStoreQR renders a PNG QR code for the given vendor.
	GenerateStoreQR(vendorID uuid.UUID) ([]byte, error)

	// ParseStoreQR decodes QR payload data back into a vendor identity id.
	ParseStoreQR(qrData string) (uuid.UUID, error)
}
