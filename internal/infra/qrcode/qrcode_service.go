package qrcode

import (
	"encoding/json"
	"fmt"

	"varse/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size    int
	baseURL string
}

// QRCodeData represents the QR code payload structure
type QRCodeData struct {
	VendorID string `json:"vendor_id"`
	Type     string `json:"type"`
	URL      string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:    size,
		baseURL: baseURL,
	}
}

// GenerateStoreQR generates a QR code routing a scanner to a vendor storefront
func (s *qrcodeService) GenerateStoreQR(vendorID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		VendorID: vendorID.String(),
		Type:     "storefront",
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/" + vendorID.String()
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseStoreQR parses QR code data and returns the vendor ID
func (s *qrcodeService) ParseStoreQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "storefront" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	vendorID, err := uuid.Parse(data.VendorID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse vendor ID: %w", err)
	}

	return vendorID, nil
}
