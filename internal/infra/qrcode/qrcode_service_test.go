package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateStoreQR(t *testing.T) {
	service := NewQRCodeService(256, "https://shop.example.com/store")
	vendorID := uuid.New()

	qrBytes, err := service.GenerateStoreQR(vendorID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateStoreQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
		{"Fallback size", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "")
			vendorID := uuid.New()

			qrBytes, err := service.GenerateStoreQR(vendorID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseStoreQR(t *testing.T) {
	service := NewQRCodeService(256, "")
	vendorID := uuid.New()

	data := QRCodeData{
		VendorID: vendorID.String(),
		Type:     "storefront",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseStoreQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, vendorID, parsedID)
}

func TestQRCodeService_ParseStoreQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "")

	_, err := service.ParseStoreQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseStoreQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "")

	data := QRCodeData{
		VendorID: uuid.New().String(),
		Type:     "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseStoreQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseStoreQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "")

	data := QRCodeData{
		VendorID: "not-a-valid-uuid",
		Type:     "storefront",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseStoreQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse vendor ID")
}
