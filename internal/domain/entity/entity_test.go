package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleCustomer.IsValid())
	assert.True(t, RoleVendor.IsValid())
	assert.True(t, RoleRider.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRole_Registrable(t *testing.T) {
	assert.True(t, RoleCustomer.Registrable())
	assert.True(t, RoleVendor.Registrable())
	assert.True(t, RoleRider.Registrable())
	// Admin accounts are provisioned, never self-registered.
	assert.False(t, RoleAdmin.Registrable())
	assert.False(t, Role("superuser").Registrable())
}

func TestVehicleType_IsValid(t *testing.T) {
	assert.True(t, VehicleMotorcycle.IsValid())
	assert.True(t, VehicleBicycle.IsValid())
	assert.True(t, VehicleCar.IsValid())
	assert.False(t, VehicleType("skateboard").IsValid())
}

func TestRiderProfile_Dispatchable(t *testing.T) {
	tests := []struct {
		name      string
		approved  bool
		available bool
		want      bool
	}{
		{"approved and available", true, true, true},
		{"approved but offline", true, false, false},
		{"available but unapproved", false, true, false},
		{"neither", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rider := &RiderProfile{Approved: tt.approved, Available: tt.available}
			assert.Equal(t, tt.want, rider.Dispatchable())
		})
	}
}

func TestProduct_OwnedBy(t *testing.T) {
	vendorID := uuid.New()
	product := &Product{ID: uuid.New(), VendorID: vendorID}

	assert.True(t, product.OwnedBy(vendorID))
	assert.False(t, product.OwnedBy(uuid.New()))
}

func TestRefreshToken_Expired(t *testing.T) {
	now := time.Now()
	token := &RefreshToken{ExpiresAt: now.Add(time.Hour)}

	assert.False(t, token.Expired(now))
	assert.True(t, token.Expired(now.Add(2*time.Hour)))
}

func TestIdentity_HasRole(t *testing.T) {
	identity := &Identity{Role: RoleVendor}

	assert.True(t, identity.HasRole(RoleVendor))
	assert.False(t, identity.HasRole(RoleAdmin))
}
