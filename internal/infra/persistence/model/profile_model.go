package model

import (
	"time"

	"varse/internal/domain/entity"

	"github.com/google/uuid"
)

// VendorProfileModel mirrors the 'vendor_profiles' table. IdentityID references
// identities.id and doubles as the primary key, so a second profile for the
// same identity fails at the storage layer.
type VendorProfileModel struct {
	IdentityID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessName        string    `gorm:"type:varchar(255);not null"`
	BusinessAddress     string    `gorm:"type:text"`
	BusinessPhone       string    `gorm:"type:varchar(20)"`
	BusinessEmail       string    `gorm:"type:varchar(255)"`
	BusinessDescription string    `gorm:"type:text"`
	Approved            bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorProfileModel) TableName() string {
	return "vendor_profiles"
}

// ToEntity converts the persistence model into the domain entity.
func (m *VendorProfileModel) ToEntity() *entity.VendorProfile {
	return &entity.VendorProfile{
		IdentityID:          m.IdentityID,
		BusinessName:        m.BusinessName,
		BusinessAddress:     m.BusinessAddress,
		BusinessPhone:       m.BusinessPhone,
		BusinessEmail:       m.BusinessEmail,
		BusinessDescription: m.BusinessDescription,
		Approved:            m.Approved,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// VendorProfileModelFromEntity converts the domain entity into the persistence model.
func VendorProfileModelFromEntity(e *entity.VendorProfile) *VendorProfileModel {
	return &VendorProfileModel{
		IdentityID:          e.IdentityID,
		BusinessName:        e.BusinessName,
		BusinessAddress:     e.BusinessAddress,
		BusinessPhone:       e.BusinessPhone,
		BusinessEmail:       e.BusinessEmail,
		BusinessDescription: e.BusinessDescription,
		Approved:            e.Approved,
	}
}

// RiderProfileModel mirrors the 'rider_profiles' table.
type RiderProfileModel struct {
	IdentityID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	PhoneNumber  string    `gorm:"type:varchar(20);not null"`
	VehicleType  string    `gorm:"type:varchar(20);not null"`
	VehiclePlate string    `gorm:"type:varchar(20)"`
	Approved     bool      `gorm:"not null;default:false"`
	Available    bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RiderProfileModel) TableName() string {
	return "rider_profiles"
}

// ToEntity converts the persistence model into the domain entity.
func (m *RiderProfileModel) ToEntity() *entity.RiderProfile {
	return &entity.RiderProfile{
		IdentityID:   m.IdentityID,
		PhoneNumber:  m.PhoneNumber,
		VehicleType:  entity.VehicleType(m.VehicleType),
		VehiclePlate: m.VehiclePlate,
		Approved:     m.Approved,
		Available:    m.Available,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// RiderProfileModelFromEntity converts the domain entity into the persistence model.
func RiderProfileModelFromEntity(e *entity.RiderProfile) *RiderProfileModel {
	return &RiderProfileModel{
		IdentityID:   e.IdentityID,
		PhoneNumber:  e.PhoneNumber,
		VehicleType:  e.VehicleType.String(),
		VehiclePlate: e.VehiclePlate,
		Approved:     e.Approved,
		Available:    e.Available,
	}
}
