package model

import (
	"time"

	"varse/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityModel mirrors the 'identities' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type IdentityModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(150);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;index"`
	Verified     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`

	VendorProfile *VendorProfileModel `gorm:"foreignKey:IdentityID"`
	RiderProfile  *RiderProfileModel  `gorm:"foreignKey:IdentityID"`
	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:IdentityID"`
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}

// ToEntity converts the persistence model into the domain entity.
func (m *IdentityModel) ToEntity() *entity.Identity {
	identity := &entity.Identity{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		Verified:     m.Verified,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.VendorProfile != nil {
		identity.VendorProfile = m.VendorProfile.ToEntity()
	}
	if m.RiderProfile != nil {
		identity.RiderProfile = m.RiderProfile.ToEntity()
	}

	return identity
}

// IdentityModelFromEntity converts the domain entity into the persistence model.
func IdentityModelFromEntity(e *entity.Identity) *IdentityModel {
	return &IdentityModel{
		ID:           e.ID,
		Username:     e.Username,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Role:         e.Role.String(),
		Verified:     e.Verified,
	}
}
