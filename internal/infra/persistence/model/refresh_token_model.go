package model

import (
	"time"

	"varse/internal/domain/entity"

	"github.com/google/uuid"
)

// RefreshTokenModel mirrors the 'refresh_tokens' table. Only the SHA-256 hash
// of the token is ever stored.
type RefreshTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	IdentityID uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash  string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// ToEntity converts the persistence model into the domain entity.
func (m *RefreshTokenModel) ToEntity() *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:         m.ID,
		IdentityID: m.IdentityID,
		TokenHash:  m.TokenHash,
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
	}
}

// RefreshTokenModelFromEntity converts the domain entity into the persistence model.
func RefreshTokenModelFromEntity(e *entity.RefreshToken) *RefreshTokenModel {
	return &RefreshTokenModel{
		ID:         e.ID,
		IdentityID: e.IdentityID,
		TokenHash:  e.TokenHash,
		ExpiresAt:  e.ExpiresAt,
	}
}
