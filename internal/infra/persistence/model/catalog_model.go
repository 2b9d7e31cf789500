package model

import (
	"time"

	"varse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts the persistence model into the domain entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CategoryModelFromEntity converts the domain entity into the persistence model.
func CategoryModelFromEntity(e *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
	}
}

// ProductModel mirrors the 'products' table. VendorID references the owning
// vendor profile's identity id; the price column is fixed-point numeric.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageURL    string          `gorm:"type:varchar(500)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`

	Vendor   *VendorProfileModel `gorm:"foreignKey:VendorID;references:IdentityID"`
	Category *CategoryModel      `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts the persistence model into the domain entity.
func (m *ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		VendorID:    m.VendorID,
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ProductModelFromEntity converts the domain entity into the persistence model.
func ProductModelFromEntity(e *entity.Product) *ProductModel {
	return &ProductModel{
		ID:          e.ID,
		VendorID:    e.VendorID,
		CategoryID:  e.CategoryID,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		ImageURL:    e.ImageURL,
	}
}
