// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"varse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
	CategoryID  *uuid.UUID      `json:"category_id,omitempty"`
}

// UpdateProductInput defines the data for a partial product update.
type UpdateProductInput struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	ImageURL    *string          `json:"image_url,omitempty"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
}

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

// UpdateCategoryInput defines the data for a partial category update.
type UpdateCategoryInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CatalogUsecase defines the interface for catalog operations together with
// their authorization rules. Every write checks role, ownership and approval
// before touching storage.
type CatalogUsecase interface {
	// CreateProduct creates a product under the caller's vendor profile.
	// The caller must be an approved vendor.
	CreateProduct(ctx context.Context, vendorID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// ListVendorProducts returns only the caller's own products.
	ListVendorProducts(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error)

	// GetVendorProduct returns one of the caller's own products.
	GetVendorProduct(ctx context.Context, vendorID, productID uuid.UUID) (*entity.Product, error)

	// UpdateProduct modifies a product owned by the caller.
	UpdateProduct(ctx context.Context, vendorID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product owned by the caller.
	DeleteProduct(ctx context.Context, vendorID, productID uuid.UUID) error

	// ListPublicProducts returns the explicitly-public catalog: products of
	// approved vendors only. Open to anonymous callers.
	ListPublicProducts(ctx context.Context) ([]*entity.Product, error)

	// CreateCategory creates a category. Administrative only.
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)

	// ListCategories returns all categories. Open to anonymous callers.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// GetCategory returns a single category. Open to anonymous callers.
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// UpdateCategory modifies a category. Administrative only.
	UpdateCategory(ctx context.Context, id uuid.UUID, input *UpdateCategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category. Administrative only.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
