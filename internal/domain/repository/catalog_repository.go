// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"varse/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
)

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// Create persists a new product under its owning vendor profile.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListByVendor returns all products owned by the given vendor identity.
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error)

	// ListApprovedVendors returns products whose owning vendor profile is approved.
	// This backs the explicitly-public catalog browse.
	ListApprovedVendors(ctx context.Context) ([]*entity.Product, error)

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// Create persists a new category. Category names are unique.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// List returns all categories.
	List(ctx context.Context) ([]*entity.Category, error)

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
