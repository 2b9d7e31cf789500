// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"varse/internal/domain/entity"
	domainerrors "varse/internal/domain/errors"
	"varse/internal/domain/repository"
	"varse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(txManager repository.TransactionManager, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		txManager: txManager,
		logger:    logger,
	}
}

// requireApprovedVendor loads the caller's vendor profile and rejects
// callers whose profile is missing or not yet approved.
func requireApprovedVendor(ctx context.Context, repoFactory repository.RepositoryFactory, vendorID uuid.UUID) error {
	profile, err := repoFactory.ProfileRepo().FindVendorProfile(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorProfileNotFound) {
			return domainerrors.ErrForbidden.WrapMessage("caller has no vendor profile")
		}

		return errors.Wrap(err, "failed to find vendor profile")
	}
	if !profile.Approved {
		return domainerrors.ErrProfileNotApproved
	}

	return nil
}

// findOwnedProduct loads a product and verifies the caller owns it.
// A product owned by someone else is reported as forbidden, not missing,
// because its existence is not a secret within the vendor surface.
func findOwnedProduct(ctx context.Context, repoFactory repository.RepositoryFactory, vendorID, productID uuid.UUID) (*entity.Product, error) {
	product, err := repoFactory.ProductRepo().FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.OwnedBy(vendorID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("product belongs to another vendor")
	}

	return product, nil
}

// validatePrice rejects negative prices before they reach storage.
func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}

	return nil
}

// resolveCategory confirms the referenced category exists.
func resolveCategory(ctx context.Context, repoFactory repository.RepositoryFactory, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}

	if _, err := repoFactory.CategoryRepo().FindByID(ctx, *categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrValidationFailed.WrapMessage("category does not exist")
		}

		return errors.Wrap(err, "failed to find category")
	}

	return nil
}

// CreateProduct creates a product under the caller's vendor profile.
func (srv *catalogService) CreateProduct(ctx context.Context, vendorID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.logger.Info("Creating product", "vendorID", vendorID, "name", input.Name)

	if err := validatePrice(input.Price); err != nil {
		return nil, err
	}

	var created *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireApprovedVendor(ctx, repoFactory, vendorID); err != nil {
			return err
		}
		if err := resolveCategory(ctx, repoFactory, input.CategoryID); err != nil {
			return err
		}

		product := &entity.Product{
			ID:          uuid.New(),
			VendorID:    vendorID,
			CategoryID:  input.CategoryID,
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			ImageURL:    input.ImageURL,
		}
		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			return errors.WithStack(err)
		}
		created = product

		return nil
	})

	if err != nil {
		srv.logger.Warn("Product creation failed", "vendorID", vendorID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute product creation transaction")
	}

	return created, nil
}

// ListVendorProducts returns only the caller's own products.
func (srv *catalogService) ListVendorProducts(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error) {
	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().ListByVendor(ctx, vendorID)
		if err != nil {
			return errors.Wrap(err, "failed to list vendor products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor products")
	}

	return products, nil
}

// GetVendorProduct returns one of the caller's own products.
func (srv *catalogService) GetVendorProduct(ctx context.Context, vendorID, productID uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findOwnedProduct(ctx, repoFactory, vendorID, productID)
		if err != nil {
			return err
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get vendor product")
	}

	return product, nil
}

// UpdateProduct modifies a product owned by the caller.
func (srv *catalogService) UpdateProduct(ctx context.Context, vendorID, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.logger.Info("Updating product", "vendorID", vendorID, "productID", productID)

	if input.Price != nil {
		if err := validatePrice(*input.Price); err != nil {
			return nil, err
		}
	}

	var updated *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireApprovedVendor(ctx, repoFactory, vendorID); err != nil {
			return err
		}

		product, err := findOwnedProduct(ctx, repoFactory, vendorID, productID)
		if err != nil {
			return err
		}
		if err := resolveCategory(ctx, repoFactory, input.CategoryID); err != nil {
			return err
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.ImageURL != nil {
			product.ImageURL = *input.ImageURL
		}
		if input.CategoryID != nil {
			product.CategoryID = input.CategoryID
		}

		if err := repoFactory.ProductRepo().Update(ctx, product); err != nil {
			return errors.WithStack(err)
		}
		updated = product

		return nil
	})

	if err != nil {
		srv.logger.Warn("Product update failed", "productID", productID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute product update transaction")
	}

	return updated, nil
}

// DeleteProduct removes a product owned by the caller.
func (srv *catalogService) DeleteProduct(ctx context.Context, vendorID, productID uuid.UUID) error {
	srv.logger.Info("Deleting product", "vendorID", vendorID, "productID", productID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireApprovedVendor(ctx, repoFactory, vendorID); err != nil {
			return err
		}

		product, err := findOwnedProduct(ctx, repoFactory, vendorID, productID)
		if err != nil {
			return err
		}

		return errors.Wrap(repoFactory.ProductRepo().Delete(ctx, product.ID), "failed to delete product")
	})

	return errors.Wrap(err, "failed to execute product deletion transaction")
}

// ListPublicProducts returns the explicitly-public catalog: products whose
// owning vendor profile is approved.
func (srv *catalogService) ListPublicProducts(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().ListApprovedVendors(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list public products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public products")
	}

	return products, nil
}

// CreateCategory creates a category. Route-guarded to administrators.
func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	srv.logger.Info("Creating category", "name", input.Name)

	var created *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		category := &entity.Category{
			ID:          uuid.New(),
			Name:        input.Name,
			Description: input.Description,
		}
		if err := repoFactory.CategoryRepo().Create(ctx, category); err != nil {
			return errors.WithStack(err)
		}
		created = category

		return nil
	})

	if err != nil {
		srv.logger.Warn("Category creation failed", "name", input.Name, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute category creation transaction")
	}

	return created, nil
}

// ListCategories returns all categories.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CategoryRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list categories")
		}
		categories = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetCategory returns a single category.
func (srv *catalogService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CategoryRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("category not found")
			}

			return errors.Wrap(err, "failed to find category")
		}
		category = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get category")
	}

	return category, nil
}

// UpdateCategory modifies a category. Route-guarded to administrators.
func (srv *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	srv.logger.Info("Updating category", "categoryID", id)

	var updated *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		category, err := repoFactory.CategoryRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("category not found")
			}

			return errors.Wrap(err, "failed to find category")
		}

		if input.Name != nil {
			category.Name = *input.Name
		}
		if input.Description != nil {
			category.Description = *input.Description
		}

		if err := repoFactory.CategoryRepo().Update(ctx, category); err != nil {
			return errors.WithStack(err)
		}
		updated = category

		return nil
	})

	if err != nil {
		srv.logger.Warn("Category update failed", "categoryID", id, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute category update transaction")
	}

	return updated, nil
}

// DeleteCategory removes a category. Route-guarded to administrators.
func (srv *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting category", "categoryID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.CategoryRepo().FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("category not found")
			}

			return errors.Wrap(err, "failed to find category")
		}

		return errors.Wrap(repoFactory.CategoryRepo().Delete(ctx, id), "failed to delete category")
	})

	return errors.Wrap(err, "failed to execute category deletion transaction")
}
