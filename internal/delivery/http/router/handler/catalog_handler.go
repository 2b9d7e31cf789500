package handler

import (
	"log/slog"
	"net/http"

	"varse/internal/delivery/http/middleware"
	"varse/internal/delivery/http/response"
	"varse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog-related handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- public surface ---

// ListPublicProducts returns the catalog of approved vendors.
func (h *CatalogHandler) ListPublicProducts(c echo.Context) error {
	products, err := h.uc.ListPublicProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "")
}

// ListCategories returns all categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryViews(categories), "")
}

// GetCategory returns a single category.
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	category, err := h.uc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryView(category), "")
}

// --- vendor surface ---

// CreateProduct creates a product under the caller's vendor profile.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	vendorID, ok := middleware.IdentityID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing identity in request context")
	}

	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), vendorID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product), "Product created successfully")
}

// ListVendorProducts returns the caller's own products.
func (h *CatalogHandler) ListVendorProducts(c echo.Context) error {
	vendorID, ok := middleware.IdentityID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing identity in request context")
	}

	products, err := h.uc.ListVendorProducts(c.Request().Context(), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "")
}

// GetVendorProduct returns one of the caller's own products.
func (h *CatalogHandler) GetVendorProduct(c echo.Context) error {
	vendorID, ok := middleware.IdentityID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing identity in request context")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.uc.GetVendorProduct(c.Request().Context(), vendorID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "")
}

// UpdateProduct modifies one of the caller's own products.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	vendorID, ok := middleware.IdentityID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing identity in request context")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), vendorID, productID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product updated successfully")
}

// DeleteProduct removes one of the caller's own products.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	vendorID, ok := middleware.IdentityID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing identity in request context")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), vendorID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"}, "Product deleted successfully")
}
