package handler

import (
	"log/slog"
	"net/http"

	"varse/internal/delivery/http/response"
	"varse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for administrative handlers.
// All routes using it are guarded by the admin role at the router.
type AdminHandler struct {
	profileUC usecase.ProfileUsecase
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(profileUC usecase.ProfileUsecase, catalogUC usecase.CatalogUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		profileUC: profileUC,
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// SetVendorApproval flips a vendor profile's approval flag.
func (h *AdminHandler) SetVendorApproval(c echo.Context) error {
	identityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid identity id")
	}

	var input usecase.ApprovalInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval input")
	}

	if err := h.profileUC.SetVendorApproval(c.Request().Context(), identityID, input.Approved); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"approved": input.Approved}, "Vendor approval updated")
}

// SetRiderApproval flips a rider profile's approval flag.
func (h *AdminHandler) SetRiderApproval(c echo.Context) error {
	identityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid identity id")
	}

	var input usecase.ApprovalInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval input")
	}

	if err := h.profileUC.SetRiderApproval(c.Request().Context(), identityID, input.Approved); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"approved": input.Approved}, "Rider approval updated")
}

// SetVerification flips an identity's verification flag.
func (h *AdminHandler) SetVerification(c echo.Context) error {
	identityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid identity id")
	}

	var input usecase.VerificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}

	if err := h.profileUC.SetVerification(c.Request().Context(), identityID, input.Verified); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"verified": input.Verified}, "Verification updated")
}

// CreateCategory creates a new catalog category.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var input usecase.CreateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCategoryView(category), "Category created successfully")
}

// UpdateCategory modifies an existing catalog category.
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	var input usecase.UpdateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	category, err := h.catalogUC.UpdateCategory(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryView(category), "Category updated successfully")
}

// DeleteCategory removes a catalog category.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	if err := h.catalogUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Category deleted"}, "Category deleted successfully")
}
