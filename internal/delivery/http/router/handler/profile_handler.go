package handler

import (
	"log/slog"
	"net/http"

	"varse/internal/delivery/http/middleware"
	"varse/internal/delivery/http/response"
	"varse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for identity- and role-profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// Me returns the caller's identity with its role profiles.
func (h *ProfileHandler) Me(c echo.Context) error {
	identityID, ok := middleware.IdentityID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing identity in request context")
	}

	identity, err := h.uc.GetProfile(c.Request().Context(), identityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toIdentityView(identity), "")
}

// RegisterVendor completes vendor registration for the caller.
func (h *ProfileHandler) RegisterVendor(c echo.Context) error {
	identityID, ok := middleware.IdentityID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing identity in request context")
	}

	var input usecase.VendorProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.RegisterVendor(c.Request().Context(), identityID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toVendorProfileView(profile), "Vendor profile registered successfully")
}

// RegisterRider completes rider registration for the caller.
func (h *ProfileHandler) RegisterRider(c echo.Context) error {
	identityID, ok := middleware.IdentityID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing identity in request context")
	}

	var input usecase.RiderProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rider profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.RegisterRider(c.Request().Context(), identityID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRiderProfileView(profile), "Rider profile registered successfully")
}

// SetAvailability toggles the caller's rider availability.
func (h *ProfileHandler) SetAvailability(c echo.Context) error {
	identityID, ok := middleware.IdentityID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing identity in request context")
	}

	var input usecase.AvailabilityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability input")
	}

	if err := h.uc.SetRiderAvailability(c.Request().Context(), identityID, input.Available); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"available": input.Available}, "Availability updated")
}

// StoreQR returns a PNG QR code for the caller's storefront.
func (h *ProfileHandler) StoreQR(c echo.Context) error {
	identityID, ok := middleware.IdentityID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing identity in request context")
	}

	png, err := h.uc.StoreQR(c.Request().Context(), identityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
