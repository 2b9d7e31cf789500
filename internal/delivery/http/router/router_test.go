package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"varse/config"
	"varse/internal/delivery/http/middleware"
	"varse/internal/delivery/http/router/handler"
	"varse/internal/delivery/http/validator"
	"varse/internal/domain/entity"
	domainerrors "varse/internal/domain/errors"
	"varse/internal/domain/service"
	mockService "varse/internal/mocks/service"
	mockUsecase "varse/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixtures struct {
	echo      *echo.Echo
	tokenSvc  *mockService.MockTokenService
	profileUC *mockUsecase.MockProfileUsecase
}

// createTestRouter builds an echo instance with the full route table, the real
// auth middleware over a mocked token service, and a mocked profile usecase.
func createTestRouter(t *testing.T) *routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc := mockService.NewMockTokenService(t)
	profileUC := mockUsecase.NewMockProfileUsecase(t)

	r := NewRouter(RouterParams{
		Config:         &config.Config{Metrics: &config.MetricsConfig{Enabled: false}},
		AuthHandler:    handler.NewAuthHandler(nil, nil, logger),
		ProfileHandler: handler.NewProfileHandler(profileUC, logger),
		CatalogHandler: handler.NewCatalogHandler(nil, logger),
		AdminHandler:   handler.NewAdminHandler(nil, nil, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(e)

	return &routerFixtures{echo: e, tokenSvc: tokenSvc, profileUC: profileUC}
}

func accessClaims(identityID uuid.UUID, role entity.Role) *service.Claims {
	return &service.Claims{
		IdentityID: identityID,
		Role:       role,
		Type:       service.TokenTypeAccess,
		ExpiresAt:  time.Now().Add(time.Minute),
		IssuedAt:   time.Now(),
	}
}

// A customer holding a valid token must reach the vendor registration
// usecase, so the mismatch answers with 400 ROLE_MISMATCH rather than a
// middleware 403.
func TestRouter_RegisterVendor_CustomerGetsRoleMismatch(t *testing.T) {
	fx := createTestRouter(t)

	identityID := uuid.New()
	fx.tokenSvc.EXPECT().
		ValidateAccessToken("customer-token").
		Return(accessClaims(identityID, entity.RoleCustomer), nil)

	fx.profileUC.EXPECT().
		RegisterVendor(mock.Anything, identityID, mock.AnythingOfType("*usecase.VendorProfileInput")).
		Return(nil, domainerrors.ErrRoleMismatch)

	body := `{
		"business_name": "Noodle Bar",
		"business_address": "1 Main St",
		"business_phone": "0912345678",
		"business_email": "noodle@example.com"
	}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register/vendor", strings.NewReader(body))
	req.Header.Set(echo.HeaderAuthorization, "Bearer customer-token")
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ROLE_MISMATCH")
}

func TestRouter_RegisterRider_VendorGetsRoleMismatch(t *testing.T) {
	fx := createTestRouter(t)

	identityID := uuid.New()
	fx.tokenSvc.EXPECT().
		ValidateAccessToken("vendor-token").
		Return(accessClaims(identityID, entity.RoleVendor), nil)

	fx.profileUC.EXPECT().
		RegisterRider(mock.Anything, identityID, mock.AnythingOfType("*usecase.RiderProfileInput")).
		Return(nil, domainerrors.ErrRoleMismatch)

	body := `{"phone_number": "0911222333", "vehicle_type": "motorcycle"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register/rider", strings.NewReader(body))
	req.Header.Set(echo.HeaderAuthorization, "Bearer vendor-token")
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ROLE_MISMATCH")
}

func TestRouter_RegisterVendor_MissingTokenUnauthorized(t *testing.T) {
	fx := createTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/register/vendor", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
