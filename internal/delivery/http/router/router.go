// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"varse/config"
	"varse/internal/delivery/http/middleware"
	"varse/internal/delivery/http/router/handler"
	"varse/internal/domain/entity"
	"varse/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	CatalogHandler *handler.CatalogHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
	HTTPMetrics    *metrics.HTTPMetrics
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	catalogHandler *handler.CatalogHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
	httpMetrics    *metrics.HTTPMetrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		catalogHandler: params.CatalogHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
		httpMetrics:    params.HTTPMetrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Prometheus metrics endpoint
	if r.cfg.Metrics == nil || r.cfg.Metrics.Enabled {
		path := "/metrics"
		if r.cfg.Metrics != nil && r.cfg.Metrics.Path != "" {
			path = r.cfg.Metrics.Path
		}
		e.GET(path, echo.WrapHandler(promhttp.Handler()))
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/token/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/logout/all", r.authHandler.LogoutAll, r.authMiddleware.Authenticate)

		// Role-profile registration only requires authentication; the role
		// check lives in the usecase so a mismatched role answers with
		// ROLE_MISMATCH instead of a plain 403.
		authGroup.POST("/register/vendor", r.profileHandler.RegisterVendor, r.authMiddleware.Authenticate)
		authGroup.POST("/register/rider", r.profileHandler.RegisterRider, r.authMiddleware.Authenticate)
	}

	// Caller's own identity
	e.GET("/me", r.profileHandler.Me, r.authMiddleware.Authenticate)

	// Catalog routes: reads are public, category writes are administrative.
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/products", r.catalogHandler.ListPublicProducts)
		catalogGroup.GET("/categories", r.catalogHandler.ListCategories)
		catalogGroup.GET("/categories/:id", r.catalogHandler.GetCategory)

		adminOnly := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin)}
		catalogGroup.POST("/categories", r.adminHandler.CreateCategory, adminOnly...)
		catalogGroup.PUT("/categories/:id", r.adminHandler.UpdateCategory, adminOnly...)
		catalogGroup.DELETE("/categories/:id", r.adminHandler.DeleteCategory, adminOnly...)
	}

	// Vendor routes that require authentication and the "vendor" role
	vendorGroup := e.Group("/vendor")
	vendorGroup.Use(r.authMiddleware.Authenticate)
	vendorGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor))
	{
		vendorGroup.GET("/products", r.catalogHandler.ListVendorProducts)
		vendorGroup.POST("/products", r.catalogHandler.CreateProduct)
		vendorGroup.GET("/products/:id", r.catalogHandler.GetVendorProduct)
		vendorGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		vendorGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)
		vendorGroup.GET("/store/qrcode", r.profileHandler.StoreQR)
	}

	// Rider routes that require authentication and the "rider" role
	riderGroup := e.Group("/rider")
	riderGroup.Use(r.authMiddleware.Authenticate)
	riderGroup.Use(r.authMiddleware.RequireRole(entity.RoleRider))
	{
		riderGroup.PUT("/availability", r.profileHandler.SetAvailability)
	}

	// Administrative routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.PUT("/vendors/:id/approval", r.adminHandler.SetVendorApproval)
		adminGroup.PUT("/riders/:id/approval", r.adminHandler.SetRiderApproval)
		adminGroup.PUT("/identities/:id/verification", r.adminHandler.SetVerification)
	}
}
