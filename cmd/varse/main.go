package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"varse/config"
	"varse/internal/delivery"
	"varse/internal/delivery/http"
	"varse/internal/delivery/http/middleware"
	"varse/internal/delivery/http/router/handler"
	"varse/internal/domain/service"
	"varse/internal/infra/auth"
	logs "varse/internal/infra/log"
	"varse/internal/infra/metrics"
	"varse/internal/infra/persistence/postgres"
	"varse/internal/infra/qrcode"
	"varse/internal/usecase"
	"varse/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
			startSessionSweeper,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewIdentityRepository,
			postgres.NewProfileRepository,
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			newQRCodeService,
			newHTTPMetrics,
		),
	)
}

// newPasswordHasher creates a bcrypt hasher with the configured cost
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil {
		return auth.NewBcryptHasher(0)
	}

	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.BaseURL)
}

// newHTTPMetrics registers the Prometheus collectors under the service name
func newHTTPMetrics(cfg *config.Config) *metrics.HTTPMetrics {
	return metrics.NewHTTPMetrics(cfg.Env.ServiceName)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewCatalogHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// sessionSweepInterval is how often expired refresh tokens are purged.
const sessionSweepInterval = time.Hour

func startSessionSweeper(ctx context.Context, authUC usecase.AuthUsecase) {
	go func() {
		ticker := time.NewTicker(sessionSweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := authUC.CleanupExpiredSessions(ctx); err != nil {
					slog.Warn("Expired session sweep failed", slog.Any("error", err))
				}
			}
		}
	}()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
