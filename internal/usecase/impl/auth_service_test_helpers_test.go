package impl

import (
	"io"
	"log/slog"
	"time"

	"varse/internal/domain/entity"
	"varse/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRefreshClaims(identityID uuid.UUID) *service.Claims {
	return &service.Claims{
		IdentityID: identityID,
		Role:       entity.RoleCustomer,
		Type:       service.TokenTypeRefresh,
		ExpiresAt:  time.Now().Add(time.Hour),
		IssuedAt:   time.Now(),
	}
}
