// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"varse/internal/domain/entity"
	domainerrors "varse/internal/domain/errors"
	"varse/internal/domain/repository"
	"varse/internal/domain/service"
	"varse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// hashToken derives the storage form of a refresh token. Raw tokens are never persisted.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// Register orchestrates the complete registration process. The identity and,
// when role fields are supplied, its role profile are created in one
// transaction; racing duplicates are resolved by the storage uniqueness
// constraints, not by application-level locking.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting registration", "username", input.Username, "role", input.Role)

	role := entity.Role(input.Role)
	if !role.Registrable() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("role is not open for registration")
	}

	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrPasswordMismatch.WrapMessage("registration failed")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	var registered *entity.Identity

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()
		profileRepo := repoFactory.ProfileRepo()

		newIdentity := &entity.Identity{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Role:         role,
		}

		if err := identityRepo.Create(ctx, newIdentity); err != nil {
			return errors.WithStack(err)
		}

		switch {
		case role == entity.RoleVendor && input.Vendor != nil:
			profile, err := buildVendorProfile(newIdentity.ID, input.Vendor)
			if err != nil {
				return err
			}
			if err := profileRepo.CreateVendorProfile(ctx, profile); err != nil {
				return errors.WithStack(err)
			}
			newIdentity.VendorProfile = profile
		case role == entity.RoleRider && input.Rider != nil:
			profile, err := buildRiderProfile(newIdentity.ID, input.Rider)
			if err != nil {
				return err
			}
			if err := profileRepo.CreateRiderProfile(ctx, profile); err != nil {
				return errors.WithStack(err)
			}
			newIdentity.RiderProfile = profile
		}

		registered = newIdentity

		return nil
	})

	if err != nil {
		srv.logger.Warn("Registration failed", "username", input.Username, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}
	srv.logger.Debug("Identity registered successfully", "identityID", registered.ID)

	return &usecase.RegisterOutput{Identity: registered}, nil
}

// Login orchestrates the login process. The failure is identical whether the
// login value is unknown or the password is wrong.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", "login", input.Login)

	var loggedIn *entity.Identity
	var accessToken, refreshTokenString string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		identity, err := identityRepo.FindByLogin(ctx, input.Login)
		if err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				// Indistinguishable from a wrong password.
				return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
			}

			return errors.Wrap(err, "failed to find identity by login")
		}

		if !srv.hasher.Check(input.Password, identity.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokens(identity.ID, identity.Role)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		newRefreshToken := &entity.RefreshToken{
			IdentityID: identity.ID,
			TokenHash:  hashToken(refreshTokenString),
			ExpiresAt:  time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		}

		if err := refreshRepo.Create(ctx, newRefreshToken); err != nil {
			return errors.WithStack(err)
		}
		loggedIn = identity

		return nil
	})

	if err != nil {
		srv.logger.Warn("Login failed", "login", input.Login, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}
	srv.logger.Debug("Logged in successfully", "identityID", loggedIn.ID)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		Identity:     loggedIn,
	}, nil
}

// Refresh rotates a refresh token: the presented token must carry a valid
// refresh signature and still exist in storage; the old session record is
// replaced by the new one.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.logger.Debug("Attempting to refresh token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("invalid refresh token")
	}

	var newAccessToken, newRefreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		oldHash := hashToken(input.RefreshToken)
		if _, err := refreshRepo.FindByHash(ctx, oldHash); err != nil {
			return domainerrors.ErrInvalidToken.WrapMessage("refresh token not found or expired")
		}

		identity, err := identityRepo.FindByID(ctx, claims.IdentityID)
		if err != nil {
			return domainerrors.ErrInvalidToken.WrapMessage("identity no longer exists")
		}

		newAccessToken, newRefreshTokenString, err = srv.tokenService.GenerateTokens(identity.ID, identity.Role)
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		newRefreshToken := &entity.RefreshToken{
			IdentityID: identity.ID,
			TokenHash:  hashToken(newRefreshTokenString),
			ExpiresAt:  time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		}
		if err := refreshRepo.Create(ctx, newRefreshToken); err != nil {
			return errors.WithStack(err)
		}

		if err := refreshRepo.DeleteByHash(ctx, oldHash); err != nil {
			// The caller already holds a valid new token; losing the old
			// record is not worth failing the rotation.
			srv.logger.Warn("Failed to delete old refresh token", "error", err)
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Failed to execute refresh token transaction", "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshTokenString,
	}, nil
}

// LogoutAll ends every session of the identity at once.
func (srv *authService) LogoutAll(ctx context.Context, identityID uuid.UUID) error {
	srv.logger.Info("Logging out all sessions", "identityID", identityID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		return errors.Wrap(refreshRepo.DeleteByIdentityID(ctx, identityID), "failed to delete refresh tokens")
	})

	if err != nil {
		srv.logger.Error("Failed to execute logout-all transaction", "error", err.Error())

		return errors.Wrap(err, "failed to execute logout-all transaction")
	}

	return nil
}

// CleanupExpiredSessions removes expired refresh tokens from storage.
func (srv *authService) CleanupExpiredSessions(ctx context.Context) error {
	srv.logger.Info("Cleaning up expired sessions")

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		return errors.Wrap(refreshRepo.DeleteExpired(ctx), "failed to delete expired refresh tokens")
	})

	if err != nil {
		srv.logger.Error("Failed to cleanup expired sessions", "error", err.Error())

		return errors.Wrap(err, "failed to cleanup expired sessions")
	}

	return nil
}

// Logout ends a session by deleting its refresh token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.logger.Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// Even with an invalid token, proceed to delete whatever hash it maps to.
		srv.logger.Warn("Logout with invalid token", "error", err)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()
		if err := refreshRepo.DeleteByHash(ctx, hashToken(input.RefreshToken)); err != nil {
			return errors.Wrap(err, "failed to delete refresh token")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute logout transaction", "error", err.Error())

		return errors.Wrap(err, "failed to execute logout transaction")
	}
	srv.logger.Info("Successfully logged out")

	return nil
}
