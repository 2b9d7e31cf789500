// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"varse/internal/domain/entity"
	domainerrors "varse/internal/domain/errors"
	"varse/internal/domain/repository"
	"varse/internal/domain/service"
	"varse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	qrcodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	qrcodeSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		qrcodeSvc: qrcodeSvc,
		logger:    logger,
	}
}

// buildVendorProfile maps a vendor registration payload onto a new profile.
// The profile always starts unapproved.
func buildVendorProfile(identityID uuid.UUID, input *usecase.VendorProfileInput) (*entity.VendorProfile, error) {
	if input.BusinessName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("business name is required")
	}

	return &entity.VendorProfile{
		IdentityID:          identityID,
		BusinessName:        input.BusinessName,
		BusinessAddress:     input.BusinessAddress,
		BusinessPhone:       input.BusinessPhone,
		BusinessEmail:       input.BusinessEmail,
		BusinessDescription: input.BusinessDescription,
	}, nil
}

// buildRiderProfile maps a rider registration payload onto a new profile.
// The profile starts unapproved but available.
func buildRiderProfile(identityID uuid.UUID, input *usecase.RiderProfileInput) (*entity.RiderProfile, error) {
	vehicle := entity.VehicleType(input.VehicleType)
	if !vehicle.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown vehicle type")
	}

	return &entity.RiderProfile{
		IdentityID:   identityID,
		PhoneNumber:  input.PhoneNumber,
		VehicleType:  vehicle,
		VehiclePlate: input.VehiclePlate,
		Available:    true,
	}, nil
}

// GetProfile retrieves the complete identity including role-specific data.
func (srv *profileService) GetProfile(ctx context.Context, identityID uuid.UUID) (*entity.Identity, error) {
	srv.logger.Debug("Getting profile", "identityID", identityID)

	var identity *entity.Identity

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()

		found, err := identityRepo.FindByID(ctx, identityID)
		if err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("identity not found")
			}

			return errors.Wrap(err, "failed to find identity")
		}
		identity = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return identity, nil
}

// RegisterVendor creates the vendor profile for an identity whose role is vendor.
func (srv *profileService) RegisterVendor(ctx context.Context, identityID uuid.UUID, input *usecase.VendorProfileInput) (*entity.VendorProfile, error) {
	srv.logger.Info("Registering vendor profile", "identityID", identityID)

	var created *entity.VendorProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()
		profileRepo := repoFactory.ProfileRepo()

		identity, err := identityRepo.FindByID(ctx, identityID)
		if err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("identity not found")
			}

			return errors.Wrap(err, "failed to find identity")
		}

		if identity.Role != entity.RoleVendor {
			return domainerrors.ErrRoleMismatch.WrapMessage("identity role is not vendor")
		}
		if identity.VendorProfile != nil {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("vendor profile already exists")
		}

		profile, err := buildVendorProfile(identityID, input)
		if err != nil {
			return err
		}
		if err := profileRepo.CreateVendorProfile(ctx, profile); err != nil {
			return errors.WithStack(err)
		}
		created = profile

		return nil
	})

	if err != nil {
		srv.logger.Warn("Vendor profile registration failed", "identityID", identityID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute vendor profile registration transaction")
	}

	return created, nil
}

// RegisterRider creates the rider profile for an identity whose role is rider.
func (srv *profileService) RegisterRider(ctx context.Context, identityID uuid.UUID, input *usecase.RiderProfileInput) (*entity.RiderProfile, error) {
	srv.logger.Info("Registering rider profile", "identityID", identityID)

	var created *entity.RiderProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()
		profileRepo := repoFactory.ProfileRepo()

		identity, err := identityRepo.FindByID(ctx, identityID)
		if err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("identity not found")
			}

			return errors.Wrap(err, "failed to find identity")
		}

		if identity.Role != entity.RoleRider {
			return domainerrors.ErrRoleMismatch.WrapMessage("identity role is not rider")
		}
		if identity.RiderProfile != nil {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("rider profile already exists")
		}

		profile, err := buildRiderProfile(identityID, input)
		if err != nil {
			return err
		}
		if err := profileRepo.CreateRiderProfile(ctx, profile); err != nil {
			return errors.WithStack(err)
		}
		created = profile

		return nil
	})

	if err != nil {
		srv.logger.Warn("Rider profile registration failed", "identityID", identityID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute rider profile registration transaction")
	}

	return created, nil
}

// SetVendorApproval flips a vendor profile's approval flag. Idempotent.
func (srv *profileService) SetVendorApproval(ctx context.Context, identityID uuid.UUID, approved bool) error {
	srv.logger.Info("Setting vendor approval", "identityID", identityID, "approved", approved)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindVendorProfile(ctx, identityID)
		if err != nil {
			if errors.Is(err, repository.ErrVendorProfileNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("vendor profile not found")
			}

			return errors.Wrap(err, "failed to find vendor profile")
		}

		if profile.Approved == approved {
			return nil
		}
		profile.Approved = approved

		return errors.Wrap(profileRepo.UpdateVendorProfile(ctx, profile), "failed to update vendor profile")
	})

	return errors.Wrap(err, "failed to set vendor approval")
}

// SetRiderApproval flips a rider profile's approval flag. Idempotent.
func (srv *profileService) SetRiderApproval(ctx context.Context, identityID uuid.UUID, approved bool) error {
	srv.logger.Info("Setting rider approval", "identityID", identityID, "approved", approved)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindRiderProfile(ctx, identityID)
		if err != nil {
			if errors.Is(err, repository.ErrRiderProfileNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("rider profile not found")
			}

			return errors.Wrap(err, "failed to find rider profile")
		}

		if profile.Approved == approved {
			return nil
		}
		profile.Approved = approved

		return errors.Wrap(profileRepo.UpdateRiderProfile(ctx, profile), "failed to update rider profile")
	})

	return errors.Wrap(err, "failed to set rider approval")
}

// SetRiderAvailability toggles a rider's availability. The toggle is free in
// both directions; dispatch must still check approval via Dispatchable.
func (srv *profileService) SetRiderAvailability(ctx context.Context, identityID uuid.UUID, available bool) error {
	srv.logger.Debug("Setting rider availability", "identityID", identityID, "available", available)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindRiderProfile(ctx, identityID)
		if err != nil {
			if errors.Is(err, repository.ErrRiderProfileNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("rider profile not found")
			}

			return errors.Wrap(err, "failed to find rider profile")
		}

		if profile.Available == available {
			return nil
		}
		profile.Available = available

		return errors.Wrap(profileRepo.UpdateRiderProfile(ctx, profile), "failed to update rider profile")
	})

	return errors.Wrap(err, "failed to set rider availability")
}

// SetVerification flips an identity's verification flag. Idempotent.
func (srv *profileService) SetVerification(ctx context.Context, identityID uuid.UUID, verified bool) error {
	srv.logger.Info("Setting identity verification", "identityID", identityID, "verified", verified)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()

		identity, err := identityRepo.FindByID(ctx, identityID)
		if err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("identity not found")
			}

			return errors.Wrap(err, "failed to find identity")
		}

		if identity.Verified == verified {
			return nil
		}
		identity.Verified = verified

		return errors.Wrap(identityRepo.Update(ctx, identity), "failed to update identity")
	})

	return errors.Wrap(err, "failed to set verification")
}

// StoreQR renders a storefront QR code for a vendor identity.
func (srv *profileService) StoreQR(ctx context.Context, identityID uuid.UUID) ([]byte, error) {
	srv.logger.Debug("Generating storefront QR code", "identityID", identityID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		if _, err := profileRepo.FindVendorProfile(ctx, identityID); err != nil {
			if errors.Is(err, repository.ErrVendorProfileNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("vendor profile not found")
			}

			return errors.Wrap(err, "failed to find vendor profile")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate storefront QR code")
	}

	png, err := srv.qrcodeSvc.GenerateStoreQR(identityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return png, nil
}
