// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"varse/internal/domain/entity"
	domainerrors "varse/internal/domain/errors"
	"varse/internal/domain/repository"
	"varse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// CreateVendorProfile persists a new vendor profile. The identity reference is
// the primary key, so a duplicate profile fails with a conflict.
func (repo *profileRepository) CreateVendorProfile(ctx context.Context, profile *entity.VendorProfile) error {
	profileM := model.VendorProfileModelFromEntity(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("vendor profile already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrIdentityCreationFailed.WrapMessage("invalid identity reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrIdentityCreationFailed.WrapMessage("missing required vendor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindVendorProfile retrieves the vendor profile owned by the given identity.
func (repo *profileRepository) FindVendorProfile(ctx context.Context, identityID uuid.UUID) (*entity.VendorProfile, error) {
	var profileM model.VendorProfileModel

	err := repo.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor profile")
	}

	return profileM.ToEntity(), nil
}

// UpdateVendorProfile modifies an existing vendor profile.
func (repo *profileRepository) UpdateVendorProfile(ctx context.Context, profile *entity.VendorProfile) error {
	profileM := model.VendorProfileModelFromEntity(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.VendorProfileModel{}).
		Where("identity_id = ?", profile.IdentityID).
		Updates(map[string]any{
			"business_name":        profileM.BusinessName,
			"business_address":     profileM.BusinessAddress,
			"business_phone":       profileM.BusinessPhone,
			"business_email":       profileM.BusinessEmail,
			"business_description": profileM.BusinessDescription,
			"approved":             profileM.Approved,
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update vendor profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorProfileNotFound
	}

	return nil
}

// CreateRiderProfile persists a new rider profile.
func (repo *profileRepository) CreateRiderProfile(ctx context.Context, profile *entity.RiderProfile) error {
	profileM := model.RiderProfileModelFromEntity(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("rider profile already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrIdentityCreationFailed.WrapMessage("invalid identity reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrIdentityCreationFailed.WrapMessage("missing required rider information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rider profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindRiderProfile retrieves the rider profile owned by the given identity.
func (repo *profileRepository) FindRiderProfile(ctx context.Context, identityID uuid.UUID) (*entity.RiderProfile, error) {
	var profileM model.RiderProfileModel

	err := repo.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRiderProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find rider profile")
	}

	return profileM.ToEntity(), nil
}

// UpdateRiderProfile modifies an existing rider profile.
func (repo *profileRepository) UpdateRiderProfile(ctx context.Context, profile *entity.RiderProfile) error {
	profileM := model.RiderProfileModelFromEntity(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.RiderProfileModel{}).
		Where("identity_id = ?", profile.IdentityID).
		Updates(map[string]any{
			"phone_number":  profileM.PhoneNumber,
			"vehicle_type":  profileM.VehicleType,
			"vehicle_plate": profileM.VehiclePlate,
			"approved":      profileM.Approved,
			"available":     profileM.Available,
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update rider profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRiderProfileNotFound
	}

	return nil
}
