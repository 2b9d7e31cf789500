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

// identityRepository implements the domain.IdentityRepository interface using GORM.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

// FindByID retrieves a single identity by its unique ID, preloading role profiles.
func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var identityM model.IdentityModel

	err := repo.db.WithContext(ctx).
		Preload("VendorProfile").
		Preload("RiderProfile").
		Where("id = ?", id).
		First(&identityM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return identityM.ToEntity(), nil
}

// FindByLogin retrieves a single identity whose username or email matches the
// login value, preloading role profiles.
func (repo *identityRepository) FindByLogin(ctx context.Context, login string) (*entity.Identity, error) {
	var identityM model.IdentityModel

	err := repo.db.WithContext(ctx).
		Preload("VendorProfile").
		Preload("RiderProfile").
		Where("username = ? OR email = ?", login, login).
		First(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by login")
	}

	return identityM.ToEntity(), nil
}

// Create persists a new identity. Username and email uniqueness is enforced by
// the storage layer; a racing duplicate surfaces as a conflict error here.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	identityM := model.IdentityModelFromEntity(identity)

	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateIdentity.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrIdentityCreationFailed.WrapMessage("missing required identity information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrIdentityCreationFailed.WrapMessage("invalid identity data")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	// Update the entity with the generated ID and timestamps
	identity.ID = identityM.ID
	identity.CreatedAt = identityM.CreatedAt
	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

// Update modifies an existing identity.
func (repo *identityRepository) Update(ctx context.Context, identity *entity.Identity) error {
	identityM := model.IdentityModelFromEntity(identity)

	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ?", identity.ID).
		Updates(map[string]any{
			"username":      identityM.Username,
			"email":         identityM.Email,
			"password_hash": identityM.PasswordHash,
			"role":          identityM.Role,
			"verified":      identityM.Verified,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateIdentity.WrapMessage("username or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update identity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}
