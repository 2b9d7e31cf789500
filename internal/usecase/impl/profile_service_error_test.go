package impl

import (
	"context"
	"testing"

	"varse/internal/domain/entity"
	domainerrors "varse/internal/domain/errors"
	"varse/internal/domain/repository"
	mockRepo "varse/internal/mocks/repository"
	"varse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockIdentityRepo.EXPECT().
				FindByID(ctx, identityID).
				Return(nil, repository.ErrIdentityNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.WithStack(domainerrors.ErrNotFound))

	found, err := fx.service.GetProfile(ctx, identityID)

	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProfileService_RegisterVendor_RoleMismatch(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()
	identity := &entity.Identity{ID: identityID, Role: entity.RoleCustomer}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockIdentityRepo.EXPECT().FindByID(ctx, identityID).Return(identity, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.WithStack(domainerrors.ErrRoleMismatch))

	profile, err := fx.service.RegisterVendor(ctx, identityID, &usecase.VendorProfileInput{
		BusinessName: "Noodle House",
	})

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrRoleMismatch))
}

func TestProfileService_RegisterVendor_AlreadyExists(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()
	identity := &entity.Identity{
		ID:            identityID,
		Role:          entity.RoleVendor,
		VendorProfile: &entity.VendorProfile{IdentityID: identityID},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockIdentityRepo.EXPECT().FindByID(ctx, identityID).Return(identity, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.WithStack(domainerrors.ErrProfileAlreadyExists))

	profile, err := fx.service.RegisterVendor(ctx, identityID, &usecase.VendorProfileInput{
		BusinessName: "Second Shop",
	})

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyExists))
}

func TestProfileService_RegisterRider_UnknownVehicleType(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()
	identity := &entity.Identity{ID: identityID, Role: entity.RoleRider}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockIdentityRepo.EXPECT().FindByID(ctx, identityID).Return(identity, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.WithStack(domainerrors.ErrValidationFailed))

	profile, err := fx.service.RegisterRider(ctx, identityID, &usecase.RiderProfileInput{
		PhoneNumber: "0911222333",
		VehicleType: "skateboard",
	})

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_SetRiderApproval_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().
				FindRiderProfile(ctx, identityID).
				Return(nil, repository.ErrRiderProfileNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.WithStack(domainerrors.ErrNotFound))

	err := fx.service.SetRiderApproval(ctx, identityID, true)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
