package impl

import (
	"context"
	"testing"

	"varse/internal/domain/entity"
	"varse/internal/domain/repository"
	mockRepo "varse/internal/mocks/repository"
	mockSvc "varse/internal/mocks/service"
	"varse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	qrcodeSvc *mockSvc.MockQRCodeService
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)

	service := NewProfileService(txManager, qrcodeSvc, newDiscardLogger())

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
		qrcodeSvc: qrcodeSvc,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()
	identity := &entity.Identity{
		ID:       identityID,
		Username: "testuser",
		Role:     entity.RoleVendor,
		VendorProfile: &entity.VendorProfile{
			IdentityID:   identityID,
			BusinessName: "Noodle House",
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockIdentityRepo.EXPECT().FindByID(ctx, identityID).Return(identity, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	found, err := fx.service.GetProfile(ctx, identityID)

	require.NoError(t, err)
	assert.Equal(t, identityID, found.ID)
	require.NotNil(t, found.VendorProfile)
	assert.Equal(t, "Noodle House", found.VendorProfile.BusinessName)
}

func TestProfileService_RegisterVendor_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()
	identity := &entity.Identity{ID: identityID, Role: entity.RoleVendor}
	input := &usecase.VendorProfileInput{
		BusinessName:    "Noodle House",
		BusinessAddress: "1 Market St",
		BusinessPhone:   "0912345678",
		BusinessEmail:   "shop@example.com",
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

			mockProfileRepo.EXPECT().
				CreateVendorProfile(ctx, mock.AnythingOfType("*entity.VendorProfile")).
				Run(func(ctx context.Context, profile *entity.VendorProfile) {
					assert.Equal(t, identityID, profile.IdentityID)
					assert.False(t, profile.Approved)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	profile, err := fx.service.RegisterVendor(ctx, identityID, input)

	require.NoError(t, err)
	assert.Equal(t, "Noodle House", profile.BusinessName)
	assert.False(t, profile.Approved)
}

func TestProfileService_RegisterRider_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()
	identity := &entity.Identity{ID: identityID, Role: entity.RoleRider}
	input := &usecase.RiderProfileInput{
		PhoneNumber:  "0911222333",
		VehicleType:  "bicycle",
		VehiclePlate: "ABC-123",
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

			mockProfileRepo.EXPECT().
				CreateRiderProfile(ctx, mock.AnythingOfType("*entity.RiderProfile")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	profile, err := fx.service.RegisterRider(ctx, identityID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.VehicleBicycle, profile.VehicleType)
	assert.True(t, profile.Available)
	assert.False(t, profile.Approved)
}

func TestProfileService_SetVendorApproval_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()
	profile := &entity.VendorProfile{IdentityID: identityID, BusinessName: "Noodle House"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockProfileRepo.EXPECT().FindVendorProfile(ctx, identityID).Return(profile, nil)

			mockProfileRepo.EXPECT().
				UpdateVendorProfile(ctx, mock.AnythingOfType("*entity.VendorProfile")).
				Run(func(ctx context.Context, updated *entity.VendorProfile) {
					assert.True(t, updated.Approved)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.SetVendorApproval(ctx, identityID, true)

	assert.NoError(t, err)
}

func TestProfileService_SetVendorApproval_NoChangeSkipsUpdate(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()
	profile := &entity.VendorProfile{IdentityID: identityID, Approved: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			// Already approved; no update expected.
			mockProfileRepo.EXPECT().FindVendorProfile(ctx, identityID).Return(profile, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.SetVendorApproval(ctx, identityID, true)

	assert.NoError(t, err)
}

func TestProfileService_SetRiderAvailability_Toggle(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()
	profile := &entity.RiderProfile{IdentityID: identityID, Approved: true, Available: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockProfileRepo.EXPECT().FindRiderProfile(ctx, identityID).Return(profile, nil)

			mockProfileRepo.EXPECT().
				UpdateRiderProfile(ctx, mock.AnythingOfType("*entity.RiderProfile")).
				Run(func(ctx context.Context, updated *entity.RiderProfile) {
					assert.False(t, updated.Available)
					// Approval is not touched by the availability toggle.
					assert.True(t, updated.Approved)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.SetRiderAvailability(ctx, identityID, false)

	assert.NoError(t, err)
}

func TestProfileService_SetVerification_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()
	identity := &entity.Identity{ID: identityID, Role: entity.RoleCustomer}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)

			mockIdentityRepo.EXPECT().FindByID(ctx, identityID).Return(identity, nil)

			mockIdentityRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Identity")).
				Run(func(ctx context.Context, updated *entity.Identity) {
					assert.True(t, updated.Verified)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.SetVerification(ctx, identityID, true)

	assert.NoError(t, err)
}

func TestProfileService_StoreQR_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()
	profile := &entity.VendorProfile{IdentityID: identityID, BusinessName: "Noodle House"}
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().FindVendorProfile(ctx, identityID).Return(profile, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.qrcodeSvc.EXPECT().GenerateStoreQR(identityID).Return(png, nil)

	data, err := fx.service.StoreQR(ctx, identityID)

	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func TestProfileService_StoreQR_NotFound(t *testing.T) {
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
				FindVendorProfile(ctx, identityID).
				Return(nil, repository.ErrVendorProfileNotFound)

			_ = fn(mockFactory)
		}).
		Return(repository.ErrVendorProfileNotFound)

	data, err := fx.service.StoreQR(ctx, identityID)

	assert.Error(t, err)
	assert.Nil(t, data)
}
