package impl

import (
	"context"
	"testing"
	"time"

	"varse/internal/domain/entity"
	domainerrors "varse/internal/domain/errors"
	"varse/internal/domain/repository"
	mockRepo "varse/internal/mocks/repository"
	mockSvc "varse/internal/mocks/service"
	"varse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(txManager, hasher, tokenService, newDiscardLogger())

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username:        "testuser",
		Email:           "test@example.com",
		Password:        "Password123!",
		ConfirmPassword: "Password123!",
		Role:            "customer",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockIdentityRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Identity")).
				Run(func(ctx context.Context, identity *entity.Identity) {
					identity.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Username, output.Identity.Username)
	assert.Equal(t, entity.RoleCustomer, output.Identity.Role)
	assert.Equal(t, "hashed_password", output.Identity.PasswordHash)
	assert.Nil(t, output.Identity.VendorProfile)
	assert.Nil(t, output.Identity.RiderProfile)
}

func TestAuthService_Register_VendorWithProfile(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username:        "noodlehouse",
		Email:           "shop@example.com",
		Password:        "Password123!",
		ConfirmPassword: "Password123!",
		Role:            "vendor",
		Vendor: &usecase.VendorProfileInput{
			BusinessName:    "Noodle House",
			BusinessAddress: "1 Market St",
			BusinessPhone:   "0912345678",
			BusinessEmail:   "shop@example.com",
		},
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockIdentityRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Identity")).
				Run(func(ctx context.Context, identity *entity.Identity) {
					identity.ID = uuid.New()
				}).
				Return(nil)

			mockProfileRepo.EXPECT().
				CreateVendorProfile(ctx, mock.AnythingOfType("*entity.VendorProfile")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output.Identity.VendorProfile)
	assert.Equal(t, "Noodle House", output.Identity.VendorProfile.BusinessName)
	assert.Equal(t, output.Identity.ID, output.Identity.VendorProfile.IdentityID)
	// New vendor profiles must wait for administrative approval.
	assert.False(t, output.Identity.VendorProfile.Approved)
}

func TestAuthService_Register_RiderStartsAvailable(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username:        "fastrider",
		Email:           "rider@example.com",
		Password:        "Password123!",
		ConfirmPassword: "Password123!",
		Role:            "rider",
		Rider: &usecase.RiderProfileInput{
			PhoneNumber: "0911222333",
			VehicleType: "motorcycle",
		},
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockIdentityRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Identity")).
				Run(func(ctx context.Context, identity *entity.Identity) {
					identity.ID = uuid.New()
				}).
				Return(nil)

			mockProfileRepo.EXPECT().
				CreateRiderProfile(ctx, mock.AnythingOfType("*entity.RiderProfile")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output.Identity.RiderProfile)
	assert.Equal(t, entity.VehicleMotorcycle, output.Identity.RiderProfile.VehicleType)
	assert.True(t, output.Identity.RiderProfile.Available)
	assert.False(t, output.Identity.RiderProfile.Approved)
	// Available but unapproved riders must not be dispatchable.
	assert.False(t, output.Identity.RiderProfile.Dispatchable())
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username:        "testuser",
		Email:           "test@example.com",
		Password:        "Password123!",
		ConfirmPassword: "Different123!",
		Role:            "customer",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestAuthService_Register_AdminRoleRejected(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username:        "sneaky",
		Email:           "sneaky@example.com",
		Password:        "Password123!",
		ConfirmPassword: "Password123!",
		Role:            "admin",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_Register_DuplicateIdentity(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username:        "taken",
		Email:           "taken@example.com",
		Password:        "Password123!",
		ConfirmPassword: "Password123!",
		Role:            "customer",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockIdentityRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Identity")).
				Return(domainerrors.ErrDuplicateIdentity)

			_ = fn(mockFactory)
		}).
		Return(errors.WithStack(domainerrors.ErrDuplicateIdentity))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentity))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	identityID := uuid.New()
	identity := &entity.Identity{
		ID:           identityID,
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleCustomer,
	}

	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(identityID, entity.RoleCustomer).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockIdentityRepo.EXPECT().FindByLogin(ctx, "testuser").Return(identity, nil)

			mockRefreshRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(ctx context.Context, token *entity.RefreshToken) {
					// Only the hash of the raw token may reach storage.
					assert.Equal(t, hashToken("refresh_token"), token.TokenHash)
					assert.Equal(t, identityID, token.IdentityID)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "testuser", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, identityID, output.Identity.ID)
}

func TestAuthService_Login_UnknownLogin(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockIdentityRepo.EXPECT().
				FindByLogin(ctx, "ghost").
				Return(nil, repository.ErrIdentityNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.WithStack(domainerrors.ErrInvalidCredentials))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "ghost", Password: "whatever"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_RepositoryFailureIsNotCredentialError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	dbErr := errors.New("connection refused")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockIdentityRepo.EXPECT().
				FindByLogin(ctx, "alice").
				Return(nil, dbErr)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(dbErr, "failed to find identity by login"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "alice", Password: "whatever"})

	assert.Nil(t, output)
	assert.Error(t, err)
	// Only the unknown-login and wrong-password cases collapse into the
	// credential failure; infrastructure errors must stay distinguishable.
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(err, dbErr))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	identity := &entity.Identity{
		ID:           uuid.New(),
		Username:     "testuser",
		PasswordHash: "hashed_password",
		Role:         entity.RoleCustomer,
	}

	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockIdentityRepo.EXPECT().FindByLogin(ctx, "testuser").Return(identity, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.WithStack(domainerrors.ErrInvalidCredentials))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "testuser", Password: "wrong"})

	assert.Nil(t, output)
	// The failure must be indistinguishable from an unknown login.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	identityID := uuid.New()
	identity := &entity.Identity{ID: identityID, Role: entity.RoleCustomer}
	oldRaw := "old_refresh_token"
	oldHash := hashToken(oldRaw)

	fx.tokenService.EXPECT().
		ValidateRefreshToken(oldRaw).
		Return(newRefreshClaims(identityID), nil)
	fx.tokenService.EXPECT().
		GenerateTokens(identityID, entity.RoleCustomer).
		Return("new_access", "new_refresh", nil)
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().
				FindByHash(ctx, oldHash).
				Return(&entity.RefreshToken{IdentityID: identityID, TokenHash: oldHash}, nil)

			mockIdentityRepo.EXPECT().FindByID(ctx, identityID).Return(identity, nil)

			mockRefreshRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(ctx context.Context, token *entity.RefreshToken) {
					assert.Equal(t, hashToken("new_refresh"), token.TokenHash)
				}).
				Return(nil)

			mockRefreshRepo.EXPECT().DeleteByHash(ctx, oldHash).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshTokenInput{RefreshToken: oldRaw})

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
}

func TestAuthService_Refresh_InvalidSignature(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token signature is invalid"))

	output, err := fx.service.Refresh(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_Refresh_RevokedToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	identityID := uuid.New()
	raw := "revoked_refresh_token"

	fx.tokenService.EXPECT().
		ValidateRefreshToken(raw).
		Return(newRefreshClaims(identityID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().
				FindByHash(ctx, hashToken(raw)).
				Return(nil, repository.ErrRefreshTokenNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.WithStack(domainerrors.ErrInvalidToken))

	output, err := fx.service.Refresh(ctx, &usecase.RefreshTokenInput{RefreshToken: raw})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	raw := "refresh_token"

	fx.tokenService.EXPECT().
		ValidateRefreshToken(raw).
		Return(newRefreshClaims(uuid.New()), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().DeleteByHash(ctx, hashToken(raw)).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: raw})

	assert.NoError(t, err)
}

func TestAuthService_LogoutAll_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	identityID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().DeleteByIdentityID(ctx, identityID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.LogoutAll(ctx, identityID)

	assert.NoError(t, err)
}

func TestAuthService_CleanupExpiredSessions(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().DeleteExpired(ctx).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.CleanupExpiredSessions(ctx)

	assert.NoError(t, err)
}

func TestAuthService_Logout_InvalidTokenStillDeletes(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	raw := "not_even_a_jwt"

	fx.tokenService.EXPECT().
		ValidateRefreshToken(raw).
		Return(nil, errors.New("token is malformed"))

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().DeleteByHash(ctx, hashToken(raw)).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: raw})

	assert.NoError(t, err)
}
