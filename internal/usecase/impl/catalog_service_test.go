package impl

import (
	"context"
	"testing"

	"varse/internal/domain/entity"
	"varse/internal/domain/repository"
	mockRepo "varse/internal/mocks/repository"
	"varse/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service   usecase.CatalogUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewCatalogService(txManager, newDiscardLogger())

	return catalogServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func approvedVendorProfile(identityID uuid.UUID) *entity.VendorProfile {
	return &entity.VendorProfile{
		IdentityID:   identityID,
		BusinessName: "Noodle House",
		Approved:     true,
	}
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	input := &usecase.CreateProductInput{
		Name:        "Beef Noodles",
		Description: "House special",
		Price:       decimal.NewFromInt(120),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockProfileRepo.EXPECT().
				FindVendorProfile(ctx, vendorID).
				Return(approvedVendorProfile(vendorID), nil)

			mockProductRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Product")).
				Run(func(ctx context.Context, product *entity.Product) {
					assert.Equal(t, vendorID, product.VendorID)
					assert.NotEqual(t, uuid.Nil, product.ID)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, vendorID, input)

	require.NoError(t, err)
	assert.Equal(t, "Beef Noodles", product.Name)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(120)))
	assert.True(t, product.OwnedBy(vendorID))
}

func TestCatalogService_CreateProduct_WithCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	categoryID := uuid.New()
	input := &usecase.CreateProductInput{
		Name:       "Beef Noodles",
		Price:      decimal.NewFromInt(120),
		CategoryID: &categoryID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockProfileRepo.EXPECT().
				FindVendorProfile(ctx, vendorID).
				Return(approvedVendorProfile(vendorID), nil)

			mockCategoryRepo.EXPECT().
				FindByID(ctx, categoryID).
				Return(&entity.Category{ID: categoryID, Name: "Noodles"}, nil)

			mockProductRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Product")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, vendorID, input)

	require.NoError(t, err)
	require.NotNil(t, product.CategoryID)
	assert.Equal(t, categoryID, *product.CategoryID)
}

func TestCatalogService_ListVendorProducts_ScopedToOwner(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	owned := []*entity.Product{
		{ID: uuid.New(), VendorID: vendorID, Name: "Beef Noodles"},
		{ID: uuid.New(), VendorID: vendorID, Name: "Dumplings"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().ListByVendor(ctx, vendorID).Return(owned, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	products, err := fx.service.ListVendorProducts(ctx, vendorID)

	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.True(t, p.OwnedBy(vendorID))
	}
}

func TestCatalogService_UpdateProduct_PartialFields(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	productID := uuid.New()
	existing := &entity.Product{
		ID:          productID,
		VendorID:    vendorID,
		Name:        "Beef Noodles",
		Description: "House special",
		Price:       decimal.NewFromInt(120),
	}

	newPrice := decimal.NewFromInt(150)
	input := &usecase.UpdateProductInput{Price: &newPrice}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockProfileRepo.EXPECT().
				FindVendorProfile(ctx, vendorID).
				Return(approvedVendorProfile(vendorID), nil)

			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)

			mockProductRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Product")).
				Run(func(ctx context.Context, product *entity.Product) {
					assert.True(t, product.Price.Equal(newPrice))
					// Untouched fields keep their values.
					assert.Equal(t, "Beef Noodles", product.Name)
					assert.Equal(t, "House special", product.Description)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, vendorID, productID, input)

	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(newPrice))
}

func TestCatalogService_DeleteProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	productID := uuid.New()
	existing := &entity.Product{ID: productID, VendorID: vendorID, Name: "Beef Noodles"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockProfileRepo.EXPECT().
				FindVendorProfile(ctx, vendorID).
				Return(approvedVendorProfile(vendorID), nil)

			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)
			mockProductRepo.EXPECT().Delete(ctx, productID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteProduct(ctx, vendorID, productID)

	assert.NoError(t, err)
}

func TestCatalogService_ListPublicProducts_ApprovedVendorsOnly(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	public := []*entity.Product{
		{ID: uuid.New(), VendorID: uuid.New(), Name: "Beef Noodles"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().ListApprovedVendors(ctx).Return(public, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	products, err := fx.service.ListPublicProducts(ctx)

	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCatalogService_CreateCategory_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateCategoryInput{Name: "Noodles", Description: "Noodle dishes"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockCategoryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Category")).
				Run(func(ctx context.Context, category *entity.Category) {
					assert.NotEqual(t, uuid.Nil, category.ID)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Noodles", category.Name)
}

func TestCatalogService_UpdateCategory_PartialFields(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	existing := &entity.Category{ID: categoryID, Name: "Noodles", Description: "Old"}
	newDescription := "Noodle dishes of all kinds"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockCategoryRepo.EXPECT().FindByID(ctx, categoryID).Return(existing, nil)

			mockCategoryRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Category")).
				Run(func(ctx context.Context, category *entity.Category) {
					assert.Equal(t, "Noodles", category.Name)
					assert.Equal(t, newDescription, category.Description)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateCategory(ctx, categoryID, &usecase.UpdateCategoryInput{
		Description: &newDescription,
	})

	require.NoError(t, err)
	assert.Equal(t, newDescription, updated.Description)
}

func TestCatalogService_DeleteCategory_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockCategoryRepo.EXPECT().
				FindByID(ctx, categoryID).
				Return(&entity.Category{ID: categoryID, Name: "Noodles"}, nil)

			mockCategoryRepo.EXPECT().Delete(ctx, categoryID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteCategory(ctx, categoryID)

	assert.NoError(t, err)
}

func TestCatalogService_GetCategory_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().
				FindByID(ctx, categoryID).
				Return(nil, repository.ErrCategoryNotFound)

			_ = fn(mockFactory)
		}).
		Return(repository.ErrCategoryNotFound)

	category, err := fx.service.GetCategory(ctx, categoryID)

	assert.Error(t, err)
	assert.Nil(t, category)
}
