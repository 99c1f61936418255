package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
)

// --- Mock CatalogRepository ---
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListServicesByBranch(ctx context.Context, branchID string) ([]domain.CatalogService, error) {
	args := m.Called(ctx, branchID)
	var entries []domain.CatalogService
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.CatalogService)
	}
	return entries, args.Error(1)
}

func (m *MockCatalogRepository) ListProductsByBranch(ctx context.Context, branchID string) ([]domain.CatalogProduct, error) {
	args := m.Called(ctx, branchID)
	var entries []domain.CatalogProduct
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.CatalogProduct)
	}
	return entries, args.Error(1)
}

func (m *MockCatalogRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.CatalogService, error) {
	args := m.Called(ctx, serviceID)
	var entry *domain.CatalogService
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.CatalogService)
	}
	return entry, args.Error(1)
}

func (m *MockCatalogRepository) FindProductByID(ctx context.Context, productID string) (*domain.CatalogProduct, error) {
	args := m.Called(ctx, productID)
	var entry *domain.CatalogProduct
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.CatalogProduct)
	}
	return entry, args.Error(1)
}

func (m *MockCatalogRepository) SaveService(ctx context.Context, service domain.CatalogService) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockCatalogRepository) SaveProduct(ctx context.Context, product domain.CatalogProduct) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// --- Test Suite ---
type CatalogServiceTestSuite struct {
	suite.Suite
	mockCatalogRepo *MockCatalogRepository
	service         portssvc.CatalogSvcFacade
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.mockCatalogRepo = new(MockCatalogRepository)
	suite.service = services.NewCatalogService(suite.mockCatalogRepo)
}

func (suite *CatalogServiceTestSuite) TestResolveLineItem_Service() {
	ctx := context.Background()
	branchID := uuid.NewString()
	entry := &domain.CatalogService{
		ServiceID: uuid.NewString(),
		BranchID:  branchID,
		Name:      "Cuci Reguler",
		Price:     decimal.NewFromInt(15000),
		IsActive:  true,
	}

	suite.mockCatalogRepo.On("FindServiceByID", ctx, entry.ServiceID).Return(entry, nil).Once()

	name, price, err := suite.service.ResolveLineItem(ctx, branchID, domain.ItemService, entry.ServiceID)

	suite.Require().NoError(err)
	suite.Equal("Cuci Reguler", name)
	suite.True(price.Equal(decimal.NewFromInt(15000)))
}

func (suite *CatalogServiceTestSuite) TestResolveLineItem_InactiveService() {
	ctx := context.Background()
	branchID := uuid.NewString()
	entry := &domain.CatalogService{
		ServiceID: uuid.NewString(),
		BranchID:  branchID,
		Name:      "Cuci Express",
		Price:     decimal.NewFromInt(25000),
		IsActive:  false,
	}

	suite.mockCatalogRepo.On("FindServiceByID", ctx, entry.ServiceID).Return(entry, nil).Once()

	_, _, err := suite.service.ResolveLineItem(ctx, branchID, domain.ItemService, entry.ServiceID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CatalogServiceTestSuite) TestResolveLineItem_ProductFromOtherBranch() {
	ctx := context.Background()
	entry := &domain.CatalogProduct{
		ProductID: uuid.NewString(),
		BranchID:  uuid.NewString(),
		Name:      "Detergen Sachet",
		Price:     decimal.NewFromInt(5000),
		IsActive:  true,
	}

	suite.mockCatalogRepo.On("FindProductByID", ctx, entry.ProductID).Return(entry, nil).Once()

	_, _, err := suite.service.ResolveLineItem(ctx, uuid.NewString(), domain.ItemProduct, entry.ProductID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CatalogServiceTestSuite) TestResolveLineItem_UnknownKind() {
	ctx := context.Background()

	_, _, err := suite.service.ResolveLineItem(ctx, uuid.NewString(), domain.LineItemKind("VOUCHER"), uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CatalogServiceTestSuite) TestCreateService_NegativePrice() {
	ctx := context.Background()
	req := dto.CreateServiceRequest{
		BranchID: uuid.NewString(),
		Name:     "Cuci Reguler",
		Price:    decimal.NewFromInt(-1),
		Unit:     "kg",
	}

	_, err := suite.service.CreateService(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCatalogRepo.AssertNotCalled(suite.T(), "SaveService", mock.Anything, mock.Anything)
}

func (suite *CatalogServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	req := dto.CreateProductRequest{
		BranchID: uuid.NewString(),
		Name:     "Detergen Sachet",
		Price:    decimal.NewFromInt(5000),
		Stock:    100,
	}

	suite.mockCatalogRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.CatalogProduct) bool {
		return p.Name == req.Name && p.IsActive && p.CreatedBy == actorID
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, req, actorID)

	suite.Require().NoError(err)
	suite.NotEmpty(product.ProductID)
	suite.mockCatalogRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestCatalogService(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
