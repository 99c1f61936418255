package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portsrepo "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/repositories"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByBranch(ctx context.Context, branchID string, status *domain.TransactionStatus, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, branchID, status, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, tx domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) ReplaceLineItems(ctx context.Context, transactionID string, items []domain.LineItem, total decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, transactionID, items, total, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, expected domain.TransactionStatus, patch portsrepo.TransactionStatusPatch) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, expected, patch)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

// --- Mock BranchReader ---
type MockBranchReader struct {
	mock.Mock
}

func (m *MockBranchReader) FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	args := m.Called(ctx, branchID)
	var branch *domain.Branch
	if args.Get(0) != nil {
		branch = args.Get(0).(*domain.Branch)
	}
	return branch, args.Error(1)
}

func (m *MockBranchReader) ListBranches(ctx context.Context, includeInactive bool) ([]domain.Branch, error) {
	args := m.Called(ctx, includeInactive)
	var branches []domain.Branch
	if args.Get(0) != nil {
		branches = args.Get(0).([]domain.Branch)
	}
	return branches, args.Error(1)
}

// --- Mock MachineSvc ---
type MockMachineSvc struct {
	mock.Mock
}

func (m *MockMachineSvc) ListMachines(ctx context.Context, branchID string) ([]domain.Machine, error) {
	args := m.Called(ctx, branchID)
	var machines []domain.Machine
	if args.Get(0) != nil {
		machines = args.Get(0).([]domain.Machine)
	}
	return machines, args.Error(1)
}

func (m *MockMachineSvc) GetMachineByID(ctx context.Context, machineID string) (*domain.Machine, error) {
	args := m.Called(ctx, machineID)
	var machine *domain.Machine
	if args.Get(0) != nil {
		machine = args.Get(0).(*domain.Machine)
	}
	return machine, args.Error(1)
}

func (m *MockMachineSvc) SetStatus(ctx context.Context, machineID string, status domain.MachineStatus, actorID string) (*domain.Machine, error) {
	args := m.Called(ctx, machineID, status, actorID)
	var machine *domain.Machine
	if args.Get(0) != nil {
		machine = args.Get(0).(*domain.Machine)
	}
	return machine, args.Error(1)
}

func (m *MockMachineSvc) BulkSetAvailable(ctx context.Context, branchID string, actorID string) (dto.BulkResetResponse, error) {
	args := m.Called(ctx, branchID, actorID)
	return args.Get(0).(dto.BulkResetResponse), args.Error(1)
}

// --- Mock CatalogSvc ---
type MockCatalogSvc struct {
	mock.Mock
}

func (m *MockCatalogSvc) ListServices(ctx context.Context, branchID string) ([]domain.CatalogService, error) {
	args := m.Called(ctx, branchID)
	var entries []domain.CatalogService
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.CatalogService)
	}
	return entries, args.Error(1)
}

func (m *MockCatalogSvc) ListProducts(ctx context.Context, branchID string) ([]domain.CatalogProduct, error) {
	args := m.Called(ctx, branchID)
	var entries []domain.CatalogProduct
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.CatalogProduct)
	}
	return entries, args.Error(1)
}

func (m *MockCatalogSvc) ResolveLineItem(ctx context.Context, branchID string, kind domain.LineItemKind, refID string) (string, decimal.Decimal, error) {
	args := m.Called(ctx, branchID, kind, refID)
	return args.String(0), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockCatalogSvc) CreateService(ctx context.Context, req dto.CreateServiceRequest, actorID string) (*domain.CatalogService, error) {
	args := m.Called(ctx, req, actorID)
	var entry *domain.CatalogService
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.CatalogService)
	}
	return entry, args.Error(1)
}

func (m *MockCatalogSvc) CreateProduct(ctx context.Context, req dto.CreateProductRequest, actorID string) (*domain.CatalogProduct, error) {
	args := m.Called(ctx, req, actorID)
	var entry *domain.CatalogProduct
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.CatalogProduct)
	}
	return entry, args.Error(1)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo    *MockTransactionRepository
	mockBranchRepo *MockBranchReader
	mockMachineSvc *MockMachineSvc
	mockCatalogSvc *MockCatalogSvc
	service        portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockBranchRepo = new(MockBranchReader)
	suite.mockMachineSvc = new(MockMachineSvc)
	suite.mockCatalogSvc = new(MockCatalogSvc)
	suite.service = services.NewTransactionService(
		suite.mockTxnRepo,
		suite.mockBranchRepo,
		suite.mockMachineSvc,
		suite.mockCatalogSvc,
		nil,
	)
}

// --- CreateTransaction Tests ---
func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	cashierID := uuid.NewString()
	branch := &domain.Branch{BranchID: uuid.NewString(), Code: "JKT01", IsActive: true}
	req := dto.CreateTransactionRequest{
		BranchID:     branch.BranchID,
		CustomerName: "Budi",
		Shift:        "MORNING",
	}

	suite.mockBranchRepo.On("FindBranchByID", ctx, branch.BranchID).Return(branch, nil).Once()
	suite.mockTxnRepo.On("CreateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Status == domain.StatusDraft &&
			txn.CustomerName == "Budi" &&
			txn.CashierID == cashierID &&
			txn.TotalAmount.IsZero() &&
			txn.Code != ""
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, cashierID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.StatusDraft, txn.Status)
	suite.Contains(txn.Code, "TRX-JKT01-")
	suite.NotEmpty(txn.TransactionID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockBranchRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InactiveBranch() {
	ctx := context.Background()
	branch := &domain.Branch{BranchID: uuid.NewString(), Code: "JKT01", IsActive: false}
	req := dto.CreateTransactionRequest{BranchID: branch.BranchID, CustomerName: "Budi"}

	suite.mockBranchRepo.On("FindBranchByID", ctx, branch.BranchID).Return(branch, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, services.ErrBranchInactive)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

// --- ReplaceLineItems Tests ---
func (suite *TransactionServiceTestSuite) TestReplaceLineItems_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	branchID := uuid.NewString()
	serviceID := uuid.NewString()
	machineID := uuid.NewString()
	draft := &domain.Transaction{
		TransactionID: uuid.NewString(),
		BranchID:      branchID,
		Status:        domain.StatusDraft,
	}
	machine := &domain.Machine{
		MachineID: machineID,
		BranchID:  branchID,
		Type:      domain.MachineWasher,
		Number:    3,
	}
	price := decimal.NewFromInt(15000)
	req := dto.ReplaceLineItemsRequest{Items: []dto.LineItemRequest{
		{Kind: domain.ItemService, RefID: serviceID, Quantity: 2, MachineID: &machineID},
	}}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, draft.TransactionID).Return(draft, nil).Twice()
	suite.mockCatalogSvc.On("ResolveLineItem", ctx, branchID, domain.ItemService, serviceID).Return("Cuci Reguler", price, nil).Once()
	suite.mockMachineSvc.On("GetMachineByID", ctx, machineID).Return(machine, nil).Once()
	suite.mockTxnRepo.On("ReplaceLineItems", ctx, draft.TransactionID, mock.MatchedBy(func(items []domain.LineItem) bool {
		if len(items) != 1 {
			return false
		}
		item := items[0]
		return item.Name == "Cuci Reguler" &&
			item.Subtotal.Equal(decimal.NewFromInt(30000)) &&
			item.MachineLabel != nil && *item.MachineLabel == "Washer 3" &&
			item.Position == 0
	}), mock.MatchedBy(func(total decimal.Decimal) bool {
		return total.Equal(decimal.NewFromInt(30000))
	}), actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	_, err := suite.service.ReplaceLineItems(ctx, draft.TransactionID, req, actorID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockCatalogSvc.AssertExpectations(suite.T())
	suite.mockMachineSvc.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestReplaceLineItems_NotDraft() {
	ctx := context.Background()
	paid := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Status:        domain.StatusPaid,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, paid.TransactionID).Return(paid, nil).Once()

	_, err := suite.service.ReplaceLineItems(ctx, paid.TransactionID, dto.ReplaceLineItemsRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrTransactionNotEditable)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ReplaceLineItems", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestReplaceLineItems_MachineFromOtherBranch() {
	ctx := context.Background()
	branchID := uuid.NewString()
	machineID := uuid.NewString()
	serviceID := uuid.NewString()
	draft := &domain.Transaction{
		TransactionID: uuid.NewString(),
		BranchID:      branchID,
		Status:        domain.StatusDraft,
	}
	foreignMachine := &domain.Machine{MachineID: machineID, BranchID: uuid.NewString()}
	req := dto.ReplaceLineItemsRequest{Items: []dto.LineItemRequest{
		{Kind: domain.ItemService, RefID: serviceID, Quantity: 1, MachineID: &machineID},
	}}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, draft.TransactionID).Return(draft, nil).Once()
	suite.mockCatalogSvc.On("ResolveLineItem", ctx, branchID, domain.ItemService, serviceID).Return("Cuci Reguler", decimal.NewFromInt(15000), nil).Once()
	suite.mockMachineSvc.On("GetMachineByID", ctx, machineID).Return(foreignMachine, nil).Once()

	_, err := suite.service.ReplaceLineItems(ctx, draft.TransactionID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- MarkPaid Tests ---
func (suite *TransactionServiceTestSuite) TestMarkPaid_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	now := time.Now()
	draft := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Status:        domain.StatusDraft,
		LineItems:     []domain.LineItem{{Subtotal: decimal.NewFromInt(15000)}},
		TotalAmount:   decimal.NewFromInt(15000),
	}
	paid := &domain.Transaction{
		TransactionID: draft.TransactionID,
		Status:        domain.StatusPaid,
		PaidAt:        &now,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, draft.TransactionID).Return(draft, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionStatus", ctx, draft.TransactionID, domain.StatusDraft, mock.MatchedBy(func(patch portsrepo.TransactionStatusPatch) bool {
		return patch.Status == domain.StatusPaid &&
			patch.PaymentMethod != nil && *patch.PaymentMethod == domain.PaymentCash &&
			patch.PaidAt != nil
	})).Return(paid, nil).Once()

	result, err := suite.service.MarkPaid(ctx, draft.TransactionID, domain.PaymentCash, actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, result.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestMarkPaid_EmptyLineItems() {
	ctx := context.Background()
	draft := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Status:        domain.StatusDraft,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, draft.TransactionID).Return(draft, nil).Once()

	_, err := suite.service.MarkPaid(ctx, draft.TransactionID, domain.PaymentQRIS, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEmptyLineItems)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransactionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestMarkPaid_ZeroTotal() {
	ctx := context.Background()
	draft := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Status:        domain.StatusDraft,
		LineItems:     []domain.LineItem{{Subtotal: decimal.Zero}},
		TotalAmount:   decimal.Zero,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, draft.TransactionID).Return(draft, nil).Once()

	_, err := suite.service.MarkPaid(ctx, draft.TransactionID, domain.PaymentCash, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNonPositiveTotal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransactionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestMarkPaid_ConflictFromLostRace() {
	ctx := context.Background()
	draft := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Status:        domain.StatusDraft,
		LineItems:     []domain.LineItem{{Subtotal: decimal.NewFromInt(15000)}},
		TotalAmount:   decimal.NewFromInt(15000),
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, draft.TransactionID).Return(draft, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionStatus", ctx, draft.TransactionID, domain.StatusDraft, mock.Anything).Return(nil, apperrors.ErrConflict).Once()

	_, err := suite.service.MarkPaid(ctx, draft.TransactionID, domain.PaymentCash, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *TransactionServiceTestSuite) TestMarkPaid_InvalidMethod() {
	ctx := context.Background()

	_, err := suite.service.MarkPaid(ctx, uuid.NewString(), domain.PaymentMethod("CHEQUE"), uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

// --- CancelTransaction Tests ---
func (suite *TransactionServiceTestSuite) TestCancelTransaction_Success() {
	ctx := context.Background()
	now := time.Now()
	txnID := uuid.NewString()
	cancelled := &domain.Transaction{
		TransactionID: txnID,
		Status:        domain.StatusCancelled,
		CancelledAt:   &now,
	}

	suite.mockTxnRepo.On("UpdateTransactionStatus", ctx, txnID, domain.StatusDraft, mock.MatchedBy(func(patch portsrepo.TransactionStatusPatch) bool {
		return patch.Status == domain.StatusCancelled && patch.CancelledAt != nil && patch.PaymentMethod == nil
	})).Return(cancelled, nil).Once()

	result, err := suite.service.CancelTransaction(ctx, txnID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCancelled, result.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCancelTransaction_AlreadyTerminal() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockTxnRepo.On("UpdateTransactionStatus", ctx, txnID, domain.StatusDraft, mock.Anything).Return(nil, apperrors.ErrConflict).Once()

	_, err := suite.service.CancelTransaction(ctx, txnID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

// --- ListTransactions Tests ---
func (suite *TransactionServiceTestSuite) TestListTransactions_DefaultsLimit() {
	ctx := context.Background()
	branchID := uuid.NewString()
	params := dto.ListTransactionsParams{BranchID: branchID, Limit: 0}

	suite.mockTxnRepo.On("ListTransactionsByBranch", ctx, branchID, (*domain.TransactionStatus)(nil), 20, (*string)(nil)).
		Return([]domain.Transaction{}, nil, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, params)

	suite.Require().NoError(err)
	suite.Empty(resp.Transactions)
	suite.Nil(resp.NextToken)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RepoError() {
	ctx := context.Background()
	branchID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockTxnRepo.On("ListTransactionsByBranch", ctx, branchID, (*domain.TransactionStatus)(nil), 20, (*string)(nil)).
		Return(nil, nil, expectedErr).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{BranchID: branchID, Limit: 20})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
