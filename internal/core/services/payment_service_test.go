package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
)

// --- Mock TransactionSvc ---
type MockTransactionSvc struct {
	mock.Mock
}

func (m *MockTransactionSvc) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionSvc) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, params)
	var resp *dto.ListTransactionsResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.ListTransactionsResponse)
	}
	return resp, args.Error(1)
}

func (m *MockTransactionSvc) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, cashierID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, cashierID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionSvc) ReplaceLineItems(ctx context.Context, transactionID string, req dto.ReplaceLineItemsRequest, actorID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, actorID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionSvc) MarkPaid(ctx context.Context, transactionID string, method domain.PaymentMethod, actorID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, method, actorID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionSvc) CancelTransaction(ctx context.Context, transactionID string, actorID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, actorID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

// --- Test Suite ---
type PaymentServiceTestSuite struct {
	suite.Suite
	mockTxnSvc *MockTransactionSvc
	service    portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockTxnSvc = new(MockTransactionSvc)
	suite.service = services.NewPaymentService(suite.mockTxnSvc)
}

func (suite *PaymentServiceTestSuite) TestSelectPaymentMethod_Success() {
	ctx := context.Background()
	draft := &domain.Transaction{TransactionID: uuid.NewString(), Status: domain.StatusDraft}

	suite.mockTxnSvc.On("GetTransactionByID", ctx, draft.TransactionID).Return(draft, nil).Once()

	flow, err := suite.service.SelectPaymentMethod(ctx, draft.TransactionID, domain.PaymentCash)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentSelecting, flow.Step)
	suite.Require().NotNil(flow.Method)
	suite.Equal(domain.PaymentCash, *flow.Method)
}

func (suite *PaymentServiceTestSuite) TestSelectPaymentMethod_TerminalTransaction() {
	ctx := context.Background()
	paid := &domain.Transaction{TransactionID: uuid.NewString(), Status: domain.StatusPaid}

	suite.mockTxnSvc.On("GetTransactionByID", ctx, paid.TransactionID).Return(paid, nil).Once()

	flow, err := suite.service.SelectPaymentMethod(ctx, paid.TransactionID, domain.PaymentCash)

	suite.Require().Error(err)
	suite.Nil(flow)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PaymentServiceTestSuite) TestConfirmPayment_WithoutSelection() {
	ctx := context.Background()

	_, err := suite.service.ConfirmPayment(ctx, uuid.NewString(), domain.PaymentCash, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockTxnSvc.AssertNotCalled(suite.T(), "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestConfirmPayment_MethodMismatch() {
	ctx := context.Background()
	draft := &domain.Transaction{TransactionID: uuid.NewString(), Status: domain.StatusDraft}

	suite.mockTxnSvc.On("GetTransactionByID", ctx, draft.TransactionID).Return(draft, nil).Once()

	_, err := suite.service.SelectPaymentMethod(ctx, draft.TransactionID, domain.PaymentCash)
	suite.Require().NoError(err)

	_, err = suite.service.ConfirmPayment(ctx, draft.TransactionID, domain.PaymentQRIS, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnSvc.AssertNotCalled(suite.T(), "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestConfirmPayment_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	now := time.Now()
	draft := &domain.Transaction{TransactionID: uuid.NewString(), Status: domain.StatusDraft}
	paid := &domain.Transaction{TransactionID: draft.TransactionID, Status: domain.StatusPaid, PaidAt: &now}

	suite.mockTxnSvc.On("GetTransactionByID", ctx, draft.TransactionID).Return(draft, nil).Once()
	suite.mockTxnSvc.On("MarkPaid", ctx, draft.TransactionID, domain.PaymentQRIS, actorID).Return(paid, nil).Once()

	_, err := suite.service.SelectPaymentMethod(ctx, draft.TransactionID, domain.PaymentQRIS)
	suite.Require().NoError(err)

	result, err := suite.service.ConfirmPayment(ctx, draft.TransactionID, domain.PaymentQRIS, actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, result.Status)

	// The completed flow is cleared; the next read reports IDLE.
	flow := suite.service.GetFlow(draft.TransactionID)
	suite.Equal(domain.PaymentIdle, flow.Step)
	suite.mockTxnSvc.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestConfirmPayment_ConflictKeepsFlow() {
	ctx := context.Background()
	actorID := uuid.NewString()
	draft := &domain.Transaction{TransactionID: uuid.NewString(), Status: domain.StatusDraft}

	suite.mockTxnSvc.On("GetTransactionByID", ctx, draft.TransactionID).Return(draft, nil).Once()
	suite.mockTxnSvc.On("MarkPaid", ctx, draft.TransactionID, domain.PaymentCash, actorID).Return(nil, apperrors.ErrConflict).Once()

	_, err := suite.service.SelectPaymentMethod(ctx, draft.TransactionID, domain.PaymentCash)
	suite.Require().NoError(err)

	_, err = suite.service.ConfirmPayment(ctx, draft.TransactionID, domain.PaymentCash, actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)

	// The flow rolls back to SELECTING_METHOD so the operator can retry.
	flow := suite.service.GetFlow(draft.TransactionID)
	suite.Equal(domain.PaymentSelecting, flow.Step)
}

func (suite *PaymentServiceTestSuite) TestPaymentFlow_StepProgression() {
	ctx := context.Background()
	actorID := uuid.NewString()
	now := time.Now()
	draft := &domain.Transaction{TransactionID: uuid.NewString(), Status: domain.StatusDraft}
	paid := &domain.Transaction{TransactionID: draft.TransactionID, Status: domain.StatusPaid, PaidAt: &now}

	suite.mockTxnSvc.On("GetTransactionByID", ctx, draft.TransactionID).Return(draft, nil).Once()
	suite.mockTxnSvc.On("MarkPaid", ctx, draft.TransactionID, domain.PaymentCash, actorID).Return(paid, nil).Once()

	suite.Equal(domain.PaymentIdle, suite.service.GetFlow(draft.TransactionID).Step)

	_, err := suite.service.SelectPaymentMethod(ctx, draft.TransactionID, domain.PaymentCash)
	suite.Require().NoError(err)
	suite.Equal(domain.PaymentSelecting, suite.service.GetFlow(draft.TransactionID).Step)

	_, err = suite.service.ConfirmPayment(ctx, draft.TransactionID, domain.PaymentCash, actorID)
	suite.Require().NoError(err)
	suite.Equal(domain.PaymentIdle, suite.service.GetFlow(draft.TransactionID).Step)
}

func (suite *PaymentServiceTestSuite) TestGetFlow_UnknownTransaction() {
	flow := suite.service.GetFlow(uuid.NewString())
	suite.Equal(domain.PaymentIdle, flow.Step)
}

// --- Run Suite ---
func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
