package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portsrepo "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/repositories"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
	"github.com/KilauLaundry/laundry_pos_app/internal/utils"
)

var (
	ErrTransactionNotEditable = errors.New("transaction is no longer editable")
	ErrEmptyLineItems         = errors.New("a transaction cannot be paid with no line items")
	ErrNonPositiveTotal       = errors.New("a transaction cannot be paid with a non-positive total")
	ErrBranchInactive         = errors.New("branch is not active")
)

// transactionService owns the transaction lifecycle: Draft is the only
// editable state, MarkPaid and Cancel are terminal transitions committed via
// compare-and-swap at the repository. Losing a race surfaces ErrConflict to
// the caller; transitions are never retried silently.
type transactionService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepositoryFacade
	branchRepo portsrepo.BranchReader
	machineSvc portssvc.MachineSvcFacade
	catalogSvc portssvc.CatalogSvcFacade
	publisher  portssvc.TransactionEventPublisher
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	branchRepo portsrepo.BranchReader,
	machineSvc portssvc.MachineSvcFacade,
	catalogSvc portssvc.CatalogSvcFacade,
	publisher portssvc.TransactionEventPublisher,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:    txnRepo,
		branchRepo: branchRepo,
		machineSvc: machineSvc,
		catalogSvc: catalogSvc,
		publisher:  publisher,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, cashierID string) (*domain.Transaction, error) {
	branch, err := s.branchRepo.FindBranchByID(ctx, req.BranchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load branch for new transaction: %w", err)
	}
	if !branch.IsActive {
		return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrBranchInactive, branch.BranchID)
	}

	shift := domain.Shift(req.Shift)
	if req.Shift == "" {
		shift = domain.ShiftMorning
	}
	if !shift.IsValid() {
		return nil, fmt.Errorf("%w: invalid shift %q", apperrors.ErrValidation, req.Shift)
	}

	now := time.Now()
	code, err := utils.GenerateTransactionCode(branch.Code, now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate transaction code: %w", err)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Code:          code,
		BranchID:      branch.BranchID,
		CashierID:     cashierID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		TotalAmount:   decimal.Zero,
		Status:        domain.StatusDraft,
		Shift:         shift,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     cashierID,
			LastUpdatedAt: now,
			LastUpdatedBy: cashierID,
		},
	}

	if err := s.txnRepo.CreateTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction draft opened",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("code", txn.Code),
		slog.String("branch_id", txn.BranchID))
	return &txn, nil
}

func (s *transactionService) ReplaceLineItems(ctx context.Context, transactionID string, req dto.ReplaceLineItemsRequest, actorID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction for item update: %w", err)
	}
	if txn.Status != domain.StatusDraft {
		return nil, fmt.Errorf("%w: %w: %s is %s", apperrors.ErrConflict, ErrTransactionNotEditable, transactionID, txn.Status)
	}

	now := time.Now()
	items := make([]domain.LineItem, 0, len(req.Items))
	for i, itemReq := range req.Items {
		name, unitPrice, err := s.catalogSvc.ResolveLineItem(ctx, txn.BranchID, itemReq.Kind, itemReq.RefID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve line item %d: %w", i, err)
		}

		item := domain.LineItem{
			LineItemID:    uuid.NewString(),
			TransactionID: txn.TransactionID,
			Kind:          itemReq.Kind,
			Name:          name,
			UnitPrice:     unitPrice,
			Quantity:      itemReq.Quantity,
			Subtotal:      unitPrice.Mul(decimal.NewFromInt(itemReq.Quantity)),
			Position:      i,
		}

		if itemReq.MachineID != nil {
			machine, err := s.machineSvc.GetMachineByID(ctx, *itemReq.MachineID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve machine for line item %d: %w", i, err)
			}
			if machine.BranchID != txn.BranchID {
				return nil, fmt.Errorf("%w: machine %s belongs to another branch", apperrors.ErrValidation, machine.MachineID)
			}
			label := machine.Label()
			item.MachineID = &machine.MachineID
			item.MachineLabel = &label
		}

		items = append(items, item)
	}

	total := domain.SumLineItems(items)
	if err := s.txnRepo.ReplaceLineItems(ctx, txn.TransactionID, items, total, actorID, now); err != nil {
		return nil, fmt.Errorf("failed to replace line items: %w", err)
	}

	return s.txnRepo.FindTransactionByID(ctx, txn.TransactionID)
}

func (s *transactionService) MarkPaid(ctx context.Context, transactionID string, method domain.PaymentMethod, actorID string) (*domain.Transaction, error) {
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: invalid payment method %q", apperrors.ErrValidation, method)
	}

	current, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction for payment: %w", err)
	}
	if len(current.LineItems) == 0 {
		return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrEmptyLineItems, transactionID)
	}
	if !current.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrNonPositiveTotal, transactionID)
	}

	now := time.Now()
	patch := portsrepo.TransactionStatusPatch{
		Status:        domain.StatusPaid,
		PaymentMethod: &method,
		PaidAt:        &now,
		UpdatedBy:     actorID,
		UpdatedAt:     now,
	}

	paid, err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, domain.StatusDraft, patch)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "transaction paid",
		slog.String("transaction_id", paid.TransactionID),
		slog.String("code", paid.Code),
		slog.String("method", string(method)),
		slog.String("total", paid.TotalAmount.String()))

	if s.publisher != nil {
		if err := s.publisher.PublishTransactionPaid(ctx, paid); err != nil {
			s.LogWarn(ctx, "failed to publish paid event",
				slog.String("transaction_id", paid.TransactionID),
				slog.String("error", err.Error()))
		}
	}
	return paid, nil
}

func (s *transactionService) CancelTransaction(ctx context.Context, transactionID string, actorID string) (*domain.Transaction, error) {
	now := time.Now()
	patch := portsrepo.TransactionStatusPatch{
		Status:      domain.StatusCancelled,
		CancelledAt: &now,
		UpdatedBy:   actorID,
		UpdatedAt:   now,
	}

	cancelled, err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, domain.StatusDraft, patch)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "transaction cancelled",
		slog.String("transaction_id", cancelled.TransactionID),
		slog.String("code", cancelled.Code))

	if s.publisher != nil {
		if err := s.publisher.PublishTransactionCancelled(ctx, cancelled); err != nil {
			s.LogWarn(ctx, "failed to publish cancelled event",
				slog.String("transaction_id", cancelled.TransactionID),
				slog.String("error", err.Error()))
		}
	}
	return cancelled, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction by ID: %w", err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var status *domain.TransactionStatus
	if params.Status != nil {
		st := domain.TransactionStatus(*params.Status)
		status = &st
	}

	txns, nextToken, err := s.txnRepo.ListTransactionsByBranch(ctx, params.BranchID, status, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}
