package services

import (
	"context"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
)

// TransactionReaderSvc defines read operations over transactions.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction with its line items.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated transaction listing for a branch.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines the lifecycle transitions of a transaction.
// Draft is the only editable state; MarkPaid and Cancel are terminal and
// guarded by compare-and-swap at the store boundary.
type TransactionWriterSvc interface {
	// CreateTransaction opens a new draft for a customer visit.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, cashierID string) (*domain.Transaction, error)

	// ReplaceLineItems swaps the draft's line items and recomputes the total.
	ReplaceLineItems(ctx context.Context, transactionID string, req dto.ReplaceLineItemsRequest, actorID string) (*domain.Transaction, error)

	// MarkPaid transitions Draft -> Paid with the given method.
	MarkPaid(ctx context.Context, transactionID string, method domain.PaymentMethod, actorID string) (*domain.Transaction, error)

	// CancelTransaction transitions Draft -> Cancelled. The record stays in the
	// store as an audit trail.
	CancelTransaction(ctx context.Context, transactionID string, actorID string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
