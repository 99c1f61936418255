package repositories

import (
	"context"
	"time"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionStatusPatch is the set of fields a status transition writes.
// The repository applies it only when the stored status still matches the
// expected status (compare-and-swap); the loser of a race gets ErrConflict.
type TransactionStatusPatch struct {
	Status        domain.TransactionStatus
	PaymentMethod *domain.PaymentMethod
	PaidAt        *time.Time
	CancelledAt   *time.Time
	UpdatedBy     string
	UpdatedAt     time.Time
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its line items.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByBranch retrieves a page of transactions for a branch,
	// optionally filtered by status, using token-based pagination.
	ListTransactionsByBranch(ctx context.Context, branchID string, status *domain.TransactionStatus, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// CreateTransaction persists a new draft with its (possibly empty) line items.
	CreateTransaction(ctx context.Context, tx domain.Transaction) error

	// ReplaceLineItems swaps the full line-item set and the derived total in one
	// database transaction, guarded on the stored status still being DRAFT.
	ReplaceLineItems(ctx context.Context, transactionID string, items []domain.LineItem, total decimal.Decimal, updatedBy string, updatedAt time.Time) error

	// UpdateTransactionStatus applies a status transition via compare-and-swap:
	// the update succeeds only while the stored status equals expected. Returns
	// ErrConflict when the CAS loses, ErrNotFound when the row does not exist.
	UpdateTransactionStatus(ctx context.Context, transactionID string, expected domain.TransactionStatus, patch TransactionStatusPatch) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
