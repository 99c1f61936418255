package services

import (
	"context"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
)

// TransactionEventPublisher emits lifecycle events to the message broker so
// downstream consumers (notifications, bookkeeping exports) can react without
// polling. Publishing is best-effort; a broker outage never fails the sale.
type TransactionEventPublisher interface {
	// PublishTransactionPaid announces a completed Draft -> Paid transition.
	PublishTransactionPaid(ctx context.Context, tx *domain.Transaction) error

	// PublishTransactionCancelled announces a Draft -> Cancelled transition.
	PublishTransactionCancelled(ctx context.Context, tx *domain.Transaction) error
}
