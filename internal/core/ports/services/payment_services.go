package services

import (
	"context"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
)

// PaymentSvcFacade is the two-step payment confirmation workflow layered on
// top of the Draft -> Paid transition. Selecting a method touches UI state
// only; nothing hits the store until the explicit confirm.
type PaymentSvcFacade interface {
	// SelectPaymentMethod records the operator's chosen method for a draft.
	SelectPaymentMethod(ctx context.Context, transactionID string, method domain.PaymentMethod) (*domain.PaymentFlow, error)

	// ConfirmPayment commits the transition. A state conflict (already paid or
	// cancelled elsewhere) is surfaced, never retried.
	ConfirmPayment(ctx context.Context, transactionID string, method domain.PaymentMethod, actorID string) (*domain.Transaction, error)

	// GetFlow returns the current workflow state for a transaction.
	GetFlow(transactionID string) domain.PaymentFlow
}
