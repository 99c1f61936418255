package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
)

// paymentService drives the two-step confirmation in front of the
// Draft -> Paid transition. Flows are in-memory per process; the durable
// transition itself is guarded by compare-and-swap in the transaction
// service, so a lost flow on restart costs nothing but a re-selection.
type paymentService struct {
	BaseService
	txnSvc portssvc.TransactionSvcFacade

	mu    sync.Mutex
	flows map[string]*domain.PaymentFlow
}

// NewPaymentService creates a new payment confirmation service.
func NewPaymentService(txnSvc portssvc.TransactionSvcFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		txnSvc: txnSvc,
		flows:  make(map[string]*domain.PaymentFlow),
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) SelectPaymentMethod(ctx context.Context, transactionID string, method domain.PaymentMethod) (*domain.PaymentFlow, error) {
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: invalid payment method %q", apperrors.ErrValidation, method)
	}

	txn, err := s.txnSvc.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: %s is %s", apperrors.ErrConflict, transactionID, txn.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	flow := &domain.PaymentFlow{
		TransactionID: transactionID,
		Step:          domain.PaymentSelecting,
		Method:        &method,
	}
	s.flows[transactionID] = flow
	return flow, nil
}

func (s *paymentService) ConfirmPayment(ctx context.Context, transactionID string, method domain.PaymentMethod, actorID string) (*domain.Transaction, error) {
	s.mu.Lock()
	flow, ok := s.flows[transactionID]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: no payment method selected for %s", apperrors.ErrConflict, transactionID)
	}
	if flow.Step == domain.PaymentConfirming {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: payment for %s is already being confirmed", apperrors.ErrConflict, transactionID)
	}
	if flow.Step != domain.PaymentSelecting {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: no payment method selected for %s", apperrors.ErrConflict, transactionID)
	}
	if flow.Method == nil || *flow.Method != method {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: confirmed method does not match selected method", apperrors.ErrValidation)
	}
	// CONFIRMING marks the commit as in flight; a second confirm for the
	// same transaction bounces until this one settles.
	flow.Step = domain.PaymentConfirming
	s.mu.Unlock()

	paid, err := s.txnSvc.MarkPaid(ctx, transactionID, method, actorID)
	if err != nil {
		// Roll back to SELECTING_METHOD so the operator can retry or abandon.
		s.mu.Lock()
		flow.Step = domain.PaymentSelecting
		s.mu.Unlock()
		s.LogWarn(ctx, "payment confirmation failed",
			slog.String("transaction_id", transactionID),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.mu.Lock()
	flow.Step = domain.PaymentCompleted
	delete(s.flows, transactionID)
	s.mu.Unlock()

	return paid, nil
}

func (s *paymentService) GetFlow(transactionID string) domain.PaymentFlow {
	s.mu.Lock()
	defer s.mu.Unlock()
	if flow, ok := s.flows[transactionID]; ok {
		return *flow
	}
	return domain.PaymentFlow{TransactionID: transactionID, Step: domain.PaymentIdle}
}
