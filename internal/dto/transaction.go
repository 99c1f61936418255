package dto

import (
	"time"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest opens a new draft for a customer visit. Shift is
// optional; when omitted it is taken from the cashier's session claims.
type CreateTransactionRequest struct {
	BranchID      string  `json:"branchID" binding:"required"`
	CustomerName  string  `json:"customerName" binding:"required"`
	CustomerPhone *string `json:"customerPhone"`
	Shift         string  `json:"shift" binding:"omitempty,oneof=MORNING NIGHT"`
}

// LineItemRequest references a priced catalog entry; name and unit price are
// resolved at the catalog boundary, never trusted from the client.
type LineItemRequest struct {
	Kind      domain.LineItemKind `json:"kind" binding:"required,oneof=SERVICE PRODUCT"`
	RefID     string              `json:"refID" binding:"required"`
	Quantity  int64               `json:"quantity" binding:"required,gt=0"`
	MachineID *string             `json:"machineID"`
}

// ReplaceLineItemsRequest swaps the full line-item set of a draft.
type ReplaceLineItemsRequest struct {
	Items []LineItemRequest `json:"items" binding:"required,dive"`
}

// SelectPaymentMethodRequest records the operator's chosen method (step one).
type SelectPaymentMethodRequest struct {
	Method domain.PaymentMethod `json:"method" binding:"required,oneof=CASH QRIS"`
}

// ConfirmPaymentRequest commits the payment (step two). Confirm must be
// explicitly true; the two-step flow exists to prevent one-tap mistakes.
type ConfirmPaymentRequest struct {
	Method  domain.PaymentMethod `json:"method" binding:"required,oneof=CASH QRIS"`
	Confirm bool                 `json:"confirm" binding:"required"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	BranchID  string  `form:"branchID" binding:"required"`
	Status    *string `form:"status" binding:"omitempty,oneof=DRAFT PAID CANCELLED"`
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// LineItemResponse is a single priced row as returned to clients.
type LineItemResponse struct {
	LineItemID   string          `json:"lineItemID"`
	Kind         string          `json:"kind"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Quantity     int64           `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	MachineID    *string         `json:"machineID,omitempty"`
	MachineLabel *string         `json:"machineLabel,omitempty"`
}

// TransactionResponse is the full transaction view.
type TransactionResponse struct {
	TransactionID string             `json:"transactionID"`
	Code          string             `json:"code"`
	BranchID      string             `json:"branchID"`
	CashierID     string             `json:"cashierID"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone *string            `json:"customerPhone,omitempty"`
	LineItems     []LineItemResponse `json:"lineItems"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	Status        string             `json:"status"`
	PaymentMethod *string            `json:"paymentMethod,omitempty"`
	Shift         string             `json:"shift"`
	PaidAt        *time.Time         `json:"paidAt,omitempty"`
	CancelledAt   *time.Time         `json:"cancelledAt,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// ListTransactionsResponse wraps a transaction page with its pagination token.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToLineItemResponse converts a domain.LineItem to its response DTO.
func ToLineItemResponse(item domain.LineItem) LineItemResponse {
	return LineItemResponse{
		LineItemID:   item.LineItemID,
		Kind:         string(item.Kind),
		Name:         item.Name,
		UnitPrice:    item.UnitPrice,
		Quantity:     item.Quantity,
		Subtotal:     item.Subtotal,
		MachineID:    item.MachineID,
		MachineLabel: item.MachineLabel,
	}
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(tx *domain.Transaction) TransactionResponse {
	items := make([]LineItemResponse, len(tx.LineItems))
	for i, item := range tx.LineItems {
		items[i] = ToLineItemResponse(item)
	}
	var method *string
	if tx.PaymentMethod != nil {
		m := string(*tx.PaymentMethod)
		method = &m
	}
	return TransactionResponse{
		TransactionID: tx.TransactionID,
		Code:          tx.Code,
		BranchID:      tx.BranchID,
		CashierID:     tx.CashierID,
		CustomerName:  tx.CustomerName,
		CustomerPhone: tx.CustomerPhone,
		LineItems:     items,
		TotalAmount:   tx.TotalAmount,
		Status:        string(tx.Status),
		PaymentMethod: method,
		Shift:         string(tx.Shift),
		PaidAt:        tx.PaidAt,
		CancelledAt:   tx.CancelledAt,
		CreatedAt:     tx.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txs []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txs))
	for i := range txs {
		responses[i] = ToTransactionResponse(&txs[i])
	}
	return responses
}
