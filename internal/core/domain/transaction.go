package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus indicates where a transaction sits in its lifecycle.
// DRAFT is the only editable state; PAID and CANCELLED are terminal.
type TransactionStatus string

const (
	StatusDraft     TransactionStatus = "DRAFT"
	StatusPaid      TransactionStatus = "PAID"
	StatusCancelled TransactionStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition exists out of the status.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// PaymentMethod is how a paid transaction was settled.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentQRIS PaymentMethod = "QRIS"
)

// IsValid reports whether the method is one the register accepts.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCash || m == PaymentQRIS
}

// Shift is the operating window the cashier session belongs to.
type Shift string

const (
	ShiftMorning Shift = "MORNING"
	ShiftNight   Shift = "NIGHT"
)

// IsValid reports whether the shift is a known operating window.
func (s Shift) IsValid() bool {
	return s == ShiftMorning || s == ShiftNight
}

// LineItemKind distinguishes service work from over-the-counter products.
type LineItemKind string

const (
	ItemService LineItemKind = "SERVICE"
	ItemProduct LineItemKind = "PRODUCT"
)

// LineItem is a single priced row on a transaction. Subtotal is always
// UnitPrice * Quantity; it is derived, never set independently.
type LineItem struct {
	LineItemID    string          `json:"lineItemID"`
	TransactionID string          `json:"transactionID"`
	Kind          LineItemKind    `json:"kind"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Quantity      int64           `json:"quantity"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	// Weak reference to the machine the work was assigned to, if any.
	MachineID    *string `json:"machineID,omitempty"`
	MachineLabel *string `json:"machineLabel,omitempty"`
	// Position preserves insertion order; receipts print rows in this order.
	Position int `json:"position"`
}

// Transaction is a single point-of-sale ticket for one customer visit.
type Transaction struct {
	TransactionID string `json:"transactionID"`
	// Code is the human-readable receipt code, unique and immutable once assigned.
	Code          string            `json:"code"`
	BranchID      string            `json:"branchID"`
	CashierID     string            `json:"cashierID"`
	CustomerName  string            `json:"customerName"`
	CustomerPhone *string           `json:"customerPhone,omitempty"`
	LineItems     []LineItem        `json:"lineItems,omitempty"`
	TotalAmount   decimal.Decimal   `json:"totalAmount"`
	Status        TransactionStatus `json:"status"`
	PaymentMethod *PaymentMethod    `json:"paymentMethod,omitempty"`
	Shift         Shift             `json:"shift"`
	PaidAt        *time.Time        `json:"paidAt,omitempty"`
	CancelledAt   *time.Time        `json:"cancelledAt,omitempty"`
	AuditFields
}

// SumLineItems recomputes the total from a set of line items. Callers must use
// this whenever line items change; TotalAmount is never mutated directly.
func SumLineItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}
	return total
}
