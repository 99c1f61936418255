package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus mirrors the domain lifecycle states at the DB layer.
type TransactionStatus string

const (
	Draft     TransactionStatus = "DRAFT"
	Paid      TransactionStatus = "PAID"
	Cancelled TransactionStatus = "CANCELLED"
)

// Transaction is a row in the transactions table.
type Transaction struct {
	TransactionID string            `db:"transaction_id"`
	Code          string            `db:"code"`
	BranchID      string            `db:"branch_id"`
	CashierID     string            `db:"cashier_id"`
	CustomerName  string            `db:"customer_name"`
	CustomerPhone *string           `db:"customer_phone"` // Nullable
	TotalAmount   decimal.Decimal   `db:"total_amount"`
	Status        TransactionStatus `db:"status"`
	PaymentMethod *string           `db:"payment_method"` // Nullable, set when PAID
	Shift         string            `db:"shift"`
	PaidAt        *time.Time        `db:"paid_at"`
	CancelledAt   *time.Time        `db:"cancelled_at"`
	AuditFields
}

// LineItem is a row in the line_items table. Rows are replaced as a set while
// the parent transaction is a draft, never updated in place.
type LineItem struct {
	LineItemID    string          `db:"line_item_id"`
	TransactionID string          `db:"transaction_id"`
	Kind          string          `db:"kind"`
	Name          string          `db:"name"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	Quantity      int64           `db:"quantity"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	MachineID     *string         `db:"machine_id"` // Nullable weak reference
	MachineLabel  *string         `db:"machine_label"`
	Position      int             `db:"position"`
}
