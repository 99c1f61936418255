package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueRow is one aggregated reporting bucket: a branch's paid revenue for
// one day and shift.
type RevenueRow struct {
	BranchID     string          `json:"branchID"`
	BranchName   string          `json:"branchName"`
	Day          time.Time       `json:"day"`
	Shift        Shift           `json:"shift"`
	Transactions int64           `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// PaymentMethodRow is the paid-transaction split for one payment method.
type PaymentMethodRow struct {
	Method       PaymentMethod   `json:"method"`
	Transactions int64           `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
}
