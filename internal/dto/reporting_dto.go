package dto

import (
	"time"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RevenueReportParams scopes an aggregation query. A nil BranchID spans all
// branches.
type RevenueReportParams struct {
	BranchID *string   `form:"branchID"`
	From     time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To       time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}

// RevenueRowResponse is one branch/day/shift revenue bucket.
type RevenueRowResponse struct {
	BranchID     string          `json:"branchID"`
	BranchName   string          `json:"branchName"`
	Day          string          `json:"day"`
	Shift        string          `json:"shift"`
	Transactions int64           `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
	Formatted    string          `json:"formatted"`
}

// RevenueReportResponse wraps the revenue rows with a grand total.
type RevenueReportResponse struct {
	Rows           []RevenueRowResponse `json:"rows"`
	TotalRevenue   decimal.Decimal      `json:"totalRevenue"`
	TotalFormatted string               `json:"totalFormatted"`
}

// PaymentMethodRowResponse is the split for one payment method.
type PaymentMethodRowResponse struct {
	Method       string          `json:"method"`
	Transactions int64           `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
	Formatted    string          `json:"formatted"`
}

// PaymentMethodReportResponse wraps the payment-method split.
type PaymentMethodReportResponse struct {
	Rows []PaymentMethodRowResponse `json:"rows"`
}

// ToRevenueRowResponse converts a domain.RevenueRow (Formatted filled by the service).
func ToRevenueRowResponse(r domain.RevenueRow) RevenueRowResponse {
	return RevenueRowResponse{
		BranchID:     r.BranchID,
		BranchName:   r.BranchName,
		Day:          r.Day.Format("2006-01-02"),
		Shift:        string(r.Shift),
		Transactions: r.Transactions,
		Revenue:      r.Revenue,
	}
}
