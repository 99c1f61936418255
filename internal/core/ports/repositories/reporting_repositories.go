package repositories

import (
	"context"
	"time"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
)

// ReportingRepository defines the read-only aggregation queries that feed the
// owner/collector/investor dashboards. Only paid transactions count.
type ReportingRepository interface {
	// GetRevenueRows aggregates paid revenue per branch, day and shift. A nil
	// branchID spans all branches.
	GetRevenueRows(ctx context.Context, branchID *string, from, to time.Time) ([]domain.RevenueRow, error)

	// GetPaymentMethodRows aggregates the paid-transaction split per payment method.
	GetPaymentMethodRows(ctx context.Context, branchID *string, from, to time.Time) ([]domain.PaymentMethodRow, error)
}
