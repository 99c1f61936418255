package services

import (
	"context"

	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
)

// ReportingSvcFacade serves the aggregated revenue views consumed by the
// owner, collector and investor dashboards. Read-only.
type ReportingSvcFacade interface {
	// GetRevenueReport aggregates paid revenue per branch, day and shift.
	GetRevenueReport(ctx context.Context, params dto.RevenueReportParams) (*dto.RevenueReportResponse, error)

	// GetPaymentMethodReport aggregates the cash/QRIS split for paid transactions.
	GetPaymentMethodReport(ctx context.Context, params dto.RevenueReportParams) (*dto.PaymentMethodReportResponse, error)
}
