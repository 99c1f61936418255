package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	portsrepo "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/repositories"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
	"github.com/KilauLaundry/laundry_pos_app/internal/utils"
)

// reportingService serves the aggregated revenue views. Read-only; only paid
// transactions ever count toward revenue.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetRevenueReport(ctx context.Context, params dto.RevenueReportParams) (*dto.RevenueReportResponse, error) {
	if params.To.Before(params.From) {
		return nil, fmt.Errorf("%w: report range end precedes start", apperrors.ErrValidation)
	}

	rows, err := s.reportingRepo.GetRevenueRows(ctx, params.BranchID, params.From, params.To)
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue rows: %w", err)
	}

	resp := &dto.RevenueReportResponse{
		Rows:         make([]dto.RevenueRowResponse, len(rows)),
		TotalRevenue: decimal.Zero,
	}
	for i, row := range rows {
		r := dto.ToRevenueRowResponse(row)
		r.Formatted = utils.FormatRupiah(row.Revenue)
		resp.Rows[i] = r
		resp.TotalRevenue = resp.TotalRevenue.Add(row.Revenue)
	}
	resp.TotalFormatted = utils.FormatRupiah(resp.TotalRevenue)
	return resp, nil
}

func (s *reportingService) GetPaymentMethodReport(ctx context.Context, params dto.RevenueReportParams) (*dto.PaymentMethodReportResponse, error) {
	if params.To.Before(params.From) {
		return nil, fmt.Errorf("%w: report range end precedes start", apperrors.ErrValidation)
	}

	rows, err := s.reportingRepo.GetPaymentMethodRows(ctx, params.BranchID, params.From, params.To)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment method rows: %w", err)
	}

	resp := &dto.PaymentMethodReportResponse{Rows: make([]dto.PaymentMethodRowResponse, len(rows))}
	for i, row := range rows {
		resp.Rows[i] = dto.PaymentMethodRowResponse{
			Method:       string(row.Method),
			Transactions: row.Transactions,
			Revenue:      row.Revenue,
			Formatted:    utils.FormatRupiah(row.Revenue),
		}
	}
	return resp, nil
}
