package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portsrepo "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for reporting queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetRevenueRows aggregates paid revenue per branch, day and shift. Drafts and
// cancellations never count; revenue is recognized at paid_at.
func (r *PgxReportingRepository) GetRevenueRows(ctx context.Context, branchID *string, from, to time.Time) ([]domain.RevenueRow, error) {
	query := `
		SELECT t.branch_id, b.name, date_trunc('day', t.paid_at) AS day, t.shift,
		       COUNT(*) AS transactions, COALESCE(SUM(t.total_amount), 0) AS revenue
		FROM transactions t
		JOIN branches b ON b.branch_id = t.branch_id
		WHERE t.status = 'PAID' AND t.paid_at >= $1 AND t.paid_at < $2
	`
	args := []any{from, to}
	if branchID != nil {
		args = append(args, *branchID)
		query += fmt.Sprintf(" AND t.branch_id = $%d", len(args))
	}
	query += `
		GROUP BY t.branch_id, b.name, day, t.shift
		ORDER BY day, b.name, t.shift;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue rows: %w", err)
	}
	defer rows.Close()

	var result []domain.RevenueRow
	for rows.Next() {
		var row domain.RevenueRow
		var shift string
		if err := rows.Scan(&row.BranchID, &row.BranchName, &row.Day, &shift, &row.Transactions, &row.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		row.Shift = domain.Shift(shift)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating revenue rows: %w", err)
	}
	return result, nil
}

// GetPaymentMethodRows aggregates the paid-transaction split per payment method.
func (r *PgxReportingRepository) GetPaymentMethodRows(ctx context.Context, branchID *string, from, to time.Time) ([]domain.PaymentMethodRow, error) {
	query := `
		SELECT payment_method, COUNT(*) AS transactions, COALESCE(SUM(total_amount), 0) AS revenue
		FROM transactions
		WHERE status = 'PAID' AND paid_at >= $1 AND paid_at < $2
	`
	args := []any{from, to}
	if branchID != nil {
		args = append(args, *branchID)
		query += fmt.Sprintf(" AND branch_id = $%d", len(args))
	}
	query += `
		GROUP BY payment_method
		ORDER BY payment_method;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment method rows: %w", err)
	}
	defer rows.Close()

	var result []domain.PaymentMethodRow
	for rows.Next() {
		var row domain.PaymentMethodRow
		var method string
		if err := rows.Scan(&method, &row.Transactions, &row.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan payment method row: %w", err)
		}
		row.Method = domain.PaymentMethod(method)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating payment method rows: %w", err)
	}
	return result, nil
}
