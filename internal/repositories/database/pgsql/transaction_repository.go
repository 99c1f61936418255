package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portsrepo "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/repositories"
	"github.com/KilauLaundry/laundry_pos_app/internal/models"
	"github.com/KilauLaundry/laundry_pos_app/internal/utils/mapping"
	"github.com/KilauLaundry/laundry_pos_app/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, code, branch_id, cashier_id, customer_name, customer_phone, total_amount, status, payment_method, shift, paid_at, cancelled_at, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Code,
		&m.BranchID,
		&m.CashierID,
		&m.CustomerName,
		&m.CustomerPhone,
		&m.TotalAmount,
		&m.Status,
		&m.PaymentMethod,
		&m.Shift,
		&m.PaidAt,
		&m.CancelledAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateTransaction inserts a new draft transaction with its line items.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.Code,
		modelTxn.BranchID,
		modelTxn.CashierID,
		modelTxn.CustomerName,
		modelTxn.CustomerPhone,
		modelTxn.TotalAmount,
		modelTxn.Status,
		modelTxn.PaymentMethod,
		modelTxn.Shift,
		modelTxn.PaidAt,
		modelTxn.CancelledAt,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, modelTxn.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", modelTxn.TransactionID, err)
	}

	if err := insertLineItems(ctx, tx, txn.TransactionID, txn.LineItems); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func insertLineItems(ctx context.Context, tx pgx.Tx, transactionID string, items []domain.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO line_items (line_item_id, transaction_id, kind, name, unit_price, quantity, subtotal, machine_id, machine_label, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, item := range items {
		m := mapping.ToModelLineItem(item)
		batch.Queue(query,
			m.LineItemID,
			transactionID,
			m.Kind,
			m.Name,
			m.UnitPrice,
			m.Quantity,
			m.Subtotal,
			m.MachineID,
			m.MachineLabel,
			m.Position,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range items {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert line item for transaction %s: %w", transactionID, err)
		}
	}
	return nil
}

// FindTransactionByID retrieves a transaction with its line items.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	modelTxn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	items, err := r.findLineItems(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	txn := mapping.ToDomainTransaction(*modelTxn)
	txn.LineItems = items
	return &txn, nil
}

func (r *PgxTransactionRepository) findLineItems(ctx context.Context, transactionID string) ([]domain.LineItem, error) {
	query := `
		SELECT line_item_id, transaction_id, kind, name, unit_price, quantity, subtotal, machine_id, machine_label, position
		FROM line_items
		WHERE transaction_id = $1
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items for %s: %w", transactionID, err)
	}
	defer rows.Close()

	var items []models.LineItem
	for rows.Next() {
		var m models.LineItem
		if err := rows.Scan(
			&m.LineItemID,
			&m.TransactionID,
			&m.Kind,
			&m.Name,
			&m.UnitPrice,
			&m.Quantity,
			&m.Subtotal,
			&m.MachineID,
			&m.MachineLabel,
			&m.Position,
		); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating line items: %w", err)
	}
	return mapping.ToDomainLineItemSlice(items), nil
}

// ListTransactionsByBranch retrieves a page of transactions using keyset
// pagination on (created_at, transaction_id). Line items are not loaded for
// listings; detail reads fetch them.
func (r *PgxTransactionRepository) ListTransactionsByBranch(ctx context.Context, branchID string, status *domain.TransactionStatus, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := []any{branchID}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE branch_id = $1`

	if status != nil {
		args = append(args, string(*status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	if nextToken != nil {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		args = append(args, createdAt, id)
		query += fmt.Sprintf(" AND (created_at, transaction_id) < ($%d, $%d)", len(args)-1, len(args))
	}

	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY created_at DESC, transaction_id DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions for branch %s: %w", branchID, err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed iterating transactions: %w", err)
	}

	var token *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		token = &t
	}
	return txns, token, nil
}

// ReplaceLineItems swaps the draft's full line-item set and its derived total
// in one database transaction. The total update is guarded on status = DRAFT;
// zero rows affected means the draft was paid, cancelled or deleted meanwhile.
func (r *PgxTransactionRepository) ReplaceLineItems(ctx context.Context, transactionID string, items []domain.LineItem, total decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE transactions
		SET total_amount = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1 AND status = $5;
	`
	tag, err := tx.Exec(ctx, updateQuery, transactionID, total, updatedAt, updatedBy, models.Draft)
	if err != nil {
		return fmt.Errorf("failed to update transaction total for %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, transactionID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM line_items WHERE transaction_id = $1;`, transactionID); err != nil {
		return fmt.Errorf("failed to clear line items for %s: %w", transactionID, err)
	}
	if err := insertLineItems(ctx, tx, transactionID, items); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateTransactionStatus applies a lifecycle transition via compare-and-swap:
// the row is updated only while its stored status equals expected. The loser
// of a race sees zero rows affected and gets ErrConflict.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, expected domain.TransactionStatus, patch portsrepo.TransactionStatusPatch) (*domain.Transaction, error) {
	var method *string
	if patch.PaymentMethod != nil {
		m := string(*patch.PaymentMethod)
		method = &m
	}

	query := `
		UPDATE transactions
		SET status = $3, payment_method = $4, paid_at = $5, cancelled_at = $6, last_updated_at = $7, last_updated_by = $8
		WHERE transaction_id = $1 AND status = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		transactionID,
		string(expected),
		string(patch.Status),
		method,
		patch.PaidAt,
		patch.CancelledAt,
		patch.UpdatedAt,
		patch.UpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update status for transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, r.classifyMiss(ctx, transactionID)
	}

	return r.FindTransactionByID(ctx, transactionID)
}

// classifyMiss distinguishes a missing row from a guard mismatch after a
// zero-row update.
func (r *PgxTransactionRepository) classifyMiss(ctx context.Context, transactionID string) error {
	var status string
	err := r.Pool.QueryRow(ctx, `SELECT status FROM transactions WHERE transaction_id = $1;`, transactionID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to re-read transaction %s: %w", transactionID, err)
	}
	return fmt.Errorf("%w: transaction %s is %s", apperrors.ErrConflict, transactionID, status)
}
