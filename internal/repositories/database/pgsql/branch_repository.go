package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portsrepo "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/repositories"
	"github.com/KilauLaundry/laundry_pos_app/internal/models"
	"github.com/KilauLaundry/laundry_pos_app/internal/utils/mapping"
)

type PgxBranchRepository struct {
	BaseRepository
}

// newPgxBranchRepository creates a new repository for branch data.
func newPgxBranchRepository(pool *pgxpool.Pool) portsrepo.BranchRepositoryFacade {
	return &PgxBranchRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BranchRepositoryFacade = (*PgxBranchRepository)(nil)

const branchColumns = `branch_id, code, name, address, phone, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanBranch(row pgx.Row) (*models.Branch, error) {
	var m models.Branch
	err := row.Scan(
		&m.BranchID,
		&m.Code,
		&m.Name,
		&m.Address,
		&m.Phone,
		&m.IsActive,
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

// FindBranchByID retrieves a branch by its ID.
func (r *PgxBranchRepository) FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches WHERE branch_id = $1;`

	m, err := scanBranch(r.Pool.QueryRow(ctx, query, branchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find branch by ID %s: %w", branchID, err)
	}

	branch := mapping.ToDomainBranch(*m)
	return &branch, nil
}

// ListBranches retrieves all branches, optionally including inactive ones.
func (r *PgxBranchRepository) ListBranches(ctx context.Context, includeInactive bool) ([]domain.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches`
	if !includeInactive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []models.Branch
	for rows.Next() {
		m, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating branches: %w", err)
	}
	return mapping.ToDomainBranchSlice(branches), nil
}

// SaveBranch inserts or updates a branch.
func (r *PgxBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	m := mapping.ToModelBranch(branch)
	query := `
		INSERT INTO branches (` + branchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (branch_id) DO UPDATE
		SET name = EXCLUDED.name, address = EXCLUDED.address, phone = EXCLUDED.phone, is_active = EXCLUDED.is_active,
		    last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BranchID, m.Code, m.Name, m.Address, m.Phone, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: branch code %q already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save branch %s: %w", m.BranchID, err)
	}
	return nil
}
