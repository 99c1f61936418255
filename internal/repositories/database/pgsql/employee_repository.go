package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portsrepo "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/repositories"
	"github.com/KilauLaundry/laundry_pos_app/internal/models"
	"github.com/KilauLaundry/laundry_pos_app/internal/utils/mapping"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `employee_id, username, name, email, password_hash, role, branch_id, auth_provider, provider_user_id, refresh_token_hash, deleted_at, created_at, created_by, last_updated_at, last_updated_by`

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.Username,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.Role,
		&m.BranchID,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.RefreshTokenHash,
		&m.DeletedAt,
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

func (r *PgxEmployeeRepository) findEmployee(ctx context.Context, where string, arg ...any) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE ` + where + `;`

	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, arg...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	employee := mapping.ToDomainEmployee(*m)
	return &employee, nil
}

// FindEmployeeByID retrieves an employee by id.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return r.findEmployee(ctx, `employee_id = $1`, employeeID)
}

// FindEmployeeByUsername retrieves an employee by username. Soft-deleted
// accounts are excluded so usernames can be reused.
func (r *PgxEmployeeRepository) FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	return r.findEmployee(ctx, `username = $1 AND deleted_at IS NULL`, username)
}

// FindEmployeeByProviderID retrieves an employee by OAuth provider identity.
func (r *PgxEmployeeRepository) FindEmployeeByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.Employee, error) {
	return r.findEmployee(ctx, `auth_provider = $1 AND provider_user_id = $2 AND deleted_at IS NULL`, string(provider), providerUserID)
}

// ListEmployees retrieves employees, optionally filtered by branch.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, branchID *string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE deleted_at IS NULL`
	var args []any
	if branchID != nil {
		args = append(args, *branchID)
		query += ` AND branch_id = $1`
	}
	query += ` ORDER BY username;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating employees: %w", err)
	}
	return mapping.ToDomainEmployeeSlice(employees), nil
}

// SaveEmployee inserts or updates an employee.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (employee_id) DO UPDATE
		SET name = EXCLUDED.name, email = EXCLUDED.email, password_hash = EXCLUDED.password_hash,
		    role = EXCLUDED.role, branch_id = EXCLUDED.branch_id,
		    last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.Username, m.Name, m.Email, m.PasswordHash, m.Role, m.BranchID,
		m.AuthProvider, m.ProviderUserID, m.RefreshTokenHash, m.DeletedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: username %q already exists", apperrors.ErrDuplicate, m.Username)
		}
		return fmt.Errorf("failed to save employee %s: %w", m.EmployeeID, err)
	}
	return nil
}

// UpdateRefreshTokenHash stores the hash of the employee's current refresh token.
func (r *PgxEmployeeRepository) UpdateRefreshTokenHash(ctx context.Context, employeeID string, tokenHash string, updatedAt time.Time) error {
	query := `UPDATE employees SET refresh_token_hash = $2, last_updated_at = $3 WHERE employee_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, employeeID, tokenHash, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update refresh token hash for %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkEmployeeDeleted soft-deletes an employee account.
func (r *PgxEmployeeRepository) MarkEmployeeDeleted(ctx context.Context, employeeID string, deletedBy string, deletedAt time.Time) error {
	query := `
		UPDATE employees
		SET deleted_at = $2, refresh_token_hash = '', last_updated_at = $2, last_updated_by = $3
		WHERE employee_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, employeeID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark employee %s deleted: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
