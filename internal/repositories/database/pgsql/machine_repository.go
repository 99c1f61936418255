package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portsrepo "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/repositories"
	"github.com/KilauLaundry/laundry_pos_app/internal/models"
	"github.com/KilauLaundry/laundry_pos_app/internal/utils/mapping"
)

type PgxMachineRepository struct {
	BaseRepository
}

// newPgxMachineRepository creates a new repository for machine data.
func newPgxMachineRepository(pool *pgxpool.Pool) portsrepo.MachineRepositoryFacade {
	return &PgxMachineRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.MachineRepositoryFacade = (*PgxMachineRepository)(nil)

const machineColumns = `machine_id, branch_id, machine_type, machine_number, status, created_at, created_by, last_updated_at, last_updated_by`

func scanMachine(row pgx.Row) (*models.Machine, error) {
	var m models.Machine
	err := row.Scan(
		&m.MachineID,
		&m.BranchID,
		&m.Type,
		&m.Number,
		&m.Status,
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

// FindMachineByID retrieves a machine by its ID.
func (r *PgxMachineRepository) FindMachineByID(ctx context.Context, machineID string) (*domain.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines WHERE machine_id = $1;`

	m, err := scanMachine(r.Pool.QueryRow(ctx, query, machineID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find machine by ID %s: %w", machineID, err)
	}

	machine := mapping.ToDomainMachine(*m)
	return &machine, nil
}

// ListMachinesByBranch retrieves all machines for a branch ordered by type and number.
func (r *PgxMachineRepository) ListMachinesByBranch(ctx context.Context, branchID string) ([]domain.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines WHERE branch_id = $1 ORDER BY machine_type, machine_number;`

	rows, err := r.Pool.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list machines for branch %s: %w", branchID, err)
	}
	defer rows.Close()

	var machines []models.Machine
	for rows.Next() {
		m, err := scanMachine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan machine: %w", err)
		}
		machines = append(machines, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating machines: %w", err)
	}
	return mapping.ToDomainMachineSlice(machines), nil
}

// UpdateMachineStatus overwrites the status unconditionally and returns the
// updated machine.
func (r *PgxMachineRepository) UpdateMachineStatus(ctx context.Context, machineID string, status domain.MachineStatus, updatedBy string, updatedAt time.Time) (*domain.Machine, error) {
	query := `
		UPDATE machines
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE machine_id = $1
		RETURNING ` + machineColumns + `;
	`
	m, err := scanMachine(r.Pool.QueryRow(ctx, query, machineID, string(status), updatedAt, updatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update status for machine %s: %w", machineID, err)
	}

	machine := mapping.ToDomainMachine(*m)
	return &machine, nil
}
