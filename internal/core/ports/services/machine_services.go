package services

import (
	"context"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
)

// MachineSvcFacade manages per-branch equipment status.
type MachineSvcFacade interface {
	// ListMachines retrieves all machines for a branch.
	ListMachines(ctx context.Context, branchID string) ([]domain.Machine, error)

	// GetMachineByID retrieves a single machine.
	GetMachineByID(ctx context.Context, machineID string) (*domain.Machine, error)

	// SetStatus overwrites a machine's status. Any state may move to any other.
	SetStatus(ctx context.Context, machineID string, status domain.MachineStatus, actorID string) (*domain.Machine, error)

	// BulkSetAvailable resets every machine in a branch to AVAILABLE,
	// best-effort: per-machine failures are counted, not fatal.
	BulkSetAvailable(ctx context.Context, branchID string, actorID string) (dto.BulkResetResponse, error)
}
