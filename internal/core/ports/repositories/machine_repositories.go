package repositories

import (
	"context"
	"time"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
)

// MachineReader defines read operations for machine data.
type MachineReader interface {
	// FindMachineByID retrieves a single machine.
	FindMachineByID(ctx context.Context, machineID string) (*domain.Machine, error)

	// ListMachinesByBranch retrieves all machines for a branch, ordered by type and number.
	ListMachinesByBranch(ctx context.Context, branchID string) ([]domain.Machine, error)
}

// MachineWriter defines write operations for machine data. Machines are
// provisioned outside the POS; only status flips happen here.
type MachineWriter interface {
	// UpdateMachineStatus overwrites the status unconditionally.
	UpdateMachineStatus(ctx context.Context, machineID string, status domain.MachineStatus, updatedBy string, updatedAt time.Time) (*domain.Machine, error)
}

// MachineRepositoryFacade combines all machine repository interfaces.
type MachineRepositoryFacade interface {
	MachineReader
	MachineWriter
}
