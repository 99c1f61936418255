package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portsrepo "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/repositories"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
)

// machineService manages equipment status. Machines have no transition graph;
// any status may be overwritten with any other by an operator.
type machineService struct {
	BaseService
	machineRepo portsrepo.MachineRepositoryFacade
}

// NewMachineService creates a new machine service.
func NewMachineService(machineRepo portsrepo.MachineRepositoryFacade) portssvc.MachineSvcFacade {
	return &machineService{machineRepo: machineRepo}
}

var _ portssvc.MachineSvcFacade = (*machineService)(nil)

func (s *machineService) ListMachines(ctx context.Context, branchID string) ([]domain.Machine, error) {
	machines, err := s.machineRepo.ListMachinesByBranch(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list machines: %w", err)
	}
	if machines == nil {
		return []domain.Machine{}, nil
	}
	return machines, nil
}

func (s *machineService) GetMachineByID(ctx context.Context, machineID string) (*domain.Machine, error) {
	machine, err := s.machineRepo.FindMachineByID(ctx, machineID)
	if err != nil {
		return nil, fmt.Errorf("failed to get machine by ID: %w", err)
	}
	return machine, nil
}

func (s *machineService) SetStatus(ctx context.Context, machineID string, status domain.MachineStatus, actorID string) (*domain.Machine, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: invalid machine status %q", apperrors.ErrValidation, status)
	}

	machine, err := s.machineRepo.UpdateMachineStatus(ctx, machineID, status, actorID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to update machine status: %w", err)
	}

	s.LogInfo(ctx, "machine status changed",
		slog.String("machine_id", machine.MachineID),
		slog.String("status", string(status)))
	return machine, nil
}

// BulkSetAvailable resets every machine in the branch to AVAILABLE, typically
// at shift handover. Best-effort: a failed row is counted and logged, and the
// loop keeps going; updated + failed always equals the branch machine count.
func (s *machineService) BulkSetAvailable(ctx context.Context, branchID string, actorID string) (dto.BulkResetResponse, error) {
	machines, err := s.machineRepo.ListMachinesByBranch(ctx, branchID)
	if err != nil {
		return dto.BulkResetResponse{}, fmt.Errorf("failed to list machines for bulk reset: %w", err)
	}

	now := time.Now()
	var result dto.BulkResetResponse
	for _, machine := range machines {
		if _, err := s.machineRepo.UpdateMachineStatus(ctx, machine.MachineID, domain.MachineAvailable, actorID, now); err != nil {
			result.Failed++
			s.LogWarn(ctx, "bulk reset skipped machine",
				slog.String("machine_id", machine.MachineID),
				slog.String("error", err.Error()))
			continue
		}
		result.Updated++
	}

	s.LogInfo(ctx, "bulk machine reset finished",
		slog.String("branch_id", branchID),
		slog.Int("updated", result.Updated),
		slog.Int("failed", result.Failed))
	return result, nil
}
