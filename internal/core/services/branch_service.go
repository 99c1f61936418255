package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portsrepo "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/repositories"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
)

type branchService struct {
	BaseService
	branchRepo portsrepo.BranchRepositoryFacade
}

// NewBranchService creates a new branch service.
func NewBranchService(branchRepo portsrepo.BranchRepositoryFacade) portssvc.BranchSvcFacade {
	return &branchService{branchRepo: branchRepo}
}

var _ portssvc.BranchSvcFacade = (*branchService)(nil)

func (s *branchService) CreateBranch(ctx context.Context, req dto.CreateBranchRequest, actorID string) (*domain.Branch, error) {
	now := time.Now()
	branch := domain.Branch{
		BranchID: uuid.NewString(),
		Code:     req.Code,
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.branchRepo.SaveBranch(ctx, branch); err != nil {
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}
	return &branch, nil
}

func (s *branchService) GetBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	branch, err := s.branchRepo.FindBranchByID(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get branch by ID: %w", err)
	}
	return branch, nil
}

func (s *branchService) ListBranches(ctx context.Context, includeInactive bool) ([]domain.Branch, error) {
	branches, err := s.branchRepo.ListBranches(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	if branches == nil {
		return []domain.Branch{}, nil
	}
	return branches, nil
}

func (s *branchService) UpdateBranch(ctx context.Context, branchID string, req dto.UpdateBranchRequest, actorID string) (*domain.Branch, error) {
	branch, err := s.branchRepo.FindBranchByID(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load branch for update: %w", err)
	}

	changed := false
	if req.Name != nil && *req.Name != branch.Name {
		branch.Name = *req.Name
		changed = true
	}
	if req.Address != nil && *req.Address != branch.Address {
		branch.Address = *req.Address
		changed = true
	}
	if req.Phone != nil && *req.Phone != branch.Phone {
		branch.Phone = *req.Phone
		changed = true
	}
	if req.IsActive != nil && *req.IsActive != branch.IsActive {
		branch.IsActive = *req.IsActive
		changed = true
	}

	if !changed {
		return branch, nil
	}

	branch.LastUpdatedAt = time.Now()
	branch.LastUpdatedBy = actorID
	if err := s.branchRepo.SaveBranch(ctx, *branch); err != nil {
		return nil, fmt.Errorf("failed to update branch: %w", err)
	}
	return branch, nil
}
