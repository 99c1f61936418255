package services

import (
	"context"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
)

// BranchSvcFacade manages laundry outlets.
type BranchSvcFacade interface {
	// CreateBranch registers a new outlet.
	CreateBranch(ctx context.Context, req dto.CreateBranchRequest, actorID string) (*domain.Branch, error)

	// GetBranchByID retrieves a single branch.
	GetBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)

	// ListBranches retrieves all branches.
	ListBranches(ctx context.Context, includeInactive bool) ([]domain.Branch, error)

	// UpdateBranch updates branch details.
	UpdateBranch(ctx context.Context, branchID string, req dto.UpdateBranchRequest, actorID string) (*domain.Branch, error)
}
