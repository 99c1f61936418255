package repositories

import (
	"context"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
)

// BranchReader defines read operations for branch data.
type BranchReader interface {
	// FindBranchByID retrieves a single branch.
	FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)

	// ListBranches retrieves all branches, optionally including inactive ones.
	ListBranches(ctx context.Context, includeInactive bool) ([]domain.Branch, error)
}

// BranchWriter defines write operations for branch data.
type BranchWriter interface {
	// SaveBranch inserts or updates a branch.
	SaveBranch(ctx context.Context, branch domain.Branch) error
}

// BranchRepositoryFacade combines all branch repository interfaces.
type BranchRepositoryFacade interface {
	BranchReader
	BranchWriter
}
