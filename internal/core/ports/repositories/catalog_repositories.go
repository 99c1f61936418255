package repositories

import (
	"context"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
)

// CatalogReader defines read operations for the per-branch service/product
// catalog. Line items are built from these priced entries.
type CatalogReader interface {
	// ListServicesByBranch retrieves active services offered by a branch.
	ListServicesByBranch(ctx context.Context, branchID string) ([]domain.CatalogService, error)

	// ListProductsByBranch retrieves active products sold at a branch.
	ListProductsByBranch(ctx context.Context, branchID string) ([]domain.CatalogProduct, error)

	// FindServiceByID retrieves a single service entry.
	FindServiceByID(ctx context.Context, serviceID string) (*domain.CatalogService, error)

	// FindProductByID retrieves a single product entry.
	FindProductByID(ctx context.Context, productID string) (*domain.CatalogProduct, error)
}

// CatalogWriter defines write operations for catalog maintenance.
type CatalogWriter interface {
	// SaveService inserts or updates a service entry.
	SaveService(ctx context.Context, service domain.CatalogService) error

	// SaveProduct inserts or updates a product entry.
	SaveProduct(ctx context.Context, product domain.CatalogProduct) error
}

// CatalogRepositoryFacade combines all catalog repository interfaces.
type CatalogRepositoryFacade interface {
	CatalogReader
	CatalogWriter
}
