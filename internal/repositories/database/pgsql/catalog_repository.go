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

type PgxCatalogRepository struct {
	BaseRepository
}

// newPgxCatalogRepository creates a new repository for catalog data.
func newPgxCatalogRepository(pool *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

const serviceColumns = `service_id, branch_id, name, price, unit, is_active, created_at, created_by, last_updated_at, last_updated_by`
const productColumns = `product_id, branch_id, name, price, stock, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanCatalogService(row pgx.Row) (*models.CatalogService, error) {
	var m models.CatalogService
	err := row.Scan(
		&m.ServiceID,
		&m.BranchID,
		&m.Name,
		&m.Price,
		&m.Unit,
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

func scanCatalogProduct(row pgx.Row) (*models.CatalogProduct, error) {
	var m models.CatalogProduct
	err := row.Scan(
		&m.ProductID,
		&m.BranchID,
		&m.Name,
		&m.Price,
		&m.Stock,
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

// ListServicesByBranch retrieves active services offered by a branch.
func (r *PgxCatalogRepository) ListServicesByBranch(ctx context.Context, branchID string) ([]domain.CatalogService, error) {
	query := `SELECT ` + serviceColumns + ` FROM catalog_services WHERE branch_id = $1 AND is_active ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services for branch %s: %w", branchID, err)
	}
	defer rows.Close()

	var entries []models.CatalogService
	for rows.Next() {
		m, err := scanCatalogService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog service: %w", err)
		}
		entries = append(entries, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating catalog services: %w", err)
	}
	return mapping.ToDomainCatalogServiceSlice(entries), nil
}

// ListProductsByBranch retrieves active products sold at a branch.
func (r *PgxCatalogRepository) ListProductsByBranch(ctx context.Context, branchID string) ([]domain.CatalogProduct, error) {
	query := `SELECT ` + productColumns + ` FROM catalog_products WHERE branch_id = $1 AND is_active ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products for branch %s: %w", branchID, err)
	}
	defer rows.Close()

	var entries []models.CatalogProduct
	for rows.Next() {
		m, err := scanCatalogProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog product: %w", err)
		}
		entries = append(entries, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating catalog products: %w", err)
	}
	return mapping.ToDomainCatalogProductSlice(entries), nil
}

// FindServiceByID retrieves a service entry by its ID.
func (r *PgxCatalogRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.CatalogService, error) {
	query := `SELECT ` + serviceColumns + ` FROM catalog_services WHERE service_id = $1;`

	m, err := scanCatalogService(r.Pool.QueryRow(ctx, query, serviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service by ID %s: %w", serviceID, err)
	}

	entry := mapping.ToDomainCatalogService(*m)
	return &entry, nil
}

// FindProductByID retrieves a product entry by its ID.
func (r *PgxCatalogRepository) FindProductByID(ctx context.Context, productID string) (*domain.CatalogProduct, error) {
	query := `SELECT ` + productColumns + ` FROM catalog_products WHERE product_id = $1;`

	m, err := scanCatalogProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}

	entry := mapping.ToDomainCatalogProduct(*m)
	return &entry, nil
}

// SaveService inserts or updates a service entry.
func (r *PgxCatalogRepository) SaveService(ctx context.Context, service domain.CatalogService) error {
	m := mapping.ToModelCatalogService(service)
	query := `
		INSERT INTO catalog_services (` + serviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (service_id) DO UPDATE
		SET name = EXCLUDED.name, price = EXCLUDED.price, unit = EXCLUDED.unit, is_active = EXCLUDED.is_active,
		    last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ServiceID, m.BranchID, m.Name, m.Price, m.Unit, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: service %q already exists at this branch", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save service %s: %w", m.ServiceID, err)
	}
	return nil
}

// SaveProduct inserts or updates a product entry.
func (r *PgxCatalogRepository) SaveProduct(ctx context.Context, product domain.CatalogProduct) error {
	m := mapping.ToModelCatalogProduct(product)
	query := `
		INSERT INTO catalog_products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (product_id) DO UPDATE
		SET name = EXCLUDED.name, price = EXCLUDED.price, stock = EXCLUDED.stock, is_active = EXCLUDED.is_active,
		    last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.BranchID, m.Name, m.Price, m.Stock, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: product %q already exists at this branch", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save product %s: %w", m.ProductID, err)
	}
	return nil
}
