package services

import (
	"context"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CatalogSvcFacade is the catalog resolver: it supplies the priced entries
// line items are built from, and normalizes them into the LineItem shape at
// this boundary.
type CatalogSvcFacade interface {
	// ListServices retrieves the active services for a branch.
	ListServices(ctx context.Context, branchID string) ([]domain.CatalogService, error)

	// ListProducts retrieves the active products for a branch.
	ListProducts(ctx context.Context, branchID string) ([]domain.CatalogProduct, error)

	// ResolveLineItem looks up a catalog entry and returns its display name and
	// unit price for line-item construction.
	ResolveLineItem(ctx context.Context, branchID string, kind domain.LineItemKind, refID string) (string, decimal.Decimal, error)

	// CreateService adds a service entry to a branch's catalog.
	CreateService(ctx context.Context, req dto.CreateServiceRequest, actorID string) (*domain.CatalogService, error)

	// CreateProduct adds a product entry to a branch's catalog.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, actorID string) (*domain.CatalogProduct, error)
}
