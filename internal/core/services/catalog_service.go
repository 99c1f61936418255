package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portsrepo "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/repositories"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
)

// catalogService resolves priced catalog entries into the name and unit price
// a line item carries. Prices are copied onto line items at resolution time so
// later catalog edits never change an existing ticket.
type catalogService struct {
	BaseService
	catalogRepo portsrepo.CatalogRepositoryFacade
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalogRepo portsrepo.CatalogRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{catalogRepo: catalogRepo}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) ListServices(ctx context.Context, branchID string) ([]domain.CatalogService, error) {
	entries, err := s.catalogRepo.ListServicesByBranch(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	if entries == nil {
		return []domain.CatalogService{}, nil
	}
	return entries, nil
}

func (s *catalogService) ListProducts(ctx context.Context, branchID string) ([]domain.CatalogProduct, error) {
	entries, err := s.catalogRepo.ListProductsByBranch(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if entries == nil {
		return []domain.CatalogProduct{}, nil
	}
	return entries, nil
}

func (s *catalogService) ResolveLineItem(ctx context.Context, branchID string, kind domain.LineItemKind, refID string) (string, decimal.Decimal, error) {
	switch kind {
	case domain.ItemService:
		svc, err := s.catalogRepo.FindServiceByID(ctx, refID)
		if err != nil {
			return "", decimal.Zero, fmt.Errorf("failed to resolve service %s: %w", refID, err)
		}
		if svc.BranchID != branchID || !svc.IsActive {
			return "", decimal.Zero, fmt.Errorf("%w: service %s is not available at this branch", apperrors.ErrValidation, refID)
		}
		return svc.Name, svc.Price, nil
	case domain.ItemProduct:
		product, err := s.catalogRepo.FindProductByID(ctx, refID)
		if err != nil {
			return "", decimal.Zero, fmt.Errorf("failed to resolve product %s: %w", refID, err)
		}
		if product.BranchID != branchID || !product.IsActive {
			return "", decimal.Zero, fmt.Errorf("%w: product %s is not available at this branch", apperrors.ErrValidation, refID)
		}
		return product.Name, product.Price, nil
	default:
		return "", decimal.Zero, fmt.Errorf("%w: unknown line item kind %q", apperrors.ErrValidation, kind)
	}
}

func (s *catalogService) CreateService(ctx context.Context, req dto.CreateServiceRequest, actorID string) (*domain.CatalogService, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: service price cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	entry := domain.CatalogService{
		ServiceID: uuid.NewString(),
		BranchID:  req.BranchID,
		Name:      req.Name,
		Price:     req.Price,
		Unit:      req.Unit,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.catalogRepo.SaveService(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &entry, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, actorID string) (*domain.CatalogProduct, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: product price cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	entry := domain.CatalogProduct{
		ProductID: uuid.NewString(),
		BranchID:  req.BranchID,
		Name:      req.Name,
		Price:     req.Price,
		Stock:     req.Stock,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.catalogRepo.SaveProduct(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &entry, nil
}
