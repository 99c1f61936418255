package dto

import (
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateServiceRequest adds a priced service to a branch catalog.
type CreateServiceRequest struct {
	BranchID string          `json:"branchID" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Unit     string          `json:"unit" binding:"required"`
}

// CreateProductRequest adds an over-the-counter product to a branch catalog.
type CreateProductRequest struct {
	BranchID string          `json:"branchID" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Stock    int             `json:"stock" binding:"gte=0"`
}

// CatalogServiceResponse is a service catalog entry as returned to clients.
type CatalogServiceResponse struct {
	ServiceID string          `json:"serviceID"`
	BranchID  string          `json:"branchID"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Unit      string          `json:"unit"`
}

// CatalogProductResponse is a product catalog entry as returned to clients.
type CatalogProductResponse struct {
	ProductID string          `json:"productID"`
	BranchID  string          `json:"branchID"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
}

// ToCatalogServiceResponse converts a domain.CatalogService.
func ToCatalogServiceResponse(s *domain.CatalogService) CatalogServiceResponse {
	return CatalogServiceResponse{
		ServiceID: s.ServiceID,
		BranchID:  s.BranchID,
		Name:      s.Name,
		Price:     s.Price,
		Unit:      s.Unit,
	}
}

// ToCatalogProductResponse converts a domain.CatalogProduct.
func ToCatalogProductResponse(p *domain.CatalogProduct) CatalogProductResponse {
	return CatalogProductResponse{
		ProductID: p.ProductID,
		BranchID:  p.BranchID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
	}
}
