package mapping

import (
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	"github.com/KilauLaundry/laundry_pos_app/internal/models"
)

// ToModelCatalogService converts a domain CatalogService to a model CatalogService
func ToModelCatalogService(d domain.CatalogService) models.CatalogService {
	return models.CatalogService{
		ServiceID:   d.ServiceID,
		BranchID:    d.BranchID,
		Name:        d.Name,
		Price:       d.Price,
		Unit:        d.Unit,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCatalogService converts a model CatalogService to a domain CatalogService
func ToDomainCatalogService(m models.CatalogService) domain.CatalogService {
	return domain.CatalogService{
		ServiceID:   m.ServiceID,
		BranchID:    m.BranchID,
		Name:        m.Name,
		Price:       m.Price,
		Unit:        m.Unit,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCatalogServiceSlice converts model CatalogServices to domain CatalogServices
func ToDomainCatalogServiceSlice(ms []models.CatalogService) []domain.CatalogService {
	ds := make([]domain.CatalogService, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCatalogService(m)
	}
	return ds
}

// ToModelCatalogProduct converts a domain CatalogProduct to a model CatalogProduct
func ToModelCatalogProduct(d domain.CatalogProduct) models.CatalogProduct {
	return models.CatalogProduct{
		ProductID:   d.ProductID,
		BranchID:    d.BranchID,
		Name:        d.Name,
		Price:       d.Price,
		Stock:       d.Stock,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCatalogProduct converts a model CatalogProduct to a domain CatalogProduct
func ToDomainCatalogProduct(m models.CatalogProduct) domain.CatalogProduct {
	return domain.CatalogProduct{
		ProductID:   m.ProductID,
		BranchID:    m.BranchID,
		Name:        m.Name,
		Price:       m.Price,
		Stock:       m.Stock,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCatalogProductSlice converts model CatalogProducts to domain CatalogProducts
func ToDomainCatalogProductSlice(ms []models.CatalogProduct) []domain.CatalogProduct {
	ds := make([]domain.CatalogProduct, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCatalogProduct(m)
	}
	return ds
}
