package models

import "github.com/shopspring/decimal"

// CatalogService is a row in the catalog_services table.
type CatalogService struct {
	ServiceID string          `db:"service_id"`
	BranchID  string          `db:"branch_id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Unit      string          `db:"unit"`
	IsActive  bool            `db:"is_active"`
	AuditFields
}

// CatalogProduct is a row in the catalog_products table.
type CatalogProduct struct {
	ProductID string          `db:"product_id"`
	BranchID  string          `db:"branch_id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Stock     int             `db:"stock"`
	IsActive  bool            `db:"is_active"`
	AuditFields
}
