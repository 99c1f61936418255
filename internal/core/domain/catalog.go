package domain

import "github.com/shopspring/decimal"

// CatalogService is a priced laundry service offered by a branch
// (e.g. "Cuci Reguler" per kilo, "Cuci Express").
type CatalogService struct {
	ServiceID string          `json:"serviceID"`
	BranchID  string          `json:"branchID"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Unit      string          `json:"unit"` // e.g. "kg", "pcs"
	IsActive  bool            `json:"isActive"`
	AuditFields
}

// CatalogProduct is an over-the-counter product sold at a branch
// (detergent, softener, laundry bags).
type CatalogProduct struct {
	ProductID string          `json:"productID"`
	BranchID  string          `json:"branchID"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	IsActive  bool            `json:"isActive"`
	AuditFields
}
