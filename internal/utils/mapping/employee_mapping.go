package mapping

import (
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	"github.com/KilauLaundry/laundry_pos_app/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:       d.EmployeeID,
		Username:         d.Username,
		Name:             d.Name,
		Email:            d.Email,
		PasswordHash:     d.PasswordHash,
		Role:             string(d.Role),
		BranchID:         d.BranchID,
		AuthProvider:     string(d.AuthProvider),
		ProviderUserID:   d.ProviderUserID,
		RefreshTokenHash: d.RefreshTokenHash,
		DeletedAt:        d.DeletedAt,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:       m.EmployeeID,
		Username:         m.Username,
		Name:             m.Name,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		Role:             domain.EmployeeRole(m.Role),
		BranchID:         m.BranchID,
		AuthProvider:     domain.AuthProvider(m.AuthProvider),
		ProviderUserID:   m.ProviderUserID,
		RefreshTokenHash: m.RefreshTokenHash,
		DeletedAt:        m.DeletedAt,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
