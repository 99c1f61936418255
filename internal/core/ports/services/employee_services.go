package services

import (
	"context"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
)

// EmployeeSvcFacade manages employee accounts.
type EmployeeSvcFacade interface {
	// CreateEmployee registers a new local-auth employee.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, actorID string) (*domain.Employee, error)

	// CreateOAuthEmployee finds or creates the employee linked to an OAuth identity.
	CreateOAuthEmployee(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.Employee, error)

	// GetEmployeeByID retrieves an employee by id.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// GetEmployeeByUsername retrieves an employee by username.
	GetEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error)

	// ListEmployees retrieves employees, optionally filtered by branch.
	ListEmployees(ctx context.Context, branchID *string) ([]domain.Employee, error)

	// UpdateEmployee updates mutable employee details.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, actorID string) (*domain.Employee, error)

	// DeactivateEmployee soft-deletes an employee account.
	DeactivateEmployee(ctx context.Context, employeeID string, actorID string) error

	// StoreRefreshTokenHash persists the hash of an issued refresh token.
	StoreRefreshTokenHash(ctx context.Context, employeeID string, tokenHash string) error
}
