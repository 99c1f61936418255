package repositories

import (
	"context"
	"time"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee accounts.
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee by id.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployeeByUsername retrieves an employee by username.
	FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error)

	// FindEmployeeByProviderID retrieves an employee by OAuth provider identity.
	FindEmployeeByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.Employee, error)

	// ListEmployees retrieves employees, optionally filtered by branch.
	ListEmployees(ctx context.Context, branchID *string) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee accounts.
type EmployeeWriter interface {
	// SaveEmployee inserts or updates an employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateRefreshTokenHash stores the hash of the employee's current refresh token.
	UpdateRefreshTokenHash(ctx context.Context, employeeID string, tokenHash string, updatedAt time.Time) error

	// MarkEmployeeDeleted soft-deletes an employee account.
	MarkEmployeeDeleted(ctx context.Context, employeeID string, deletedBy string, deletedAt time.Time) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
