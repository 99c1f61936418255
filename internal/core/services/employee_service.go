package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portsrepo "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/repositories"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
	"github.com/KilauLaundry/laundry_pos_app/internal/utils"
)

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, actorID string) (*domain.Employee, error) {
	existing, err := s.employeeRepo.FindEmployeeByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username %q is taken", apperrors.ErrDuplicate, req.Username)
	}

	role := domain.EmployeeRole(req.Role)
	if role == domain.RoleCashier && req.BranchID == nil {
		return nil, fmt.Errorf("%w: cashiers must be assigned to a branch", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	employee := domain.Employee{
		EmployeeID:   uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         role,
		BranchID:     req.BranchID,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return &employee, nil
}

// CreateOAuthEmployee finds or creates the employee tied to an OAuth identity.
// New OAuth accounts are always owners; cashier accounts are local-only.
func (s *employeeService) CreateOAuthEmployee(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.Employee, error) {
	existing, err := s.employeeRepo.FindEmployeeByProviderID(ctx, provider, providerUserID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up oauth employee: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	username := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		username = email[:at]
	}

	now := time.Now()
	employee := domain.Employee{
		EmployeeID:     uuid.NewString(),
		Username:       username,
		Name:           name,
		Email:          email,
		Role:           domain.RoleOwner,
		AuthProvider:   provider,
		ProviderUserID: providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "oauth",
			LastUpdatedAt: now,
			LastUpdatedBy: "oauth",
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create oauth employee: %w", err)
	}
	return &employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return employee, nil
}

func (s *employeeService) GetEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee by username: %w", err)
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, branchID *string) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, actorID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee for update: %w", err)
	}

	changed := false
	if req.Name != nil && *req.Name != employee.Name {
		employee.Name = *req.Name
		changed = true
	}
	if req.Role != nil && domain.EmployeeRole(*req.Role) != employee.Role {
		employee.Role = domain.EmployeeRole(*req.Role)
		changed = true
	}
	if req.BranchID != nil {
		employee.BranchID = req.BranchID
		changed = true
	}

	if !changed {
		return employee, nil
	}

	employee.LastUpdatedAt = time.Now()
	employee.LastUpdatedBy = actorID
	if err := s.employeeRepo.SaveEmployee(ctx, *employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) DeactivateEmployee(ctx context.Context, employeeID string, actorID string) error {
	if err := s.employeeRepo.MarkEmployeeDeleted(ctx, employeeID, actorID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return nil
}

func (s *employeeService) StoreRefreshTokenHash(ctx context.Context, employeeID string, tokenHash string) error {
	if err := s.employeeRepo.UpdateRefreshTokenHash(ctx, employeeID, tokenHash, time.Now()); err != nil {
		return fmt.Errorf("failed to store refresh token hash: %w", err)
	}
	return nil
}
