package dto

import "github.com/KilauLaundry/laundry_pos_app/internal/core/domain"

// CreateEmployeeRequest registers a local-auth employee account.
type CreateEmployeeRequest struct {
	Username string  `json:"username" binding:"required,min=3"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     string  `json:"name" binding:"required"`
	Role     string  `json:"role" binding:"required,oneof=OWNER CASHIER COLLECTOR INVESTOR"`
	BranchID *string `json:"branchID"`
}

// UpdateEmployeeRequest updates mutable employee details.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role" binding:"omitempty,oneof=OWNER CASHIER COLLECTOR INVESTOR"`
	BranchID *string `json:"branchID"`
}

// EmployeeResponse is the employee view returned to clients.
type EmployeeResponse struct {
	EmployeeID string  `json:"employeeID"`
	Username   string  `json:"username"`
	Name       string  `json:"name"`
	Email      string  `json:"email,omitempty"`
	Role       string  `json:"role"`
	BranchID   *string `json:"branchID,omitempty"`
}

// ToEmployeeResponse converts a domain.Employee to its response DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: e.EmployeeID,
		Username:   e.Username,
		Name:       e.Name,
		Email:      e.Email,
		Role:       string(e.Role),
		BranchID:   e.BranchID,
	}
}

// ToEmployeeResponses converts a slice of employees.
func ToEmployeeResponses(es []domain.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(es))
	for i := range es {
		responses[i] = ToEmployeeResponse(&es[i])
	}
	return responses
}
