package domain

import "time"

// EmployeeRole controls which surfaces an employee may use.
type EmployeeRole string

const (
	RoleOwner     EmployeeRole = "OWNER"
	RoleCashier   EmployeeRole = "CASHIER"
	RoleCollector EmployeeRole = "COLLECTOR"
	RoleInvestor  EmployeeRole = "INVESTOR"
)

// IsValid reports whether the role is known.
func (r EmployeeRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleCashier, RoleCollector, RoleInvestor:
		return true
	}
	return false
}

// AuthProvider identifies how an employee account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// Employee is anyone who signs into the POS: owner, cashier, collector, investor.
type Employee struct {
	EmployeeID   string       `json:"employeeID"`
	Username     string       `json:"username"`
	Name         string       `json:"name"`
	Email        string       `json:"email,omitempty"`
	PasswordHash string       `json:"-"`
	Role         EmployeeRole `json:"role"`
	// BranchID is set for cashiers; owners/collectors/investors see all branches.
	BranchID         *string      `json:"branchID,omitempty"`
	AuthProvider     AuthProvider `json:"-"`
	ProviderUserID   string       `json:"-"`
	RefreshTokenHash string       `json:"-"`
	DeletedAt        *time.Time   `json:"-"`
	AuditFields
}
