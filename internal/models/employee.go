package models

import "time"

// Employee is a row in the employees table.
type Employee struct {
	EmployeeID       string     `db:"employee_id"`
	Username         string     `db:"username"`
	Name             string     `db:"name"`
	Email            string     `db:"email"`
	PasswordHash     string     `db:"password_hash"`
	Role             string     `db:"role"`
	BranchID         *string    `db:"branch_id"` // Nullable, set for cashiers
	AuthProvider     string     `db:"auth_provider"`
	ProviderUserID   string     `db:"provider_user_id"`
	RefreshTokenHash string     `db:"refresh_token_hash"`
	DeletedAt        *time.Time `db:"deleted_at"`
	AuditFields
}
