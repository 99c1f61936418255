package models

// Branch is a row in the branches table.
type Branch struct {
	BranchID string `db:"branch_id"`
	Code     string `db:"code"`
	Name     string `db:"name"`
	Address  string `db:"address"`
	Phone    string `db:"phone"`
	IsActive bool   `db:"is_active"`
	AuditFields
}
