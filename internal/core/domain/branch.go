package domain

// Branch is a single laundry outlet.
type Branch struct {
	BranchID string `json:"branchID"`
	// Code is the short outlet code embedded in transaction codes, e.g. "JKT01".
	Code     string `json:"code"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
