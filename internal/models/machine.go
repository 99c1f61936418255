package models

// Machine is a row in the machines table.
type Machine struct {
	MachineID string `db:"machine_id"`
	BranchID  string `db:"branch_id"`
	Type      string `db:"machine_type"`
	Number    int    `db:"machine_number"`
	Status    string `db:"status"`
	AuditFields
}
