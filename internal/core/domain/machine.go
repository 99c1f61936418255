package domain

import "strconv"

// MachineStatus is the current operational state of a washer or dryer.
// Any status may move to any other via explicit operator action; there is
// no fixed transition graph.
type MachineStatus string

const (
	MachineAvailable   MachineStatus = "AVAILABLE"
	MachineInUse       MachineStatus = "IN_USE"
	MachineBroken      MachineStatus = "BROKEN"
	MachineMaintenance MachineStatus = "MAINTENANCE"
)

// IsValid reports whether the status is a known machine state.
func (s MachineStatus) IsValid() bool {
	switch s {
	case MachineAvailable, MachineInUse, MachineBroken, MachineMaintenance:
		return true
	}
	return false
}

// MachineType distinguishes washers from dryers.
type MachineType string

const (
	MachineWasher MachineType = "WASHER"
	MachineDryer  MachineType = "DRYER"
)

// Machine is a piece of branch equipment. Provisioning is handled outside the
// POS; the core only reads machines and flips their status.
type Machine struct {
	MachineID string        `json:"machineID"`
	BranchID  string        `json:"branchID"`
	Type      MachineType   `json:"type"`
	Number    int           `json:"number"`
	Status    MachineStatus `json:"status"`
	AuditFields
}

// Label is the display name printed on receipts, e.g. "Washer 3".
func (m Machine) Label() string {
	name := "Washer"
	if m.Type == MachineDryer {
		name = "Dryer"
	}
	return name + " " + strconv.Itoa(m.Number)
}
