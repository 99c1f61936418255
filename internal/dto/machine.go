package dto

import (
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
)

// SetMachineStatusRequest overwrites a machine's status.
type SetMachineStatusRequest struct {
	Status domain.MachineStatus `json:"status" binding:"required,oneof=AVAILABLE IN_USE BROKEN MAINTENANCE"`
}

// MachineResponse is the machine view returned to clients.
type MachineResponse struct {
	MachineID string `json:"machineID"`
	BranchID  string `json:"branchID"`
	Type      string `json:"type"`
	Number    int    `json:"number"`
	Label     string `json:"label"`
	Status    string `json:"status"`
}

// BulkResetResponse reports the per-row outcome of a best-effort shift reset.
// updated + failed always equals the branch's machine count.
type BulkResetResponse struct {
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// ToMachineResponse converts a domain.Machine to its response DTO.
func ToMachineResponse(m *domain.Machine) MachineResponse {
	return MachineResponse{
		MachineID: m.MachineID,
		BranchID:  m.BranchID,
		Type:      string(m.Type),
		Number:    m.Number,
		Label:     m.Label(),
		Status:    string(m.Status),
	}
}

// ToMachineResponses converts a slice of machines.
func ToMachineResponses(ms []domain.Machine) []MachineResponse {
	responses := make([]MachineResponse, len(ms))
	for i := range ms {
		responses[i] = ToMachineResponse(&ms[i])
	}
	return responses
}
