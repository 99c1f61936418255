package mapping

import (
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	"github.com/KilauLaundry/laundry_pos_app/internal/models"
)

// ToModelMachine converts a domain Machine to a model Machine
func ToModelMachine(d domain.Machine) models.Machine {
	return models.Machine{
		MachineID:   d.MachineID,
		BranchID:    d.BranchID,
		Type:        string(d.Type),
		Number:      d.Number,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMachine converts a model Machine to a domain Machine
func ToDomainMachine(m models.Machine) domain.Machine {
	return domain.Machine{
		MachineID:   m.MachineID,
		BranchID:    m.BranchID,
		Type:        domain.MachineType(m.Type),
		Number:      m.Number,
		Status:      domain.MachineStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMachineSlice converts a slice of model Machines to domain Machines
func ToDomainMachineSlice(ms []models.Machine) []domain.Machine {
	ds := make([]domain.Machine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMachine(m)
	}
	return ds
}
