package mapping

import (
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	"github.com/KilauLaundry/laundry_pos_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Line items are mapped separately; they live in their own table.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	var method *string
	if d.PaymentMethod != nil {
		m := string(*d.PaymentMethod)
		method = &m
	}
	return models.Transaction{
		TransactionID: d.TransactionID,
		Code:          d.Code,
		BranchID:      d.BranchID,
		CashierID:     d.CashierID,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		TotalAmount:   d.TotalAmount,
		Status:        models.TransactionStatus(d.Status),
		PaymentMethod: method,
		Shift:         string(d.Shift),
		PaidAt:        d.PaidAt,
		CancelledAt:   d.CancelledAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	var method *domain.PaymentMethod
	if m.PaymentMethod != nil {
		pm := domain.PaymentMethod(*m.PaymentMethod)
		method = &pm
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Code:          m.Code,
		BranchID:      m.BranchID,
		CashierID:     m.CashierID,
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		TotalAmount:   m.TotalAmount,
		Status:        domain.TransactionStatus(m.Status),
		PaymentMethod: method,
		Shift:         domain.Shift(m.Shift),
		PaidAt:        m.PaidAt,
		CancelledAt:   m.CancelledAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLineItem converts a domain LineItem to a model LineItem
func ToModelLineItem(d domain.LineItem) models.LineItem {
	return models.LineItem{
		LineItemID:    d.LineItemID,
		TransactionID: d.TransactionID,
		Kind:          string(d.Kind),
		Name:          d.Name,
		UnitPrice:     d.UnitPrice,
		Quantity:      d.Quantity,
		Subtotal:      d.Subtotal,
		MachineID:     d.MachineID,
		MachineLabel:  d.MachineLabel,
		Position:      d.Position,
	}
}

// ToDomainLineItem converts a model LineItem to a domain LineItem
func ToDomainLineItem(m models.LineItem) domain.LineItem {
	return domain.LineItem{
		LineItemID:    m.LineItemID,
		TransactionID: m.TransactionID,
		Kind:          domain.LineItemKind(m.Kind),
		Name:          m.Name,
		UnitPrice:     m.UnitPrice,
		Quantity:      m.Quantity,
		Subtotal:      m.Subtotal,
		MachineID:     m.MachineID,
		MachineLabel:  m.MachineLabel,
		Position:      m.Position,
	}
}

// ToDomainLineItemSlice converts a slice of model LineItems to domain LineItems
func ToDomainLineItemSlice(ms []models.LineItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
