package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSumLineItems(t *testing.T) {
	items := []LineItem{
		{Subtotal: decimal.NewFromInt(15000)},
		{Subtotal: decimal.NewFromInt(7000)},
		{Subtotal: decimal.NewFromInt(3000)},
	}
	assert.True(t, SumLineItems(items).Equal(decimal.NewFromInt(25000)))
}

func TestSumLineItems_Empty(t *testing.T) {
	assert.True(t, SumLineItems(nil).Equal(decimal.Zero))
}

func TestTransactionStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusDraft.IsTerminal())
	assert.True(t, StatusPaid.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, PaymentCash.IsValid())
	assert.True(t, PaymentQRIS.IsValid())
	assert.False(t, PaymentMethod("TRANSFER").IsValid())
}

func TestMachineLabel(t *testing.T) {
	washer := Machine{Type: MachineWasher, Number: 3}
	dryer := Machine{Type: MachineDryer, Number: 1}
	assert.Equal(t, "Washer 3", washer.Label())
	assert.Equal(t, "Dryer 1", dryer.Label())
}
