package domain

// PaymentStep is the explicit workflow state of the two-step payment
// confirmation: the operator picks a method, then confirms. Modelled as a
// tagged state rather than independent UI booleans so the flow stays linear.
type PaymentStep string

const (
	PaymentIdle       PaymentStep = "IDLE"
	PaymentSelecting  PaymentStep = "SELECTING_METHOD"
	PaymentConfirming PaymentStep = "CONFIRMING"
	PaymentCompleted  PaymentStep = "COMPLETED"
)

// PaymentFlow tracks the in-progress confirmation for a single draft
// transaction. It lives in memory only; nothing is persisted until the
// confirm step commits the Draft -> Paid transition.
type PaymentFlow struct {
	TransactionID string         `json:"transactionID"`
	Step          PaymentStep    `json:"step"`
	Method        *PaymentMethod `json:"method,omitempty"`
}
