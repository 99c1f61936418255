// Package events publishes transaction lifecycle events to RabbitMQ for
// downstream consumers (notification fan-out, bookkeeping exports).
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
)

const (
	exchangeName        = "pos.transactions"
	routingKeyPaid      = "transaction.paid"
	routingKeyCancelled = "transaction.cancelled"
)

// transactionEvent is the wire shape of a lifecycle event.
type transactionEvent struct {
	TransactionID string     `json:"transactionID"`
	Code          string     `json:"code"`
	BranchID      string     `json:"branchID"`
	Status        string     `json:"status"`
	TotalAmount   string     `json:"totalAmount"`
	PaymentMethod *string    `json:"paymentMethod,omitempty"`
	Shift         string     `json:"shift"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
}

// AMQPPublisher publishes transaction events to a topic exchange. The zero
// value (or a nil pointer) is a no-op publisher so the POS runs fine without
// a broker configured.
type AMQPPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

var _ portssvc.TransactionEventPublisher = (*AMQPPublisher)(nil)

// NewAMQPPublisher dials the broker and declares the transactions exchange.
// An empty URL returns a nil publisher, which disables event publishing.
func NewAMQPPublisher(url string, logger *slog.Logger) (*AMQPPublisher, error) {
	if url == "" {
		logger.Info("AMQP URL not configured, event publishing disabled")
		return nil, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial amqp broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open amqp channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchangeName, err)
	}

	logger.Info("AMQP publisher connected", slog.String("exchange", exchangeName))
	return &AMQPPublisher{conn: conn, ch: ch}, nil
}

// Close releases the channel and connection.
func (p *AMQPPublisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// PublishTransactionPaid announces a completed Draft -> Paid transition.
func (p *AMQPPublisher) PublishTransactionPaid(ctx context.Context, tx *domain.Transaction) error {
	return p.publish(ctx, routingKeyPaid, tx)
}

// PublishTransactionCancelled announces a Draft -> Cancelled transition.
func (p *AMQPPublisher) PublishTransactionCancelled(ctx context.Context, tx *domain.Transaction) error {
	return p.publish(ctx, routingKeyCancelled, tx)
}

func (p *AMQPPublisher) publish(ctx context.Context, routingKey string, tx *domain.Transaction) error {
	if p == nil || p.ch == nil {
		return nil
	}

	var method *string
	if tx.PaymentMethod != nil {
		m := string(*tx.PaymentMethod)
		method = &m
	}
	body, err := json.Marshal(transactionEvent{
		TransactionID: tx.TransactionID,
		Code:          tx.Code,
		BranchID:      tx.BranchID,
		Status:        string(tx.Status),
		TotalAmount:   tx.TotalAmount.String(),
		PaymentMethod: method,
		Shift:         string(tx.Shift),
		PaidAt:        tx.PaidAt,
		CancelledAt:   tx.CancelledAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal transaction event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", routingKey, err)
	}
	return nil
}
