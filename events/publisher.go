package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"thrift-rizz/models"
)

const orderCreatedTopic = "orders.created"

// OrderCreated is the event emitted after an order is persisted.
type OrderCreated struct {
	OrderID       string               `json:"order_id"`
	CustomerName  string               `json:"customer_name"`
	TotalAmount   int                  `json:"total_amount"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Publisher writes order events to Kafka. An empty broker list disables it;
// callers check Enabled before publishing.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher parses a comma-separated broker list. With no brokers the
// publisher is a no-op.
func NewPublisher(brokersCSV string) *Publisher {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return &Publisher{}
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        orderCreatedTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Enabled reports whether events will actually be written anywhere.
func (p *Publisher) Enabled() bool {
	return p.writer != nil
}

// PublishOrderCreated emits an event keyed by order id.
func (p *Publisher) PublishOrderCreated(ctx context.Context, order models.Order) error {
	if !p.Enabled() {
		return nil
	}
	event := OrderCreated{
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		TotalAmount:   order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
		CreatedAt:     order.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: payload,
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
