package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rezvik/foodorder/internal/adapter/config"
	"github.com/rezvik/foodorder/internal/core/domain"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher emits order-created events for downstream sagas. With no
// brokers configured it stays disabled and publishing is a no-op.
type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewPublisher(cfg *config.Kafka, logger *zap.Logger) (*Publisher, error) {
	brokers := make([]string, 0)
	for _, b := range strings.Split(cfg.Brokers, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}

	if len(brokers) == 0 {
		return &Publisher{logger: logger}, nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        cfg.OrderCreatedTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &Publisher{writer: writer, logger: logger}, nil
}

func (p *Publisher) Enabled() bool {
	return p.writer != nil
}

type orderCreatedMessage struct {
	OrderID      string             `json:"order_id"`
	TrackingID   string             `json:"tracking_id"`
	CustomerID   string             `json:"customer_id"`
	RestaurantID string             `json:"restaurant_id"`
	Price        string             `json:"price"`
	Status       string             `json:"status"`
	Items        []orderItemMessage `json:"items"`
	CreatedAt    time.Time          `json:"created_at"`
}

type orderItemMessage struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	SubTotal  string `json:"sub_total"`
}

func (p *Publisher) PublishOrderCreated(ctx context.Context, event domain.OrderCreatedEvent) error {
	if p.writer == nil {
		p.logger.Debug("kafka disabled, order created event skipped",
			zap.String("order", event.Order.ID.String()))
		return nil
	}

	msg := orderCreatedMessage{
		OrderID:      event.Order.ID.String(),
		TrackingID:   event.Order.TrackingID.String(),
		CustomerID:   event.Order.CustomerID.String(),
		RestaurantID: event.Order.RestaurantID.String(),
		Price:        event.Order.Price.String(),
		Status:       string(event.Order.Status),
		CreatedAt:    event.CreatedAt,
	}
	for _, item := range event.Order.Items {
		msg.Items = append(msg.Items, orderItemMessage{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
			SubTotal:  item.SubTotal.String(),
		})
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal order created event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.OrderID),
		Value: data,
		Time:  event.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("write order created event: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
