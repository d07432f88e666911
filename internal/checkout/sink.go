package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/logger"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// OrderSink receives every confirmed order.
type OrderSink interface {
	Publish(ctx context.Context, order domain.OrderConfirmation) error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type orderPlacedEvent struct {
	EventType   string                `json:"event_type"`
	OrderID     string                `json:"order_id"`
	Items       []domain.CheckoutLine `json:"items"`
	TotalItems  int                   `json:"total_items"`
	TotalAmount domain.Money          `json:"total_amount"`
	Currency    string                `json:"currency"`
	PlacedAt    time.Time             `json:"placed_at"`
}

// LogSink writes orders to the log when no broker is configured.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Publish(ctx context.Context, order domain.OrderConfirmation) error {
	logger.FromContext(ctx, s.logger).Info("order published",
		zap.String("sink", "log"),
		zap.String("order_id", order.OrderID),
		zap.Int("total_items", order.TotalItems),
		zap.Int64("total_amount", int64(order.TotalAmount)),
	)
	return nil
}

// KafkaSink publishes orders as JSON events keyed by order id.
type KafkaSink struct {
	writer messageWriter
	cb     *gobreaker.CircuitBreaker[struct{}]
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return newKafkaSink(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	})
}

func newKafkaSink(w messageWriter) *KafkaSink {
	return &KafkaSink{
		writer: w,
		cb: gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
			Name:        "orders-kafka",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

func (s *KafkaSink) Publish(ctx context.Context, order domain.OrderConfirmation) error {
	payload, err := json.Marshal(orderPlacedEvent{
		EventType:   "order.placed",
		OrderID:     order.OrderID,
		Items:       order.Lines,
		TotalItems:  order.TotalItems,
		TotalAmount: order.TotalAmount,
		Currency:    "INR",
		PlacedAt:    order.PlacedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal order event failed: %w", err)
	}

	_, err = s.cb.Execute(func() (struct{}, error) {
		return struct{}{}, s.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(order.OrderID),
			Value: payload,
		})
	})
	if err != nil {
		return fmt.Errorf("publish order %s failed: %w", order.OrderID, err)
	}
	return nil
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
