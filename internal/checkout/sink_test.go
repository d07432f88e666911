package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fjod/storefront/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mockWriter struct {
	messages []kafka.Message
	err      error
	calls    int
	closed   bool
}

func (m *mockWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, msgs...)
	return nil
}

func (m *mockWriter) Close() error {
	m.closed = true
	return nil
}

var testOrder = domain.OrderConfirmation{
	OrderID:     "ORD-1-ABCDEF01",
	Lines:       []domain.CheckoutLine{{ProductID: 1, Quantity: 2}},
	TotalItems:  2,
	TotalAmount: 2598,
	PlacedAt:    time.Date(2024, 10, 17, 10, 30, 0, 0, time.UTC),
}

func TestKafkaSink_Publish(t *testing.T) {
	w := &mockWriter{}
	sink := newKafkaSink(w)

	require.NoError(t, sink.Publish(context.Background(), testOrder))
	require.Len(t, w.messages, 1)
	assert.Equal(t, []byte("ORD-1-ABCDEF01"), w.messages[0].Key)

	var event map[string]any
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &event))
	assert.Equal(t, "order.placed", event["event_type"])
	assert.Equal(t, "ORD-1-ABCDEF01", event["order_id"])
	assert.Equal(t, float64(2598), event["total_amount"])
	assert.Equal(t, float64(2), event["total_items"])
	assert.Equal(t, "INR", event["currency"])

	require.NoError(t, sink.Close())
	assert.True(t, w.closed)
}

func TestKafkaSink_BreakerOpensOnRepeatedFailures(t *testing.T) {
	w := &mockWriter{err: errors.New("leader not available")}
	sink := newKafkaSink(w)

	for i := 0; i < 3; i++ {
		err := sink.Publish(context.Background(), testOrder)
		require.ErrorContains(t, err, "leader not available")
	}

	err := sink.Publish(context.Background(), testOrder)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, w.calls)
}

func TestLogSink_Publish(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sink := NewLogSink(zap.New(core))

	require.NoError(t, sink.Publish(context.Background(), testOrder))

	entries := logs.FilterMessage("order published").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ORD-1-ABCDEF01", entries[0].ContextMap()["order_id"])
	assert.Equal(t, int64(2598), entries[0].ContextMap()["total_amount"])
}
