package checkout

import (
	"context"
	"time"

	"github.com/fjod/storefront/internal/catalog"
	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/logger"
	"go.uber.org/zap"
)

type Service struct {
	catalog catalog.Catalog
	sink    OrderSink
	newID   IDGenerator
	now     func() time.Time
	logger  *zap.Logger
}

type Option func(*Service)

// WithSink publishes every confirmed order to sink. Publishing is best
// effort: a failure is logged and the order still succeeds.
func WithSink(sink OrderSink) Option {
	return func(s *Service) { s.sink = sink }
}

func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Service) { s.newID = gen }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(c catalog.Catalog, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		catalog: c,
		newID:   NewOrderID,
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Checkout validates lines, prices them and confirms the order. Nothing is
// published when validation or pricing fails.
func (s *Service) Checkout(ctx context.Context, lines []domain.CheckoutLine) (domain.OrderConfirmation, error) {
	if err := Validate(lines); err != nil {
		return domain.OrderConfirmation{}, err
	}

	totals, err := Calculate(s.catalog, lines)
	if err != nil {
		return domain.OrderConfirmation{}, err
	}

	placedAt := s.now().UTC()
	order := domain.OrderConfirmation{
		OrderID:     s.newID(placedAt),
		Lines:       append([]domain.CheckoutLine(nil), lines...),
		TotalItems:  totals.Items,
		TotalAmount: totals.Amount,
		PlacedAt:    placedAt,
	}

	log := logger.FromContext(ctx, s.logger)
	log.Info("new order",
		zap.String("order_id", order.OrderID),
		zap.Time("placed_at", order.PlacedAt),
		zap.Any("items", order.Lines),
		zap.Int("total_items", order.TotalItems),
		zap.Stringer("total_amount", order.TotalAmount),
	)

	if s.sink != nil {
		if err := s.sink.Publish(ctx, order); err != nil {
			log.Warn("order publish failed", zap.String("order_id", order.OrderID), zap.Error(err))
		}
	}

	return order, nil
}
