package service

import (
	"context"
	"errors"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fjod/storefront/internal/cart"
	"github.com/fjod/storefront/internal/cartstore"
	"github.com/fjod/storefront/internal/catalog"
	"github.com/fjod/storefront/internal/checkout"
	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const lockStripes = 64

type OrderPlacer interface {
	Checkout(ctx context.Context, lines []domain.CheckoutLine) (domain.OrderConfirmation, error)
}

// CartService applies cart actions to per-session carts kept in a store.
type CartService struct {
	store   cartstore.Store
	catalog catalog.Catalog
	orders  OrderPlacer
	logger  *zap.Logger
	sfg     singleflight.Group // collapses concurrent loads of one session

	// mutations of one session are serialised
	locks [lockStripes]sync.Mutex
}

func NewCartService(store cartstore.Store, c catalog.Catalog, orders OrderPlacer, logger *zap.Logger) *CartService {
	return &CartService{
		store:   store,
		catalog: c,
		orders:  orders,
		logger:  logger,
	}
}

// Get returns the session cart. Concurrent calls for one session share a
// single load, which outlives any one caller's cancellation.
func (s *CartService) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.sfg.Do(sessionID, func() (interface{}, error) {
		return s.load(shared, sessionID)
	})
	if err != nil {
		return domain.Cart{}, err
	}
	return v.(domain.Cart), nil
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, productID int64) (domain.Cart, cart.Notice, error) {
	p, ok := s.catalog.FindByID(productID)
	if !ok {
		return domain.Cart{}, cart.Notice{}, &checkout.ProductNotFoundError{ProductID: productID}
	}
	return s.mutate(ctx, sessionID, cart.AddItem{Product: p})
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID int64) (domain.Cart, cart.Notice, error) {
	return s.mutate(ctx, sessionID, cart.RemoveItem{ProductID: productID})
}

func (s *CartService) SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (domain.Cart, cart.Notice, error) {
	if quantity > domain.MaxQuantity {
		return domain.Cart{}, cart.Notice{}, &checkout.ValidationError{Index: -1, Err: checkout.ErrInvalidQuantity}
	}
	return s.mutate(ctx, sessionID, cart.SetQuantity{ProductID: productID, Quantity: quantity})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) (domain.Cart, cart.Notice, error) {
	return s.mutate(ctx, sessionID, cart.Clear{})
}

// Replace restores a cart saved by a client. Products are re-read from the
// catalog so a client cannot smuggle in its own prices.
func (s *CartService) Replace(ctx context.Context, sessionID string, lines []domain.CartLine) (domain.Cart, cart.Notice, error) {
	resolved := make([]domain.CartLine, len(lines))
	for i, l := range lines {
		if l.Quantity > domain.MaxQuantity {
			return domain.Cart{}, cart.Notice{}, &checkout.ValidationError{Index: i, Err: checkout.ErrInvalidQuantity}
		}
		p, ok := s.catalog.FindByID(l.Product.ID)
		if !ok {
			return domain.Cart{}, cart.Notice{}, &checkout.ProductNotFoundError{ProductID: l.Product.ID}
		}
		resolved[i] = domain.CartLine{Product: p, Quantity: l.Quantity}
	}
	return s.mutate(ctx, sessionID, cart.ReplaceAll{Lines: resolved})
}

// Checkout places an order for the session cart and empties it.
func (s *CartService) Checkout(ctx context.Context, sessionID string) (domain.OrderConfirmation, error) {
	mu := s.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return domain.OrderConfirmation{}, err
	}

	order, err := s.orders.Checkout(ctx, c.CheckoutLines())
	if err != nil {
		return domain.OrderConfirmation{}, err
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		logger.FromContext(ctx, s.logger).Warn("clear cart after checkout failed",
			zap.String("order_id", order.OrderID), zap.Error(err))
	}
	return order, nil
}

func (s *CartService) mutate(ctx context.Context, sessionID string, action cart.Action) (domain.Cart, cart.Notice, error) {
	mu := s.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	current, err := s.load(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, cart.Notice{}, err
	}

	next, notice := cart.Apply(current, action)

	if next.IsEmpty() {
		err = s.store.Delete(ctx, sessionID)
	} else {
		err = s.store.Save(ctx, sessionID, next.Lines)
	}
	if err != nil {
		logger.FromContext(ctx, s.logger).Error("save cart failed", zap.Error(err))
		return domain.Cart{}, cart.Notice{}, err
	}

	if !notice.IsZero() {
		logger.FromContext(ctx, s.logger).Info("cart updated",
			zap.String("notice", string(notice.Kind)),
			zap.String("message", notice.Message),
			zap.Int("item_count", next.ItemCount),
			zap.Stringer("total", next.Total),
		)
	}
	return next, notice, nil
}

func (s *CartService) load(ctx context.Context, sessionID string) (domain.Cart, error) {
	lines, err := s.store.Load(ctx, sessionID)
	if errors.Is(err, cartstore.ErrCartNotFound) {
		return cart.Empty(), nil
	}
	if err != nil {
		return domain.Cart{}, err
	}
	return cart.FromLines(lines), nil
}

func (s *CartService) lock(sessionID string) *sync.Mutex {
	return &s.locks[xxhash.Sum64String(sessionID)%lockStripes]
}
