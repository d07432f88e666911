package cartstore

import (
	"context"
	"errors"
	"time"

	"github.com/fjod/storefront/internal/domain"
	"github.com/sony/gobreaker/v2"
)

// BreakerStore fails fast while the wrapped store keeps erroring.
type BreakerStore struct {
	next Store
	cb   *gobreaker.CircuitBreaker[[]domain.CartLine]
}

func NewBreakerStore(next Store, name string) *BreakerStore {
	cb := gobreaker.NewCircuitBreaker[[]domain.CartLine](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrCartNotFound)
		},
	})
	return &BreakerStore{next: next, cb: cb}
}

func (b *BreakerStore) Load(ctx context.Context, sessionID string) ([]domain.CartLine, error) {
	return b.cb.Execute(func() ([]domain.CartLine, error) {
		return b.next.Load(ctx, sessionID)
	})
}

func (b *BreakerStore) Save(ctx context.Context, sessionID string, lines []domain.CartLine) error {
	_, err := b.cb.Execute(func() ([]domain.CartLine, error) {
		return nil, b.next.Save(ctx, sessionID, lines)
	})
	return err
}

func (b *BreakerStore) Delete(ctx context.Context, sessionID string) error {
	_, err := b.cb.Execute(func() ([]domain.CartLine, error) {
		return nil, b.next.Delete(ctx, sessionID)
	})
	return err
}

func (b *BreakerStore) State() gobreaker.State {
	return b.cb.State()
}
