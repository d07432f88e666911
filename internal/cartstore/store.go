// Package cartstore persists session carts. Only the line collection is
// stored; totals are derived again when a cart is restored.
package cartstore

import (
	"context"
	"errors"

	"github.com/fjod/storefront/internal/domain"
)

var ErrCartNotFound = errors.New("cart not found")

type Store interface {
	// Load returns ErrCartNotFound when the session has no saved cart.
	Load(ctx context.Context, sessionID string) ([]domain.CartLine, error)
	Save(ctx context.Context, sessionID string, lines []domain.CartLine) error
	Delete(ctx context.Context, sessionID string) error
}
