package cartstore

import (
	"context"
	"sync"

	"github.com/fjod/storefront/internal/domain"
)

// MemoryStore keeps carts in process memory. Carts are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]domain.CartLine
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string][]domain.CartLine),
	}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) ([]domain.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines, ok := s.carts[sessionID]
	if !ok {
		return nil, ErrCartNotFound
	}
	return copyLines(lines), nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, lines []domain.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[sessionID] = copyLines(lines)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

func copyLines(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}
