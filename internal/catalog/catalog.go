package catalog

import (
	"errors"
	"fmt"

	"github.com/fjod/storefront/internal/domain"
)

var ErrInvalidProduct = errors.New("invalid product definition")

// Catalog is the read-only set of purchasable products. Implementations must
// be safe for concurrent use.
type Catalog interface {
	All() []domain.Product
	FindByID(id int64) (domain.Product, bool)
	FindByCategory(category string) []domain.Product
	Categories() []string
}

// Static is an immutable in-memory catalog fixed at construction.
type Static struct {
	products []domain.Product
	byID     map[int64]int
}

// New validates products and builds a catalog that keeps their order.
func New(products []domain.Product) (*Static, error) {
	s := &Static{
		products: make([]domain.Product, len(products)),
		byID:     make(map[int64]int, len(products)),
	}
	copy(s.products, products)

	for i, p := range s.products {
		switch {
		case p.ID <= 0:
			return nil, fmt.Errorf("%w: id %d is not positive", ErrInvalidProduct, p.ID)
		case p.Name == "":
			return nil, fmt.Errorf("%w: product %d has no name", ErrInvalidProduct, p.ID)
		case p.Price <= 0:
			return nil, fmt.Errorf("%w: product %d has price %d", ErrInvalidProduct, p.ID, p.Price)
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidProduct, p.ID)
		}
		s.byID[p.ID] = i
	}

	return s, nil
}

func (s *Static) All() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Static) FindByID(id int64) (domain.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return s.products[i], true
}

func (s *Static) FindByCategory(category string) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories lists distinct non-empty categories in first-seen order.
func (s *Static) Categories() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range s.products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func (s *Static) Len() int {
	return len(s.products)
}
