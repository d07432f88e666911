package catalog

import (
	"sync"
	"testing"

	"github.com/fjod/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasValidProducts(t *testing.T) {
	c := Default()

	products := c.All()
	require.GreaterOrEqual(t, len(products), 5)
	for _, p := range products {
		assert.Positive(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.Positive(t, int64(p.Price))
		assert.Regexp(t, `^https?://.+`, p.ImageURL)
	}
}

func TestFindByID(t *testing.T) {
	c := Default()

	p, ok := c.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "Boat Airdopes 131", p.Name)
	assert.Equal(t, domain.Money(1299), p.Price)

	_, ok = c.FindByID(9999)
	assert.False(t, ok)
}

func TestFindByCategory_KeepsDefinitionOrder(t *testing.T) {
	c := Default()

	electronics := c.FindByCategory("Electronics")
	require.Len(t, electronics, 3)
	assert.Equal(t, int64(1), electronics[0].ID)
	assert.Equal(t, int64(2), electronics[1].ID)
	assert.Equal(t, int64(5), electronics[2].ID)

	none := c.FindByCategory("Groceries")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCategories(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{
		"Electronics",
		"Food & Beverage",
		"Clothing",
		"Home & Office",
		"Sports & Fitness",
	}, c.Categories())
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := Default()

	products := c.All()
	products[0].Price = 1

	p, _ := c.FindByID(products[0].ID)
	assert.Equal(t, domain.Money(1299), p.Price)
}

func TestNew_RejectsInvalidDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		products []domain.Product
	}{
		{"zero id", []domain.Product{{ID: 0, Name: "x", Price: 1}}},
		{"empty name", []domain.Product{{ID: 1, Price: 1}}},
		{"zero price", []domain.Product{{ID: 1, Name: "x"}}},
		{"duplicate id", []domain.Product{{ID: 1, Name: "x", Price: 1}, {ID: 1, Name: "y", Price: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.products)
			assert.ErrorIs(t, err, ErrInvalidProduct)
		})
	}
}

func TestStatic_ConcurrentReads(t *testing.T) {
	c := Default()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, ok := c.FindByID(id%10 + 1)
			assert.True(t, ok)
			assert.Len(t, c.All(), 10)
		}(int64(i))
	}
	wg.Wait()
}
