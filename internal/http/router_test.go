package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fjod/storefront/internal/cartstore"
	"github.com/fjod/storefront/internal/catalog"
	"github.com/fjod/storefront/internal/checkout"
	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type CheckouterMock struct {
	order domain.OrderConfirmation
	err   error
}

func (m CheckouterMock) Checkout(_ context.Context, _ []domain.CheckoutLine) (domain.OrderConfirmation, error) {
	if m.err != nil {
		return domain.OrderConfirmation{}, m.err
	}
	return m.order, nil
}

func newTestRouter(t *testing.T, checkouter Checkouter) http.Handler {
	t.Helper()

	cat := catalog.Default()
	orders := checkout.NewService(cat, zap.NewNop())
	if checkouter == nil {
		checkouter = orders
	}

	return NewRouter(RouterConfig{
		Catalog:        cat,
		Checkout:       checkouter,
		Carts:          service.NewCartService(cartstore.NewMemoryStore(), cat, orders, zap.NewNop()),
		Logger:         zap.NewNop(),
		RequestTimeout: 5 * time.Second,
		MaxBodySize:    1 << 20,
	})
}

func do(t *testing.T, h http.Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestListProducts(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var products []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.Len(t, products, 10)

	first := products[0]
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "Boat Airdopes 131", first["name"])
	assert.Equal(t, float64(1299), first["price"])
	assert.Contains(t, first, "imageUrl")
	assert.Contains(t, first, "description")
	assert.Equal(t, "Electronics", first["category"])
}

func TestListProducts_ByCategory(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodGet, "/api/products?category=Electronics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "Electronics", p.Category)
	}
}

func TestGetProduct(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodGet, "/api/products/3", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var p domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	assert.Equal(t, "Tata Coffee Gold", p.Name)

	rec = do(t, h, http.MethodGet, "/api/products/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", decodeError(t, rec))

	rec = do(t, h, http.MethodGet, "/api/products/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategories(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&categories))
	assert.Contains(t, categories, "Electronics")
	assert.Contains(t, categories, "Food & Beverage")
}

func TestCheckout_Success(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodPost, "/api/checkout",
		`{"items":[{"productId":1,"quantity":2}]}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CheckoutResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Order placed successfully!", resp.Message)
	assert.Regexp(t, `^ORD-\d+-[0-9A-F]{8}$`, resp.OrderID)
	assert.Equal(t, 2, resp.TotalItems)
	assert.Equal(t, domain.Money(2598), resp.TotalAmount)
}

func TestCheckout_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"empty cart", `{"items":[]}`, http.StatusBadRequest, "Cart cannot be empty"},
		{"items not an array", `{"items":{"productId":1}}`, http.StatusBadRequest, "Items must be an array"},
		{"missing items", `{}`, http.StatusBadRequest, "Items must be an array"},
		{"string product id", `{"items":[{"productId":"1","quantity":1}]}`, http.StatusBadRequest, "Invalid product ID"},
		{"zero quantity", `{"items":[{"productId":1,"quantity":0}]}`, http.StatusBadRequest, "Invalid quantity"},
		{"malformed json", `{"items":[`, http.StatusBadRequest, "Invalid request body"},
		{"unknown product", `{"items":[{"productId":9999,"quantity":1}]}`, http.StatusNotFound, "Product with ID 9999 not found"},
	}

	h := newTestRouter(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/checkout", tt.body, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec))
		})
	}
}

func TestCheckout_InternalErrorIsNotLeaked(t *testing.T) {
	h := newTestRouter(t, CheckouterMock{err: errors.New("connection refused to 10.0.0.3")})

	rec := do(t, h, http.MethodPost, "/api/checkout", `{"items":[{"productId":1,"quantity":1}]}`, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec))
}

func TestCheckout_BodyTooLarge(t *testing.T) {
	cat := catalog.Default()
	h := NewRouter(RouterConfig{
		Catalog:     cat,
		Checkout:    checkout.NewService(cat, zap.NewNop()),
		Carts:       service.NewCartService(cartstore.NewMemoryStore(), cat, nil, zap.NewNop()),
		Logger:      zap.NewNop(),
		MaxBodySize: 16,
	})

	rec := do(t, h, http.MethodPost, "/api/checkout", `{"items":[{"productId":1,"quantity":1}]}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, rec))
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec))
}
