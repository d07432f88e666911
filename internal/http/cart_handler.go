package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fjod/storefront/internal/cart"
	"github.com/fjod/storefront/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CartManager interface {
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	AddItem(ctx context.Context, sessionID string, productID int64) (domain.Cart, cart.Notice, error)
	RemoveItem(ctx context.Context, sessionID string, productID int64) (domain.Cart, cart.Notice, error)
	SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (domain.Cart, cart.Notice, error)
	Clear(ctx context.Context, sessionID string) (domain.Cart, cart.Notice, error)
	Replace(ctx context.Context, sessionID string, lines []domain.CartLine) (domain.Cart, cart.Notice, error)
	Checkout(ctx context.Context, sessionID string) (domain.OrderConfirmation, error)
}

type CartHandler struct {
	carts       CartManager
	maxBodySize int64
	logger      *zap.Logger
}

func NewCartHandler(carts CartManager, maxBodySize int64, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		carts:       carts,
		maxBodySize: maxBodySize,
		logger:      logger,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"productId"`
}

type UpdateQuantityRequestDTO struct {
	Quantity *int `json:"quantity"`
}

type ReplaceCartRequestDTO struct {
	Items []domain.CartLine `json:"items"`
}

type CartResponse struct {
	Cart   domain.Cart  `json:"cart"`
	Notice *cart.Notice `json:"notice,omitempty"`
}

func newCartResponse(c domain.Cart, notice cart.Notice) CartResponse {
	resp := CartResponse{Cart: c}
	if !notice.IsZero() {
		resp.Notice = &notice
	}
	return resp
}

// GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.carts.Get(r.Context(), getSessionID(r.Context()))
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newCartResponse(c, cart.Notice{}))
}

// POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if !h.decode(w, r, &req) {
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	c, notice, err := h.carts.AddItem(r.Context(), getSessionID(r.Context()), req.ProductID)
	h.respondCart(w, r, c, notice, err)
}

// PUT /api/cart/items/{productId}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateQuantityRequestDTO
	if !h.decode(w, r, &req) {
		return
	}
	if req.Quantity == nil {
		respondError(w, http.StatusBadRequest, "Invalid quantity")
		return
	}

	c, notice, err := h.carts.SetQuantity(r.Context(), getSessionID(r.Context()), productID, *req.Quantity)
	h.respondCart(w, r, c, notice, err)
}

// DELETE /api/cart/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	c, notice, err := h.carts.RemoveItem(r.Context(), getSessionID(r.Context()), productID)
	h.respondCart(w, r, c, notice, err)
}

// DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	c, notice, err := h.carts.Clear(r.Context(), getSessionID(r.Context()))
	h.respondCart(w, r, c, notice, err)
}

// PUT /api/cart restores a cart the client saved earlier.
func (h *CartHandler) ReplaceCart(w http.ResponseWriter, r *http.Request) {
	var req ReplaceCartRequestDTO
	if !h.decode(w, r, &req) {
		return
	}

	c, notice, err := h.carts.Replace(r.Context(), getSessionID(r.Context()), req.Items)
	h.respondCart(w, r, c, notice, err)
}

// POST /api/cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	order, err := h.carts.Checkout(r.Context(), getSessionID(r.Context()))
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newCheckoutResponse(order))
}

func (h *CartHandler) respondCart(w http.ResponseWriter, r *http.Request, c domain.Cart, notice cart.Notice, err error) {
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newCartResponse(c, notice))
}

func (h *CartHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return 0, false
	}
	return productID, true
}
