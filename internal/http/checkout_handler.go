package http

import (
	"context"
	"net/http"

	"github.com/fjod/storefront/internal/checkout"
	"github.com/fjod/storefront/internal/domain"
	"go.uber.org/zap"
)

const orderPlacedMessage = "Order placed successfully!"

type Checkouter interface {
	Checkout(ctx context.Context, lines []domain.CheckoutLine) (domain.OrderConfirmation, error)
}

type CheckoutHandler struct {
	checkout    Checkouter
	maxBodySize int64
	logger      *zap.Logger
}

func NewCheckoutHandler(svc Checkouter, maxBodySize int64, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout:    svc,
		maxBodySize: maxBodySize,
		logger:      logger,
	}
}

type CheckoutResponseDTO struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	OrderID     string       `json:"orderId"`
	TotalItems  int          `json:"totalItems"`
	TotalAmount domain.Money `json:"totalAmount"`
}

func newCheckoutResponse(order domain.OrderConfirmation) CheckoutResponseDTO {
	return CheckoutResponseDTO{
		Success:     true,
		Message:     orderPlacedMessage,
		OrderID:     order.OrderID,
		TotalItems:  order.TotalItems,
		TotalAmount: order.TotalAmount,
	}
}

// POST /api/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	lines, err := checkout.ParseRequest(r.Body)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	order, err := h.checkout.Checkout(r.Context(), lines)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, newCheckoutResponse(order))
}
