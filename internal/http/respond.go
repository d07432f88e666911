package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fjod/storefront/internal/checkout"
	"github.com/fjod/storefront/internal/logger"
	"go.uber.org/zap"
)

const internalErrorMessage = "Internal server error"

// clientMessages are the texts shoppers' clients already match on.
var clientMessages = []struct {
	err     error
	message string
}{
	{checkout.ErrMalformedBody, "Invalid request body"},
	{checkout.ErrInvalidShape, "Items must be an array"},
	{checkout.ErrEmptyCart, "Cart cannot be empty"},
	{checkout.ErrInvalidProductID, "Invalid product ID"},
	{checkout.ErrInvalidQuantity, "Invalid quantity"},
	{checkout.ErrAmountOverflow, "Order total is too large"},
}

func clientMessage(err error) string {
	var notFound *checkout.ProductNotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("Product with ID %d not found", notFound.ProductID)
	}
	for _, m := range clientMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return err.Error()
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service failure to its status code. Internal
// faults are logged and answered with a generic message.
func respondServiceError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	switch checkout.KindOf(err) {
	case checkout.KindValidation:
		respondError(w, http.StatusBadRequest, clientMessage(err))
	case checkout.KindNotFound:
		respondError(w, http.StatusNotFound, clientMessage(err))
	default:
		logger.FromContext(r.Context(), log).Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
	}
}
