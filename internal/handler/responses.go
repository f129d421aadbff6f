package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
	"github.com/osse101/BoobaMarket_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	// Headers are already sent, so an encoding failure can only be logged
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped response.
// Business outcomes are logged at warn level, everything else at error level.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	if domain.IsExpected(err) {
		log.Warn(opName+" rejected", "error", err)
	} else {
		log.Error(opName+" failed", "error", err)
	}

	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError    = "Authentication failed. Please check your API key."
	ErrMsgTooManyRequests    = "Too many requests. Please try again later."

	ErrMsgListingNotFoundError  = "Listing not found"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgNotFoundError         = "Resource not found"
	ErrMsgNotYourListingError   = "You can only cancel your own listings"
	ErrMsgNotEnoughMoneyError   = "Not enough money"
	ErrMsgSelfTradeError        = "You cannot buy your own listing"
	ErrMsgItemNotEligibleError  = "You don't own that item or it is already listed"
	ErrMsgInvalidPriceError     = "Price must be a positive whole number"
	ErrMsgNegativeBalanceError  = "Balance must not be negative"
	ErrMsgInvalidItemFieldError = "Item type and name are required"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Internal and persistence failures never leak their details.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrInternal), errors.Is(err, domain.ErrPersistence):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound, ErrMsgListingNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgNotFoundError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, ErrMsgNotYourListingError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrSelfTrade):
		return http.StatusBadRequest, ErrMsgSelfTradeError
	case errors.Is(err, domain.ErrItemNotEligible):
		return http.StatusConflict, ErrMsgItemNotEligibleError
	case errors.Is(err, domain.ErrInvalidPrice):
		return http.StatusBadRequest, ErrMsgInvalidPriceError
	case errors.Is(err, domain.ErrNegativeBalance):
		return http.StatusBadRequest, ErrMsgNegativeBalanceError
	case errors.Is(err, domain.ErrInvalidItemFields):
		return http.StatusBadRequest, ErrMsgInvalidItemFieldError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
