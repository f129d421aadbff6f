package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
	"github.com/osse101/BoobaMarket_Go/internal/logger"
)

// HeaderUserID carries the caller identity. Its value is trusted as-is.
const HeaderUserID = "X-User-Id"

// ParamListingID is the chi URL parameter naming a listing
const ParamListingID = "listingID"

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req CreateListingRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpCreateListing); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// RequireUserID returns the caller identity from the X-User-Id header.
// A missing or blank header is answered with 401 and ok=false.
func RequireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if userID == "" {
		logger.FromContext(r.Context()).Warn("Request without caller identity", "path", r.URL.Path)
		respondError(w, http.StatusUnauthorized, ErrMsgMissingUserID)
		return "", false
	}
	if len(userID) > domain.MaxUserIDLength {
		respondError(w, http.StatusBadRequest, ErrMsgUserIDTooLong)
		return "", false
	}
	return userID, true
}

// GetListingIDParam parses the {listingID} URL parameter.
// If ok is false, a 400 response has already been written.
func GetListingIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, ParamListingID)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.FromContext(r.Context()).Warn("Invalid listing id", "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidListingID)
		return 0, false
	}
	return id, true
}
