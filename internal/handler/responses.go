package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/feybrew/cauldron/internal/domain"
	"github.com/feybrew/cauldron/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode to a pooled buffer first so a marshal failure never produces a
	// half-written body
	buf := getBuffer()
	defer putBuffer(buf)

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

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Validation failures are the caller's fault (400), an insufficient ledger is a
// conflict with current state (409), missing resources are 404.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNoEffects):
		return http.StatusBadRequest, ErrMsgNoEffectsError
	case errors.Is(err, domain.ErrMixedCategories):
		return http.StatusBadRequest, ErrMsgMixedCategoriesError
	case errors.Is(err, domain.ErrUnresolvedChoice):
		return http.StatusBadRequest, ErrMsgUnresolvedChoiceError
	case errors.Is(err, domain.ErrElementUnavailable):
		return http.StatusBadRequest, ErrMsgElementUnavailableError
	case errors.Is(err, domain.ErrPairNotFound):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrInvalidSlot):
		return http.StatusBadRequest, ErrMsgInvalidSlotError
	case errors.Is(err, domain.ErrInvalidUnlockCode):
		return http.StatusBadRequest, ErrMsgInvalidUnlockCodeError
	case errors.Is(err, domain.ErrInsufficientIngredients):
		return http.StatusConflict, ErrMsgInsufficientItemsError
	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusNotFound, ErrMsgCharacterNotFoundError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrRecipeLocked):
		return http.StatusForbidden, ErrMsgRecipeLockedError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed service call and writes the mapped error
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error(opName+" failed", "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}
