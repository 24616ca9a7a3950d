package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/logger"
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

	// Encode into a pooled buffer first so a failed encode never produces a
	// half-written body.
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

// respondServiceError logs a service failure and writes the mapped HTTP
// response for it.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	log.Error(opName, "error", err, "status", status)
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgTeamNotFoundError   = "Team not found"
	ErrMsgPlayerNotFoundError = "Player not found"
	ErrMsgRecordNotFoundError = "Record not found"
	ErrMsgAppNotFoundError    = "Application not found"
	ErrMsgRateNotFoundError   = "Tier rate not found"
	ErrMsgInvalidTierError    = "Invalid tier. Valid tiers: T4, T3, T2, T1, godtier"
	ErrMsgInvalidMonthError   = "Invalid month. Expected YYYY-MM"
	ErrMsgBadTransitionError  = "That status change is not allowed"
	ErrMsgAlreadyVerifiedErr  = "Attendance record was already reviewed"
	ErrMsgDuplicateTeamError  = "A team with that name already exists"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Internal detail stays in the logs.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrTeamNotFound):
		return http.StatusNotFound, ErrMsgTeamNotFoundError
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, ErrMsgRecordNotFoundError
	case errors.Is(err, domain.ErrApplicationNotFound):
		return http.StatusNotFound, ErrMsgAppNotFoundError
	case errors.Is(err, domain.ErrTierRateNotFound):
		return http.StatusNotFound, ErrMsgRateNotFoundError
	case errors.Is(err, domain.ErrInvalidTier):
		return http.StatusBadRequest, ErrMsgInvalidTierError
	case errors.Is(err, domain.ErrInvalidMonth):
		return http.StatusBadRequest, ErrMsgInvalidMonthError
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, ErrMsgBadTransitionError
	case errors.Is(err, domain.ErrAlreadyVerified):
		return http.StatusConflict, ErrMsgAlreadyVerifiedErr
	case errors.Is(err, domain.ErrDuplicateTeamName):
		return http.StatusConflict, ErrMsgDuplicateTeamError
	case errors.Is(err, domain.ErrDuplicateReference):
		return http.StatusConflict, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
