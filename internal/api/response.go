package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"gathergrid/commune/internal/common"
	"gathergrid/commune/internal/logging"
	"gathergrid/commune/internal/models/dtos/responses"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := responses.APIResponse[T]{
		Status:    "success",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	resp := responses.APIResponse[any]{
		Status:    "error",
		Timestamp: time.Now().UTC(),
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(resp)
}

// respondWithServiceError maps the error taxonomy to status codes:
// validation 400, authentication 401, authorization 403, conflict 409,
// anything unexpected 500 with a generic message.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		respondWithError(w, http.StatusBadRequest, common.PublicMessage(err))
	case errors.Is(err, common.ErrAuthentication):
		respondWithError(w, http.StatusUnauthorized, common.PublicMessage(err))
	case errors.Is(err, common.ErrAuthorization):
		respondWithError(w, http.StatusForbidden, common.PublicMessage(err))
	case errors.Is(err, common.ErrConflict):
		respondWithError(w, http.StatusConflict, common.PublicMessage(err))
	default:
		logging.Error("unhandled service error", "error", err.Error())
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody parses a JSON request body into req and runs its validation.
func decodeBody(r *http.Request, req interface{ Validate() error }) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return common.NewValidationError("decodeBody", "request body must be valid JSON")
	}
	return req.Validate()
}
