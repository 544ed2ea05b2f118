package util

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Steven2002S/sga-docente/internal/api"
)

// JSONResponse structure for successful responses
type JSONResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Notice is the non-blocking toast payload every failure maps to. The view
// stays alive and keeps its prior state; the notice is rendered and
// dismissed.
type Notice struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// JSONError structure for error responses
type JSONError struct {
	Success bool   `json:"success"`
	Notice  Notice `json:"notice"`
}

// WriteJSON is a helper to write JSON success responses.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(JSONResponse{Success: true, Data: payload}); err != nil {
		log.Printf("Error writing JSON response: %v", err)
	}
}

// WriteJSONError writes a standardized error notice.
func WriteJSONError(w http.ResponseWriter, status int, kind, message string) {
	log.Printf("HTTP Error %d (%s): %s", status, kind, message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorResponse := JSONError{
		Success: false,
		Notice: Notice{
			ID:      uuid.NewString(),
			Kind:    kind,
			Message: message,
		},
	}

	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		log.Printf("Error writing JSON error response: %v", err)
	}
}

// HandleAPIError translates a failed upstream call to the matching HTTP
// response. All four taxonomy classes end up as a notice; none crash the
// view.
func HandleAPIError(w http.ResponseWriter, err error) {
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		WriteJSONError(w, http.StatusInternalServerError, string(api.KindTransport), "Error inesperado")
		return
	}

	switch apiErr.Kind {
	case api.KindAuthorization:
		status := apiErr.Status
		if status == 0 {
			status = http.StatusUnauthorized
		}
		WriteJSONError(w, status, string(apiErr.Kind), apiErr.Message)
	case api.KindValidation:
		WriteJSONError(w, http.StatusBadRequest, string(apiErr.Kind), apiErr.Message)
	case api.KindTransport:
		WriteJSONError(w, http.StatusServiceUnavailable, string(apiErr.Kind), apiErr.Message)
	default:
		status := apiErr.Status
		if status < 400 {
			status = http.StatusBadGateway
		}
		WriteJSONError(w, status, string(apiErr.Kind), apiErr.Message)
	}
}

// ExtractToken extracts the token from the Authorization header
// (Bearer <token>).
func ExtractToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
