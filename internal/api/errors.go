package api

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed call so the portal can pick the right
// notification, never a crash: transport failures, authorization failures,
// client-side validation failures and server-reported business-rule
// failures.
type ErrorKind string

const (
	KindTransport     ErrorKind = "transporte"
	KindAuthorization ErrorKind = "autorizacion"
	KindValidation    ErrorKind = "validacion"
	KindBusiness      ErrorKind = "regla_negocio"
)

// APIError is the typed error every client method returns on failure.
type APIError struct {
	Kind    ErrorKind
	Status  int // 0 when the request never reached the server
	Message string
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// newTransportError wraps a failure that never produced an HTTP response.
func newTransportError(err error) *APIError {
	return &APIError{Kind: KindTransport, Message: err.Error()}
}

// newValidationError reports a request rejected before it was issued.
func newValidationError(format string, args ...interface{}) *APIError {
	return &APIError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// classifyStatus maps an upstream HTTP status to the error taxonomy.
func classifyStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuthorization
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	case status == http.StatusBadGateway || status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout:
		return KindTransport
	default:
		// 404, 409 and 5xx all carry a server-reported reason.
		return KindBusiness
	}
}

// IsAuthorization reports whether err is an authorization failure
// (missing or expired token).
func IsAuthorization(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Kind == KindAuthorization
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Kind == KindValidation
}
