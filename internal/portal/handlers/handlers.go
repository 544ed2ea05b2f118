// Package handlers implements the portal's view handlers. Every handler
// follows the same discipline: fetch fresh state from the academic API,
// derive the view, and on any failure emit a non-blocking notice while
// leaving the client's prior state untouched. Mutations never patch local
// state; they re-fetch the affected collection after the write succeeds.
package handlers

import (
	"net/http"

	"github.com/Steven2002S/sga-docente/internal/api"
	"github.com/Steven2002S/sga-docente/internal/prefs"
)

// Handler holds the upstream client and the preference store. One instance
// serves all routes.
type Handler struct {
	API   *api.Client
	Prefs *prefs.Store
}

// client returns the API client scoped to the request's bearer token.
func (h *Handler) client(r *http.Request) *api.Client {
	return h.API.WithToken(TokenFromContext(r.Context()))
}
