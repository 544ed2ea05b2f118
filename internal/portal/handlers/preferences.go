package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Steven2002S/sga-docente/internal/portal/util"
)

// preferencesRequest allows partial updates: only the provided flags
// change.
type preferencesRequest struct {
	DarkMode         *bool `json:"dark_mode,omitempty"`
	SidebarCollapsed *bool `json:"sidebar_collapsed,omitempty"`
}

// GetPreferences handles GET /portal/preferencias.
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	util.WriteJSON(w, http.StatusOK, h.Prefs.Get())
}

// UpdatePreferences handles PUT /portal/preferencias. Changes persist
// immediately and notify in-process subscribers.
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "validacion", "cuerpo de solicitud invalido")
		return
	}

	if req.DarkMode != nil {
		if err := h.Prefs.SetDarkMode(*req.DarkMode); err != nil {
			util.WriteJSONError(w, http.StatusInternalServerError, "transporte", "no se pudo guardar la preferencia")
			return
		}
	}
	if req.SidebarCollapsed != nil {
		if err := h.Prefs.SetSidebarCollapsed(*req.SidebarCollapsed); err != nil {
			util.WriteJSONError(w, http.StatusInternalServerError, "transporte", "no se pudo guardar la preferencia")
			return
		}
	}

	util.WriteJSON(w, http.StatusOK, h.Prefs.Get())
}
