package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Steven2002S/sga-docente/internal/api"
	"github.com/Steven2002S/sga-docente/internal/portal/util"
)

// Profile handles GET /portal/perfil.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	teacher, err := h.client(r).Me(r.Context())
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, teacher)
}

// UpdateProfile handles PUT /portal/perfil.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req api.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "validacion", "cuerpo de solicitud invalido")
		return
	}

	teacher, err := h.client(r).UpdateMe(r.Context(), req)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, teacher)
}

// ChangePassword handles PUT /portal/perfil/password.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req api.PasswordChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "validacion", "cuerpo de solicitud invalido")
		return
	}

	if err := h.client(r).ChangePassword(r.Context(), req); err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, map[string]string{"mensaje": "contrasena actualizada"})
}
