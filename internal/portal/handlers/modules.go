package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Steven2002S/sga-docente/internal/api"
	"github.com/Steven2002S/sga-docente/internal/portal/util"
	"github.com/Steven2002S/sga-docente/internal/shared"
)

// ListModules handles GET /portal/modulos/curso/{id_curso}.
func (h *Handler) ListModules(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id_curso")
	modules, err := h.client(r).ListCourseModules(r.Context(), courseID)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, modules)
}

// GetModule handles GET /portal/modulos/{id}.
func (h *Handler) GetModule(w http.ResponseWriter, r *http.Request) {
	module, err := h.client(r).GetModule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, module)
}

// CreateModule handles POST /portal/modulos. A duplicate name within the
// course is rejected before the round-trip.
func (h *Handler) CreateModule(w http.ResponseWriter, r *http.Request) {
	var req api.ModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "validacion", "cuerpo de solicitud invalido")
		return
	}

	client := h.client(r)

	siblings, err := client.ListCourseModules(r.Context(), req.CourseID)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}
	for _, m := range siblings {
		if strings.EqualFold(strings.TrimSpace(m.Name), strings.TrimSpace(req.Name)) {
			util.WriteJSONError(w, http.StatusBadRequest, "validacion", "ya existe un modulo con ese nombre en el curso")
			return
		}
	}

	module, err := client.CreateModule(r.Context(), req)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusCreated, module)
}

// UpdateModule handles PUT /portal/modulos/{id}.
func (h *Handler) UpdateModule(w http.ResponseWriter, r *http.Request) {
	moduleID := chi.URLParam(r, "id")

	var req api.ModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "validacion", "cuerpo de solicitud invalido")
		return
	}

	client := h.client(r)

	siblings, err := client.ListCourseModules(r.Context(), req.CourseID)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}
	for _, m := range siblings {
		if m.ID != moduleID && strings.EqualFold(strings.TrimSpace(m.Name), strings.TrimSpace(req.Name)) {
			util.WriteJSONError(w, http.StatusBadRequest, "validacion", "ya existe un modulo con ese nombre en el curso")
			return
		}
	}

	module, err := client.UpdateModule(r.Context(), moduleID, req)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, module)
}

// DeleteModule handles DELETE /portal/modulos/{id}. A module with
// dependent data is a server-side rejection surfaced as a business notice.
func (h *Handler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	if err := h.client(r).DeleteModule(r.Context(), chi.URLParam(r, "id")); err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, map[string]string{"mensaje": "modulo eliminado"})
}

// CreateCategory handles POST /portal/modulos/{id}/categorias. The save is
// blocked when the proposed weight would push the module's categories over
// the fixed point budget.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	moduleID := chi.URLParam(r, "id")

	var req api.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "validacion", "cuerpo de solicitud invalido")
		return
	}
	req.ModuleID = moduleID

	client := h.client(r)

	module, err := client.GetModule(r.Context(), moduleID)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}

	weights := make([]float64, 0, len(module.Categories))
	for _, c := range module.Categories {
		weights = append(weights, c.Weight)
	}
	if !shared.WeightFits(shared.SumWeights(weights), req.Weight) {
		util.WriteJSONError(w, http.StatusBadRequest, "validacion",
			"la ponderacion excede el presupuesto de puntos del modulo")
		return
	}

	category, err := client.CreateCategory(r.Context(), req)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusCreated, category)
}

// ============================================================================
// Lifecycle toggles
// ============================================================================

// CloseModule handles PUT /portal/modulos/{id}/cerrar.
func (h *Handler) CloseModule(w http.ResponseWriter, r *http.Request) {
	h.toggleModule(w, r, h.client(r).CloseModule, "modulo cerrado")
}

// ReopenModule handles PUT /portal/modulos/{id}/reabrir.
func (h *Handler) ReopenModule(w http.ResponseWriter, r *http.Request) {
	h.toggleModule(w, r, h.client(r).ReopenModule, "modulo reabierto")
}

// PublishAverages handles PUT /portal/modulos/{id}/publicar-promedios.
func (h *Handler) PublishAverages(w http.ResponseWriter, r *http.Request) {
	h.toggleModule(w, r, h.client(r).PublishAverages, "promedios publicados")
}

// HideAverages handles PUT /portal/modulos/{id}/ocultar-promedios.
func (h *Handler) HideAverages(w http.ResponseWriter, r *http.Request) {
	h.toggleModule(w, r, h.client(r).HideAverages, "promedios ocultados")
}

// toggleModule runs one lifecycle call and re-fetches the module so the
// response carries the authoritative state, not a locally patched one.
func (h *Handler) toggleModule(w http.ResponseWriter, r *http.Request, toggle func(ctx context.Context, moduleID string) error, message string) {
	moduleID := chi.URLParam(r, "id")

	if err := toggle(r.Context(), moduleID); err != nil {
		util.HandleAPIError(w, err)
		return
	}

	module, err := h.client(r).GetModule(r.Context(), moduleID)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"mensaje": message,
		"modulo":  module,
	})
}
