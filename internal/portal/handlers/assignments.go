package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Steven2002S/sga-docente/internal/api"
	"github.com/Steven2002S/sga-docente/internal/portal/util"
	"github.com/Steven2002S/sga-docente/internal/shared"
)

// ListAssignments handles GET /portal/tareas/modulo/{id_modulo}.
func (h *Handler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.client(r).ListModuleAssignments(r.Context(), chi.URLParam(r, "id_modulo"))
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, assignments)
}

// GetAssignment handles GET /portal/tareas/{id}.
func (h *Handler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	assignment, err := h.client(r).GetAssignment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, assignment)
}

// CreateAssignment handles POST /portal/tareas. Before saving, the weight
// invariants of the containing module are enforced: a module with
// categories requires exactly one category per assignment (category
// weights are distributed by averaging, so no budget check applies);
// without categories, the sibling assignment weights plus the proposed one
// must stay within the module's point budget.
func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req api.AssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "validacion", "cuerpo de solicitud invalido")
		return
	}

	client := h.client(r)
	if !h.assignmentWeightAllowed(w, r, client, req, "") {
		return
	}

	assignment, err := client.CreateAssignment(r.Context(), req)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusCreated, assignment)
}

// UpdateAssignment handles PUT /portal/tareas/{id} with the same pre-save
// checks, excluding the assignment's own current weight from the sum.
func (h *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "id")

	var req api.AssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "validacion", "cuerpo de solicitud invalido")
		return
	}

	client := h.client(r)
	if !h.assignmentWeightAllowed(w, r, client, req, assignmentID) {
		return
	}

	assignment, err := client.UpdateAssignment(r.Context(), assignmentID, req)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, assignment)
}

// DeleteAssignment handles DELETE /portal/tareas/{id}.
func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	if err := h.client(r).DeleteAssignment(r.Context(), chi.URLParam(r, "id")); err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, map[string]string{"mensaje": "tarea eliminada"})
}

// assignmentWeightAllowed runs the module/category invariants for a
// proposed assignment. It writes the rejection notice itself and reports
// whether the save may proceed. excludeID skips the assignment being
// updated in the sibling sum.
func (h *Handler) assignmentWeightAllowed(w http.ResponseWriter, r *http.Request, client *api.Client, req api.AssignmentRequest, excludeID string) bool {
	module, err := client.GetModule(r.Context(), req.ModuleID)
	if err != nil {
		util.HandleAPIError(w, err)
		return false
	}

	if module.ModuleHasCategories() {
		if req.CategoryID == "" {
			util.WriteJSONError(w, http.StatusBadRequest, "validacion",
				"el modulo tiene categorias: la tarea debe pertenecer a una categoria")
			return false
		}
		found := false
		for _, c := range module.Categories {
			if c.ID == req.CategoryID {
				found = true
				break
			}
		}
		if !found {
			util.WriteJSONError(w, http.StatusBadRequest, "validacion", "categoria inexistente en el modulo")
			return false
		}
		// Category weights are averaged across their assignments, so
		// assignment weights are not summed into the module budget here.
		return true
	}

	siblings, err := client.ListModuleAssignments(r.Context(), req.ModuleID)
	if err != nil {
		util.HandleAPIError(w, err)
		return false
	}

	var weights []float64
	for _, a := range siblings {
		if a.ID == excludeID {
			continue
		}
		weights = append(weights, a.Weight)
	}
	if !shared.WeightFits(shared.SumWeights(weights), req.Weight) {
		util.WriteJSONError(w, http.StatusBadRequest, "validacion",
			"la ponderacion excede el presupuesto de puntos del modulo")
		return false
	}
	return true
}
