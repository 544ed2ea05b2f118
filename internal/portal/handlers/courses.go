package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Steven2002S/sga-docente/internal/portal/util"
)

// AllMyCourses handles GET /portal/cursos.
func (h *Handler) AllMyCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.client(r).AllMyCourses(r.Context())
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, courses)
}

// GetCourse handles GET /portal/cursos/{id}.
func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.client(r).GetCourse(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, course)
}

// MySchedule handles GET /portal/horario.
func (h *Handler) MySchedule(w http.ResponseWriter, r *http.Request) {
	slots, err := h.client(r).MySchedule(r.Context())
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, slots)
}
