package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Steven2002S/sga-docente/internal/grades"
	"github.com/Steven2002S/sga-docente/internal/portal/util"
	"github.com/Steven2002S/sga-docente/internal/shared"
)

// rosterResponse is the roster view: the visible students in display order
// plus the statistics computed over exactly that visible set.
type rosterResponse struct {
	Students []shared.Student   `json:"estudiantes"`
	Stats    grades.CourseStats `json:"estadisticas"`
}

// CourseRoster handles GET /portal/cursos/{id}/roster.
// Query Params: buscar (free text), curso (course code), estado
// (enrollment state) — three independent predicates combined with AND.
func (h *Handler) CourseRoster(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")
	if courseID == "" {
		util.WriteJSONError(w, http.StatusBadRequest, "validacion", "id de curso requerido")
		return
	}

	client := h.client(r)

	students, err := client.ListCourseStudents(r.Context(), courseID)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}

	snapshot, err := client.GetCourseGradesComplete(r.Context(), courseID)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}

	filter := grades.RosterFilter{
		Search:     r.URL.Query().Get("buscar"),
		CourseCode: r.URL.Query().Get("curso"),
		Status:     r.URL.Query().Get("estado"),
	}
	visible := grades.SortRoster(filter.Apply(students))

	util.WriteJSON(w, http.StatusOK, rosterResponse{
		Students: visible,
		Stats:    visibleStats(snapshot, visible),
	})
}

// MyStudents handles GET /portal/estudiantes — every student across the
// teacher's courses, with the same filter/sort contract as the per-course
// roster.
func (h *Handler) MyStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.client(r).MyStudents(r.Context())
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}

	filter := grades.RosterFilter{
		Search:     r.URL.Query().Get("buscar"),
		CourseCode: r.URL.Query().Get("curso"),
		Status:     r.URL.Query().Get("estado"),
	}

	util.WriteJSON(w, http.StatusOK, grades.SortRoster(filter.Apply(students)))
}

// visibleStats reduces the snapshot to the students currently displayed.
// Recomputed on every request; never cached.
func visibleStats(snapshot *shared.CourseGradesSnapshot, visible []shared.Student) grades.CourseStats {
	bySID := make(map[string]grades.StudentResult)
	for _, result := range grades.Aggregate(*snapshot, nil) {
		bySID[result.StudentID] = result
	}

	// A visible student missing from the snapshot still counts, with a
	// zero average and a reprobated classification.
	kept := make([]grades.StudentResult, 0, len(visible))
	for _, s := range visible {
		result, ok := bySID[s.ID]
		if !ok {
			result = grades.StudentResult{StudentID: s.ID}
		}
		kept = append(kept, result)
	}
	return grades.Stats(kept)
}
