package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Steven2002S/sga-docente/internal/grades"
	"github.com/Steven2002S/sga-docente/internal/portal/util"
	"github.com/Steven2002S/sga-docente/internal/shared"
)

// gradeRow is one student's row in the grade table. Module cells carry the
// display strings (dash for no data, two decimals otherwise); the numeric
// figures ride alongside for export or re-sorting by the client.
type gradeRow struct {
	Student       shared.Student    `json:"estudiante"`
	RawAverage    float64           `json:"promedio_simple"`
	ModuleCells   map[string]string `json:"celdas_modulo"`
	GlobalAverage float64           `json:"promedio_global"`
	GlobalDisplay string            `json:"promedio_global_texto"`
	Approved      bool              `json:"aprobado"`
}

// gradeTableResponse is the full grade table view for a course.
type gradeTableResponse struct {
	Modules []shared.Module    `json:"modulos"`
	Rows    []gradeRow         `json:"filas"`
	Stats   grades.CourseStats `json:"estadisticas"`
}

// CourseGradeTable handles GET /portal/cursos/{id}/calificaciones.
// Accepts the same filter query params as the roster view; statistics are
// computed over the filtered rows.
func (h *Handler) CourseGradeTable(w http.ResponseWriter, r *http.Request) {
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

	// The raw average needs the complete assignment set of the course,
	// not just the graded ones.
	var assignments []shared.Assignment
	for _, m := range snapshot.Modules {
		moduleAssignments, err := client.ListModuleAssignments(r.Context(), m.ID)
		if err != nil {
			util.HandleAPIError(w, err)
			return
		}
		assignments = append(assignments, moduleAssignments...)
	}

	filter := grades.RosterFilter{
		Search:     r.URL.Query().Get("buscar"),
		CourseCode: r.URL.Query().Get("curso"),
		Status:     r.URL.Query().Get("estado"),
	}
	visible := grades.SortRoster(filter.Apply(students))

	results := grades.Aggregate(*snapshot, assignments)
	bySID := make(map[string]grades.StudentResult, len(results))
	for _, result := range results {
		bySID[result.StudentID] = result
	}

	rows := make([]gradeRow, 0, len(visible))
	kept := make([]grades.StudentResult, 0, len(visible))
	for _, s := range visible {
		result, ok := bySID[s.ID]
		if !ok {
			result = grades.StudentResult{StudentID: s.ID, ModuleAverages: map[string]float64{}}
		}
		kept = append(kept, result)

		cells := make(map[string]string, len(snapshot.Modules))
		for _, m := range snapshot.Modules {
			cells[m.ID] = grades.FormatModuleAverage(result.ModuleAverages[m.ID])
		}

		rows = append(rows, gradeRow{
			Student:       s,
			RawAverage:    result.RawAverage,
			ModuleCells:   cells,
			GlobalAverage: result.GlobalAverage,
			GlobalDisplay: fmt.Sprintf("%.2f", result.GlobalAverage),
			Approved:      result.Approved,
		})
	}

	util.WriteJSON(w, http.StatusOK, gradeTableResponse{
		Modules: snapshot.Modules,
		Rows:    rows,
		Stats:   grades.Stats(kept),
	})
}
