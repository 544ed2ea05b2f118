package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Steven2002S/sga-docente/internal/api"
	"github.com/Steven2002S/sga-docente/internal/grades"
	"github.com/Steven2002S/sga-docente/internal/portal/util"
	"github.com/Steven2002S/sga-docente/internal/shared"
)

// submissionView enriches a submission with its derived state and, when
// graded, the clamped display score and traffic-light band.
type submissionView struct {
	shared.Submission
	State        string            `json:"estado"`
	DisplayScore *float64          `json:"calificacion_mostrada,omitempty"`
	Band         *grades.ScoreBand `json:"banda,omitempty"`
}

// gradeSubmissionRequest is the portal-side grading payload.
type gradeSubmissionRequest struct {
	AssignmentID string  `json:"id_tarea"`
	Score        float64 `json:"calificacion"`
	Comment      string  `json:"comentario,omitempty"`
}

// ListSubmissions handles GET /portal/entregas/tarea/{id_tarea}.
func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "id_tarea")
	client := h.client(r)

	assignment, err := client.GetAssignment(r.Context(), assignmentID)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}

	submissions, err := client.ListAssignmentSubmissions(r.Context(), assignmentID)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, submissionViews(submissions, assignment))
}

// GradeSubmission handles POST /portal/entregas/{id}/calificar. An
// out-of-range score is rejected with a user-visible message before any
// request is issued; the form keeps the typed input. On success the
// submission list is re-fetched so the response reflects the
// server-authoritative state.
func (h *Handler) GradeSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID := chi.URLParam(r, "id")

	var req gradeSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "validacion", "cuerpo de solicitud invalido")
		return
	}
	if req.AssignmentID == "" {
		util.WriteJSONError(w, http.StatusBadRequest, "validacion", "id_tarea requerido")
		return
	}

	client := h.client(r)

	assignment, err := client.GetAssignment(r.Context(), req.AssignmentID)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}

	_, err = client.GradeSubmission(r.Context(), submissionID, api.GradeRequest{
		Score:    req.Score,
		Comment:  req.Comment,
		MaxScore: assignment.MaxScore,
	})
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}

	// Refresh-on-write: re-query the source of truth instead of patching
	// the in-memory list.
	submissions, err := client.ListAssignmentSubmissions(r.Context(), req.AssignmentID)
	if err != nil {
		util.HandleAPIError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, submissionViews(submissions, assignment))
}

func submissionViews(submissions []shared.Submission, assignment *shared.Assignment) []submissionView {
	views := make([]submissionView, 0, len(submissions))
	for _, s := range submissions {
		view := submissionView{Submission: s, State: s.State()}
		if s.Score != nil {
			// Stored data may be out of range; clamp for redisplay only.
			clamped := shared.ClampScore(*s.Score, assignment.MaxScore)
			band := grades.Band(clamped, assignment.MaxScore)
			view.DisplayScore = &clamped
			view.Band = &band
		}
		views = append(views, view)
	}
	return views
}
