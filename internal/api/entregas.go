package api

import (
	"context"
	"net/http"

	"github.com/Steven2002S/sga-docente/internal/shared"
)

// GradeRequest is the payload for grading a submission. MaxScore is the
// containing assignment's maximum and is checked locally, not sent.
type GradeRequest struct {
	Score    float64 `json:"calificacion" validate:"gte=0"`
	Comment  string  `json:"comentario,omitempty" validate:"max=2000"`
	MaxScore float64 `json:"-" validate:"gt=0"`
}

// ListAssignmentSubmissions retrieves the submissions for an assignment
// (GET /api/entregas/tarea/:id_tarea).
func (c *Client) ListAssignmentSubmissions(ctx context.Context, assignmentID string) ([]shared.Submission, error) {
	var submissions []shared.Submission
	if err := c.do(ctx, http.MethodGet, "/api/entregas/tarea/"+assignmentID, nil, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// GradeSubmission records a score and comment for a submission
// (POST /api/entregas/:id/calificar). A score outside [0, max] is rejected
// here with a user-visible message; grade entry never clamps what the
// teacher typed.
func (c *Client) GradeSubmission(ctx context.Context, submissionID string, req GradeRequest) (*shared.Submission, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.Score > req.MaxScore {
		return nil, newValidationError("la calificacion %.2f supera la nota maxima %.2f", req.Score, req.MaxScore)
	}

	var submission shared.Submission
	if err := c.do(ctx, http.MethodPost, "/api/entregas/"+submissionID+"/calificar", req, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}
