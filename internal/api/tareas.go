package api

import (
	"context"
	"net/http"

	"github.com/Steven2002S/sga-docente/internal/shared"
)

// AssignmentRequest is the payload for assignment create/update calls.
type AssignmentRequest struct {
	ModuleID        string   `json:"id_modulo" validate:"required"`
	CategoryID      string   `json:"id_categoria,omitempty"`
	Title           string   `json:"titulo" validate:"required,min=1,max=200"`
	Description     string   `json:"descripcion,omitempty"`
	MaxScore        float64  `json:"nota_maxima" validate:"gt=0"`
	MinPassingScore float64  `json:"nota_minima_aprobacion,omitempty" validate:"gte=0"`
	Weight          float64  `json:"ponderacion" validate:"gt=0,lte=10"`
	DueDate         string   `json:"fecha_entrega,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AllowedExts     []string `json:"extensiones_permitidas,omitempty"`
	MaxFileSizeMB   int32    `json:"tamano_maximo_mb,omitempty" validate:"gte=0"`
}

// GetAssignment retrieves one assignment (GET /api/tareas/:id_tarea).
func (c *Client) GetAssignment(ctx context.Context, assignmentID string) (*shared.Assignment, error) {
	var assignment shared.Assignment
	if err := c.do(ctx, http.MethodGet, "/api/tareas/"+assignmentID, nil, &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListModuleAssignments retrieves the assignments of a module
// (GET /api/tareas/modulo/:id_modulo).
func (c *Client) ListModuleAssignments(ctx context.Context, moduleID string) ([]shared.Assignment, error) {
	var assignments []shared.Assignment
	if err := c.do(ctx, http.MethodGet, "/api/tareas/modulo/"+moduleID, nil, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// CreateAssignment creates an assignment (POST /api/tareas).
func (c *Client) CreateAssignment(ctx context.Context, req AssignmentRequest) (*shared.Assignment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var assignment shared.Assignment
	if err := c.do(ctx, http.MethodPost, "/api/tareas", req, &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// UpdateAssignment updates an assignment (PUT /api/tareas/:id).
func (c *Client) UpdateAssignment(ctx context.Context, assignmentID string, req AssignmentRequest) (*shared.Assignment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var assignment shared.Assignment
	if err := c.do(ctx, http.MethodPut, "/api/tareas/"+assignmentID, req, &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// DeleteAssignment deletes an assignment (DELETE /api/tareas/:id).
func (c *Client) DeleteAssignment(ctx context.Context, assignmentID string) error {
	return c.do(ctx, http.MethodDelete, "/api/tareas/"+assignmentID, nil, nil)
}
