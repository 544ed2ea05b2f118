package api

import (
	"context"
	"net/http"

	"github.com/Steven2002S/sga-docente/internal/shared"
)

// ModuleRequest is the payload for module create/update calls.
type ModuleRequest struct {
	CourseID  string `json:"id_curso" validate:"required"`
	Name      string `json:"nombre" validate:"required,min=1,max=120"`
	StartDate string `json:"fecha_inicio,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"fecha_fin,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// CategoryRequest is the payload for adding a category to a module.
type CategoryRequest struct {
	ModuleID string  `json:"id_modulo" validate:"required"`
	Name     string  `json:"nombre" validate:"required,min=1,max=120"`
	Weight   float64 `json:"ponderacion" validate:"gt=0,lte=10"`
}

// ListCourseModules retrieves the modules of a course with their categories
// (GET /api/modulos/curso/:id_curso).
func (c *Client) ListCourseModules(ctx context.Context, courseID string) ([]shared.Module, error) {
	var modules []shared.Module
	if err := c.do(ctx, http.MethodGet, "/api/modulos/curso/"+courseID, nil, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

// GetModule retrieves one module (GET /api/modulos/:id_modulo).
func (c *Client) GetModule(ctx context.Context, moduleID string) (*shared.Module, error) {
	var module shared.Module
	if err := c.do(ctx, http.MethodGet, "/api/modulos/"+moduleID, nil, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

// CreateModule creates a module (POST /api/modulos).
func (c *Client) CreateModule(ctx context.Context, req ModuleRequest) (*shared.Module, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var module shared.Module
	if err := c.do(ctx, http.MethodPost, "/api/modulos", req, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

// UpdateModule updates a module (PUT /api/modulos/:id).
func (c *Client) UpdateModule(ctx context.Context, moduleID string, req ModuleRequest) (*shared.Module, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var module shared.Module
	if err := c.do(ctx, http.MethodPut, "/api/modulos/"+moduleID, req, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

// DeleteModule deletes a module (DELETE /api/modulos/:id). Deleting a
// module with dependent data is a server-side business rule; the rejection
// comes back as a KindBusiness error.
func (c *Client) DeleteModule(ctx context.Context, moduleID string) error {
	return c.do(ctx, http.MethodDelete, "/api/modulos/"+moduleID, nil, nil)
}

// CreateCategory adds a category to a module (POST /api/modulos/:id/categorias).
// The weight-budget pre-check against sibling categories happens in the
// portal handler, which has the sibling list at hand.
func (c *Client) CreateCategory(ctx context.Context, req CategoryRequest) (*shared.Category, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var category shared.Category
	if err := c.do(ctx, http.MethodPost, "/api/modulos/"+req.ModuleID+"/categorias", req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// ============================================================================
// Module lifecycle toggles
// ============================================================================

// CloseModule closes a module (PUT /api/modulos/:id/cerrar).
func (c *Client) CloseModule(ctx context.Context, moduleID string) error {
	return c.do(ctx, http.MethodPut, "/api/modulos/"+moduleID+"/cerrar", nil, nil)
}

// ReopenModule reopens a closed module (PUT /api/modulos/:id/reabrir).
func (c *Client) ReopenModule(ctx context.Context, moduleID string) error {
	return c.do(ctx, http.MethodPut, "/api/modulos/"+moduleID+"/reabrir", nil, nil)
}

// PublishAverages makes a module's averages visible to students
// (PUT /api/modulos/:id/publicar-promedios).
func (c *Client) PublishAverages(ctx context.Context, moduleID string) error {
	return c.do(ctx, http.MethodPut, "/api/modulos/"+moduleID+"/publicar-promedios", nil, nil)
}

// HideAverages hides a module's published averages
// (PUT /api/modulos/:id/ocultar-promedios).
func (c *Client) HideAverages(ctx context.Context, moduleID string) error {
	return c.do(ctx, http.MethodPut, "/api/modulos/"+moduleID+"/ocultar-promedios", nil, nil)
}
