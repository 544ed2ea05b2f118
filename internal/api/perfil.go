package api

import (
	"context"
	"net/http"

	"github.com/Steven2002S/sga-docente/internal/shared"
)

// ProfileRequest is the payload for updating the teacher's own profile.
type ProfileRequest struct {
	Name    string `json:"nombre" validate:"required,min=1,max=120"`
	Surname string `json:"apellido" validate:"required,min=1,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"telefono,omitempty" validate:"omitempty,min=7,max=20"`
}

// PasswordChangeRequest is the payload for the credential self-service.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"password_actual" validate:"required"`
	NewPassword     string `json:"password_nueva" validate:"required,min=8"`
}

// Me retrieves the authenticated teacher's profile (GET /api/auth/me).
func (c *Client) Me(ctx context.Context) (*shared.Teacher, error) {
	var teacher shared.Teacher
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// UpdateMe updates the authenticated teacher's profile (PUT /api/auth/me).
func (c *Client) UpdateMe(ctx context.Context, req ProfileRequest) (*shared.Teacher, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var teacher shared.Teacher
	if err := c.do(ctx, http.MethodPut, "/api/auth/me", req, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// ChangePassword changes the teacher's password
// (PUT /api/usuarios/cambiar-password).
func (c *Client) ChangePassword(ctx context.Context, req PasswordChangeRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, "/api/usuarios/cambiar-password", req, nil)
}
