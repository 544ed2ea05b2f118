package api

import (
	"context"
	"net/http"

	"github.com/Steven2002S/sga-docente/internal/shared"
)

// GetCourse retrieves one course (GET /api/cursos/:id).
func (c *Client) GetCourse(ctx context.Context, courseID string) (*shared.Course, error) {
	var course shared.Course
	if err := c.do(ctx, http.MethodGet, "/api/cursos/"+courseID, nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// ListCourseStudents retrieves the roster of a course
// (GET /api/cursos/:id/estudiantes).
func (c *Client) ListCourseStudents(ctx context.Context, courseID string) ([]shared.Student, error) {
	var students []shared.Student
	if err := c.do(ctx, http.MethodGet, "/api/cursos/"+courseID+"/estudiantes", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetCourseGrades retrieves the per-assignment grade snapshot of a course
// (GET /api/cursos/:id/calificaciones).
func (c *Client) GetCourseGrades(ctx context.Context, courseID string) ([]shared.StudentGrades, error) {
	var grades []shared.StudentGrades
	if err := c.do(ctx, http.MethodGet, "/api/cursos/"+courseID+"/calificaciones", nil, &grades); err != nil {
		return nil, err
	}
	return grades, nil
}

// GetCourseGradesComplete retrieves the pre-aggregated per-module/global
// averages for a course (GET /api/calificaciones/curso/:id/completo). This
// is the aggregation source for the grade table views.
func (c *Client) GetCourseGradesComplete(ctx context.Context, courseID string) (*shared.CourseGradesSnapshot, error) {
	var snapshot shared.CourseGradesSnapshot
	if err := c.do(ctx, http.MethodGet, "/api/calificaciones/curso/"+courseID+"/completo", nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
