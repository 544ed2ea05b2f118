package api

import (
	"context"
	"net/http"

	"github.com/Steven2002S/sga-docente/internal/shared"
)

// MySchedule retrieves the teacher's weekly schedule
// (GET /api/docentes/mi-horario).
func (c *Client) MySchedule(ctx context.Context) ([]shared.ScheduleSlot, error) {
	var slots []shared.ScheduleSlot
	if err := c.do(ctx, http.MethodGet, "/api/docentes/mi-horario", nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// MyStudents retrieves every student across the teacher's courses
// (GET /api/docentes/mis-estudiantes).
func (c *Client) MyStudents(ctx context.Context) ([]shared.Student, error) {
	var students []shared.Student
	if err := c.do(ctx, http.MethodGet, "/api/docentes/mis-estudiantes", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// AllMyCourses retrieves every course assigned to the teacher
// (GET /api/docentes/todos-mis-cursos).
func (c *Client) AllMyCourses(ctx context.Context) ([]shared.Course, error) {
	var courses []shared.Course
	if err := c.do(ctx, http.MethodGet, "/api/docentes/todos-mis-cursos", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
