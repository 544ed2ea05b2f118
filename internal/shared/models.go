// ============================================================================
// internal/shared/models.go
// Shared data models for the academic API wire format (Spanish field names)
// ============================================================================

package shared

import (
	"math"
	"time"
)

// ============================================================================
// People Models
// ============================================================================

// Student represents an enrolled student as returned by the roster endpoints.
type Student struct {
	ID         string `json:"id"`
	Name       string `json:"nombre"`
	Surname    string `json:"apellido"`
	NationalID string `json:"cedula"`

	// Enrollment context (denormalized by /api/cursos/:id/estudiantes and
	// /api/docentes/mis-estudiantes)
	CourseCode       string `json:"codigo_curso,omitempty"`
	CourseName       string `json:"nombre_curso,omitempty"`
	EnrollmentStatus string `json:"estado_matricula,omitempty"` // activo, retirado, egresado
}

// Teacher represents the authenticated teacher profile (/api/auth/me).
type Teacher struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Surname   string    `json:"apellido"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefono,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// ============================================================================
// Course Models
// ============================================================================

// Course represents a course offering the teacher is assigned to.
type Course struct {
	ID       string `json:"id"`
	Code     string `json:"codigo"`
	Name     string `json:"nombre"`
	Level    string `json:"nivel,omitempty"`
	Parallel string `json:"paralelo,omitempty"`
	Period   string `json:"periodo,omitempty"` // e.g., "2025-2026"
	Enrolled int32  `json:"matriculados,omitempty"`
}

// ScheduleSlot represents one entry of the teacher's weekly schedule
// (/api/docentes/mi-horario).
type ScheduleSlot struct {
	CourseID   string `json:"id_curso"`
	CourseCode string `json:"codigo_curso"`
	CourseName string `json:"nombre_curso"`
	Subject    string `json:"materia,omitempty"`
	Day        string `json:"dia"` // lunes..viernes
	StartTime  string `json:"hora_inicio"`
	EndTime    string `json:"hora_fin"`
	Room       string `json:"aula,omitempty"`
}

// ============================================================================
// Module / Category / Assignment Models
// ============================================================================

// Module is a grading period within a course.
type Module struct {
	ID                string     `json:"id"`
	CourseID          string     `json:"id_curso"`
	Name              string     `json:"nombre"`
	StartDate         *time.Time `json:"fecha_inicio,omitempty"`
	EndDate           *time.Time `json:"fecha_fin,omitempty"`
	State             string     `json:"estado"` // abierto, cerrado
	AveragesPublished bool       `json:"promedios_publicados"`
	Categories        []Category `json:"categorias,omitempty"`
}

// Category is a named weighted bucket of assignments within a module.
// Categories within one module sum to the module's fixed point budget.
type Category struct {
	ID       string  `json:"id"`
	ModuleID string  `json:"id_modulo"`
	Name     string  `json:"nombre"`
	Weight   float64 `json:"ponderacion"`
}

// Assignment is a gradable unit of work within a module (and optionally a
// category).
type Assignment struct {
	ID              string     `json:"id"`
	ModuleID        string     `json:"id_modulo"`
	CategoryID      string     `json:"id_categoria,omitempty"`
	Title           string     `json:"titulo"`
	Description     string     `json:"descripcion,omitempty"`
	MaxScore        float64    `json:"nota_maxima"`
	MinPassingScore float64    `json:"nota_minima_aprobacion,omitempty"` // informational only
	Weight          float64    `json:"ponderacion"`
	DueDate         *time.Time `json:"fecha_entrega,omitempty"`

	// File-submission constraints
	AllowedExtensions []string `json:"extensiones_permitidas,omitempty"`
	MaxFileSizeMB     int32    `json:"tamano_maximo_mb,omitempty"`
}

// ============================================================================
// Submission Models
// ============================================================================

// Submission links a student to an assignment. Score is nil until graded.
type Submission struct {
	ID           string     `json:"id"`
	AssignmentID string     `json:"id_tarea"`
	StudentID    string     `json:"id_estudiante"`
	StudentName  string     `json:"nombre_estudiante,omitempty"`
	SubmittedAt  *time.Time `json:"fecha_entrega,omitempty"`
	FileURL      string     `json:"archivo_url,omitempty"`
	Score        *float64   `json:"calificacion,omitempty"`
	Comment      string     `json:"comentario,omitempty"`
	GradedAt     *time.Time `json:"fecha_calificacion,omitempty"`
}

// State derives the submission state from score presence.
func (s *Submission) State() string {
	if s.Score != nil {
		return SubmissionGraded
	}
	return SubmissionPending
}

// ============================================================================
// Grade Snapshot Models
// ============================================================================

// StudentGrades is one student's pre-aggregated figures as returned by
// /api/calificaciones/curso/:id/completo. ModuleAverages is keyed by module
// id; a missing or zero entry means "no data" for display purposes.
type StudentGrades struct {
	StudentID      string             `json:"id_estudiante"`
	ModuleAverages map[string]float64 `json:"promedios_modulo"`
	GlobalAverage  float64            `json:"promedio_global"`

	// Sparse per-assignment scores, keyed by assignment id.
	Scores map[string]float64 `json:"calificaciones"`
}

// CourseGradesSnapshot is the full aggregation source for a course.
type CourseGradesSnapshot struct {
	CourseID string          `json:"id_curso"`
	Modules  []Module        `json:"modulos"`
	Students []StudentGrades `json:"estudiantes"`
}

// ============================================================================
// Grading Constants
// ============================================================================

const (
	// Scale and thresholds. The pass threshold applies uniformly at the
	// assignment, module and global level; per-assignment minimum passing
	// scores are informational display only.
	GradeScale    = 10.0
	PassThreshold = 7.0

	// Traffic-light bands for assignment-level display (score / max_score).
	GreenBandRatio = 0.70
	AmberBandRatio = 0.50

	// Point budget of a module (or of its categories summed).
	WeightBudget = 10.0

	// Comparison slack for weight sums. Small enough that a 0.01 overflow
	// is still rejected, large enough to absorb float dust at equality.
	WeightEpsilon = 1e-6

	// Submission states
	SubmissionPending = "pendiente"
	SubmissionGraded  = "calificada"

	// Module states
	ModuleOpen   = "abierto"
	ModuleClosed = "cerrado"

	// Enrollment states
	EnrollmentActive    = "activo"
	EnrollmentWithdrawn = "retirado"
	EnrollmentGraduated = "egresado"
)

// ============================================================================
// Invariant Helpers
// ============================================================================

// ClampScore bounds an already-stored score into [0, max] for redisplay.
// Grade entry never clamps; out-of-range input is rejected before the
// request is issued.
func ClampScore(s, max float64) float64 {
	if math.IsNaN(s) || s < 0 {
		return 0
	}
	if s > max {
		return max
	}
	return s
}

// IsApproved classifies a 0-10 average against the fixed threshold.
// Equality passes.
func IsApproved(average float64) bool {
	return average >= PassThreshold
}

// WeightFits reports whether adding a weight of w to siblings already
// summing to total stays within the fixed point budget.
func WeightFits(total, w float64) bool {
	return total+w <= WeightBudget+WeightEpsilon
}

// SumWeights adds up sibling weights for a pre-save budget check.
func SumWeights(weights []float64) float64 {
	var total float64
	for _, w := range weights {
		total += w
	}
	return total
}

// ModuleHasCategories reports whether assignment weights in this module are
// governed by category budgets instead of the module budget.
func (m *Module) ModuleHasCategories() bool {
	return len(m.Categories) > 0
}

// IsOpen reports whether the module still accepts grading mutations.
func (m *Module) IsOpen() bool {
	return m.State == ModuleOpen
}
