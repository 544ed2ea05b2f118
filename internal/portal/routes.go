// Package portal exposes the teacher-facing views over HTTP: rosters with
// filtering and statistics, grade tables, module/assignment management,
// submission review, schedule and profile. Every view is assembled from
// fresh upstream fetches; the portal holds no durable state of its own.
package portal

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Steven2002S/sga-docente/internal/api"
	"github.com/Steven2002S/sga-docente/internal/portal/handlers"
	"github.com/Steven2002S/sga-docente/internal/portal/util"
	"github.com/Steven2002S/sga-docente/internal/prefs"
	"github.com/Steven2002S/sga-docente/internal/shared"
)

// SetupRoutes configures the Chi router, middleware, and route handlers.
func SetupRoutes(cfg *shared.PortalConfig, client *api.Client, store *prefs.Store) *chi.Mux {
	r := chi.NewRouter()

	// 1. Global Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	// 2. Initialize Handlers
	h := &handlers.Handler{API: client, Prefs: store}

	// 3. Define Routes (all teacher-facing, all behind the bearer token)
	r.Route("/portal", func(r chi.Router) {
		r.Use(AuthMiddleware())

		// Courses and rosters
		r.Get("/cursos", h.AllMyCourses)
		r.Get("/cursos/{id}", h.GetCourse)
		r.Get("/cursos/{id}/roster", h.CourseRoster)
		r.Get("/cursos/{id}/calificaciones", h.CourseGradeTable)
		r.Get("/estudiantes", h.MyStudents)

		// Modules
		r.Route("/modulos", func(r chi.Router) {
			r.Get("/curso/{id_curso}", h.ListModules)
			r.Get("/{id}", h.GetModule)
			r.Post("/", h.CreateModule)
			r.Put("/{id}", h.UpdateModule)
			r.Delete("/{id}", h.DeleteModule)
			r.Post("/{id}/categorias", h.CreateCategory)
			r.Put("/{id}/cerrar", h.CloseModule)
			r.Put("/{id}/reabrir", h.ReopenModule)
			r.Put("/{id}/publicar-promedios", h.PublishAverages)
			r.Put("/{id}/ocultar-promedios", h.HideAverages)
		})

		// Assignments
		r.Route("/tareas", func(r chi.Router) {
			r.Get("/modulo/{id_modulo}", h.ListAssignments)
			r.Get("/{id}", h.GetAssignment)
			r.Post("/", h.CreateAssignment)
			r.Put("/{id}", h.UpdateAssignment)
			r.Delete("/{id}", h.DeleteAssignment)
		})

		// Submissions and grading
		r.Get("/entregas/tarea/{id_tarea}", h.ListSubmissions)
		r.Post("/entregas/{id}/calificar", h.GradeSubmission)

		// Schedule and profile
		r.Get("/horario", h.MySchedule)
		r.Get("/perfil", h.Profile)
		r.Put("/perfil", h.UpdateProfile)
		r.Put("/perfil/password", h.ChangePassword)

		// Local UI preferences
		r.Get("/preferencias", h.GetPreferences)
		r.Put("/preferencias", h.UpdatePreferences)
	})

	return r
}

// AuthMiddleware extracts the bearer token, decodes its claims for the
// teacher identity, and stores both on the request context. Signature
// verification happens upstream on every forwarded call; a token the API
// rejects comes back as an authorization notice.
func AuthMiddleware() func(http.Handler) http.Handler {
	parser := jwt.NewParser()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := util.ExtractToken(r)
			if err != nil {
				util.WriteJSONError(w, http.StatusUnauthorized, string(api.KindAuthorization), "Authorization token required")
				return
			}

			claims := jwt.MapClaims{}
			if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
				util.WriteJSONError(w, http.StatusUnauthorized, string(api.KindAuthorization), "Invalid or malformed token")
				return
			}

			identity := &handlers.Identity{}
			if sub, err := claims.GetSubject(); err == nil {
				identity.UserID = sub
			}
			if email, ok := claims["email"].(string); ok {
				identity.Email = email
			}
			if role, ok := claims["rol"].(string); ok {
				identity.Role = role
			}

			ctx := handlers.WithToken(r.Context(), tokenStr)
			ctx = handlers.WithIdentity(ctx, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
