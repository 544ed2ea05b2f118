package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Steven2002S/sga-docente/internal/shared"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second)
}

func TestBearerToken(t *testing.T) {
	t.Run("sent when set", func(t *testing.T) {
		var got string
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode([]shared.Course{})
		})

		if _, err := c.WithToken("tok-123").AllMyCourses(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Bearer tok-123" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer tok-123")
		}
	})

	t.Run("absent when unset", func(t *testing.T) {
		var got string
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode([]shared.Course{})
		})

		if _, err := c.AllMyCourses(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "" {
			t.Errorf("Authorization = %q, want empty", got)
		}
	})

	t.Run("WithToken does not mutate the original", func(t *testing.T) {
		c := NewClient("http://localhost", time.Second)
		c.WithToken("tok")
		if c.token != "" {
			t.Error("WithToken mutated the receiver")
		}
	})
}

func TestErrorClassification(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   ErrorKind
	}{
		{"401 is authorization", http.StatusUnauthorized, KindAuthorization},
		{"403 is authorization", http.StatusForbidden, KindAuthorization},
		{"400 is validation", http.StatusBadRequest, KindValidation},
		{"422 is validation", http.StatusUnprocessableEntity, KindValidation},
		{"503 is transport", http.StatusServiceUnavailable, KindTransport},
		{"409 is business rule", http.StatusConflict, KindBusiness},
		{"500 is business rule", http.StatusInternalServerError, KindBusiness},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"success": false,
					"message": "upstream says no",
				})
			})

			_, err := c.GetCourse(context.Background(), "c1")
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("got %T, want *APIError", err)
			}
			if apiErr.Kind != tc.want {
				t.Errorf("Kind = %q, want %q", apiErr.Kind, tc.want)
			}
			if apiErr.Status != tc.status {
				t.Errorf("Status = %d, want %d", apiErr.Status, tc.status)
			}
			if apiErr.Message != "upstream says no" {
				t.Errorf("Message = %q, want the server-reported message", apiErr.Message)
			}
		})
	}

	t.Run("unreachable server is transport", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()
		c := NewClient(server.URL, time.Second)

		_, err := c.GetCourse(context.Background(), "c1")
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("got %T, want *APIError", err)
		}
		if apiErr.Kind != KindTransport {
			t.Errorf("Kind = %q, want %q", apiErr.Kind, KindTransport)
		}
		if apiErr.Status != 0 {
			t.Errorf("Status = %d, want 0 for a failed round-trip", apiErr.Status)
		}
	})

	t.Run("unparseable error body keeps status text", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte("<html>boom</html>"))
		})

		_, err := c.GetCourse(context.Background(), "c1")
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("got %T, want *APIError", err)
		}
		if apiErr.Message != http.StatusText(http.StatusConflict) {
			t.Errorf("Message = %q, want status text fallback", apiErr.Message)
		}
	})
}

func TestGradeSubmission(t *testing.T) {
	t.Run("rejects score above max without a request", func(t *testing.T) {
		called := false
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		_, err := c.GradeSubmission(context.Background(), "e1", GradeRequest{
			Score:    12,
			MaxScore: 10,
		})
		if !IsValidation(err) {
			t.Fatalf("got %v, want a validation error", err)
		}
		if called {
			t.Error("an out-of-range score must never reach the network")
		}
	})

	t.Run("rejects negative score", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("request issued for a negative score")
		})

		_, err := c.GradeSubmission(context.Background(), "e1", GradeRequest{
			Score:    -1,
			MaxScore: 10,
		})
		if !IsValidation(err) {
			t.Fatalf("got %v, want a validation error", err)
		}
	})

	t.Run("records a valid grade", func(t *testing.T) {
		var path string
		var payload map[string]interface{}
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			json.NewDecoder(r.Body).Decode(&payload)
			score := 8.5
			json.NewEncoder(w).Encode(shared.Submission{ID: "e1", Score: &score})
		})

		sub, err := c.GradeSubmission(context.Background(), "e1", GradeRequest{
			Score:    8.5,
			Comment:  "bien",
			MaxScore: 10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "/api/entregas/e1/calificar" {
			t.Errorf("path = %q", path)
		}
		if payload["calificacion"] != 8.5 {
			t.Errorf("payload calificacion = %v, want 8.5", payload["calificacion"])
		}
		if _, leaked := payload["MaxScore"]; leaked {
			t.Error("MaxScore must not be serialized")
		}
		if sub.State() != shared.SubmissionGraded {
			t.Errorf("State() = %q, want %q", sub.State(), shared.SubmissionGraded)
		}
	})

	t.Run("score equal to max accepted", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			score := 10.0
			json.NewEncoder(w).Encode(shared.Submission{ID: "e1", Score: &score})
		})

		if _, err := c.GradeSubmission(context.Background(), "e1", GradeRequest{Score: 10, MaxScore: 10}); err != nil {
			t.Fatalf("a full score must be accepted, got %v", err)
		}
	})
}

func TestGetCourseGradesComplete(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/calificaciones/curso/c1/completo" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(shared.CourseGradesSnapshot{
			CourseID: "c1",
			Modules:  []shared.Module{{ID: "m1"}},
			Students: []shared.StudentGrades{{StudentID: "e1"}},
		})
	})

	snapshot, err := c.GetCourseGradesComplete(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot.CourseID != "c1" || len(snapshot.Modules) != 1 {
		t.Errorf("snapshot = %+v", snapshot)
	}
}
