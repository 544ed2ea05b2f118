package grades

import (
	"testing"

	"github.com/Steven2002S/sga-docente/internal/shared"
)

func student(id, name, surname string) shared.Student {
	return shared.Student{
		ID:               id,
		Name:             name,
		Surname:          surname,
		EnrollmentStatus: shared.EnrollmentActive,
	}
}

func surnames(students []shared.Student) []string {
	out := make([]string, len(students))
	for i, s := range students {
		out[i] = s.Surname
	}
	return out
}

func assertOrder(t *testing.T, got []shared.Student, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d students %v, want %d", len(got), surnames(got), len(want))
	}
	for i, w := range want {
		if got[i].Surname != w {
			t.Fatalf("order = %v, want %v", surnames(got), want)
		}
	}
}

func TestSortRoster(t *testing.T) {
	t.Run("spanish collation keeps enye adjacent", func(t *testing.T) {
		roster := []shared.Student{
			student("e1", "Luis", "Zamora"),
			student("e2", "Maria", "Peña"),
			student("e3", "Ana", "Perez"),
			student("e4", "Jose", "Pena"),
			student("e5", "Rosa", "Alvarez"),
		}
		sorted := SortRoster(roster)
		assertOrder(t, sorted, []string{"Alvarez", "Pena", "Peña", "Perez", "Zamora"})
	})

	t.Run("case insensitive", func(t *testing.T) {
		roster := []shared.Student{
			student("e1", "A", "garcia"),
			student("e2", "B", "Diaz"),
		}
		assertOrder(t, SortRoster(roster), []string{"Diaz", "garcia"})
	})

	t.Run("name breaks surname ties", func(t *testing.T) {
		roster := []shared.Student{
			student("e1", "Pedro", "Lopez"),
			student("e2", "Ana", "Lopez"),
		}
		sorted := SortRoster(roster)
		if sorted[0].Name != "Ana" {
			t.Errorf("tiebreaker order = %v", sorted[0].Name)
		}
	})

	t.Run("input not modified", func(t *testing.T) {
		roster := []shared.Student{
			student("e1", "L", "Zamora"),
			student("e2", "M", "Alvarez"),
		}
		SortRoster(roster)
		if roster[0].Surname != "Zamora" {
			t.Error("SortRoster mutated its input")
		}
	})
}

func TestRosterFilter(t *testing.T) {
	s1 := student("e1", "Maria", "Peña")
	s1.CourseCode = "MAT-101"
	s1.NationalID = "0912345678"
	s2 := student("e2", "Jose", "Garcia")
	s2.CourseCode = "MAT-101"
	s2.EnrollmentStatus = shared.EnrollmentWithdrawn
	s3 := student("e3", "Ana", "Lopez")
	s3.CourseCode = "FIS-201"
	roster := []shared.Student{s1, s2, s3}

	t.Run("empty filter matches everything", func(t *testing.T) {
		if got := (RosterFilter{}).Apply(roster); len(got) != 3 {
			t.Errorf("got %d students, want 3", len(got))
		}
	})

	t.Run("predicates compose with AND", func(t *testing.T) {
		f := RosterFilter{CourseCode: "MAT-101", Status: shared.EnrollmentActive}
		got := f.Apply(roster)
		if len(got) != 1 || got[0].ID != "e1" {
			t.Errorf("got %v, want only e1", surnames(got))
		}
	})

	t.Run("search matches national ID", func(t *testing.T) {
		got := (RosterFilter{Search: "091234"}).Apply(roster)
		if len(got) != 1 || got[0].ID != "e1" {
			t.Errorf("got %v, want only e1", surnames(got))
		}
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		got := (RosterFilter{Search: "GARCIA"}).Apply(roster)
		if len(got) != 1 || got[0].ID != "e2" {
			t.Errorf("got %v, want only e2", surnames(got))
		}
	})

	t.Run("application order is irrelevant", func(t *testing.T) {
		search := RosterFilter{Search: "a"}
		course := RosterFilter{CourseCode: "MAT-101"}
		status := RosterFilter{Status: shared.EnrollmentActive}
		combined := RosterFilter{Search: "a", CourseCode: "MAT-101", Status: shared.EnrollmentActive}

		forward := status.Apply(course.Apply(search.Apply(roster)))
		backward := search.Apply(course.Apply(status.Apply(roster)))
		allAtOnce := combined.Apply(roster)

		if len(forward) != len(backward) || len(forward) != len(allAtOnce) {
			t.Fatalf("sizes diverge: %d / %d / %d", len(forward), len(backward), len(allAtOnce))
		}
		for i := range forward {
			if forward[i].ID != backward[i].ID || forward[i].ID != allAtOnce[i].ID {
				t.Fatal("application order changed the result")
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		f := RosterFilter{CourseCode: "MAT-101"}
		once := f.Apply(roster)
		twice := f.Apply(once)
		if len(once) != len(twice) {
			t.Fatalf("second application changed the result: %d vs %d", len(once), len(twice))
		}
		for i := range once {
			if once[i].ID != twice[i].ID {
				t.Fatal("second application reordered the result")
			}
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		got := (RosterFilter{CourseCode: "MAT-101"}).Apply(roster)
		if got[0].ID != "e1" || got[1].ID != "e2" {
			t.Errorf("filter reordered input: %v", surnames(got))
		}
	})

	t.Run("input not mutated", func(t *testing.T) {
		(RosterFilter{Status: shared.EnrollmentActive}).Apply(roster)
		if roster[1].ID != "e2" {
			t.Error("Apply mutated its input")
		}
	})
}
