package grades

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Steven2002S/sga-docente/internal/shared"
)

// Every roster and grade view presents students ordered by surname with
// Spanish collation, so accented surnames sort next to their unaccented
// counterparts. The ordering is reapplied after any filter or search.

// SortRoster orders students by surname (then name as tiebreaker),
// case-insensitive, Spanish collation, stable. The input slice is not
// modified.
func SortRoster(students []shared.Student) []shared.Student {
	sorted := make([]shared.Student, len(students))
	copy(sorted, students)

	c := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(sorted, func(i, j int) bool {
		if cmp := c.CompareString(sorted[i].Surname, sorted[j].Surname); cmp != 0 {
			return cmp < 0
		}
		return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})

	return sorted
}

// RosterFilter narrows the displayed roster. The three predicates compose
// with AND; an empty predicate matches everything. Filtering never mutates
// the fetched data.
type RosterFilter struct {
	Search     string // matches name, surname, national ID or course name
	CourseCode string // exact match
	Status     string // exact match on enrollment state
}

// Apply returns the students matching every predicate, preserving input
// order. Applying the same filter twice is a no-op.
func (f RosterFilter) Apply(students []shared.Student) []shared.Student {
	matched := make([]shared.Student, 0, len(students))
	for _, s := range students {
		if f.matches(s) {
			matched = append(matched, s)
		}
	}
	return matched
}

func (f RosterFilter) matches(s shared.Student) bool {
	if f.CourseCode != "" && s.CourseCode != f.CourseCode {
		return false
	}
	if f.Status != "" && s.EnrollmentStatus != f.Status {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(strings.TrimSpace(f.Search))
		if q != "" &&
			!strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.Surname), q) &&
			!strings.Contains(strings.ToLower(s.NationalID), q) &&
			!strings.Contains(strings.ToLower(s.CourseName), q) {
			return false
		}
	}
	return true
}
