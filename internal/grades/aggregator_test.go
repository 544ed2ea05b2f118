package grades

import (
	"math"
	"testing"

	"github.com/Steven2002S/sga-docente/internal/shared"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestResolveScores(t *testing.T) {
	assignments := []shared.Assignment{
		{ID: "t1", MaxScore: 10},
		{ID: "t2", MaxScore: 10},
		{ID: "t3", MaxScore: 10},
	}

	t.Run("missing entries become zero", func(t *testing.T) {
		sg := shared.StudentGrades{Scores: map[string]float64{"t1": 8}}
		got := ResolveScores(sg, assignments)
		want := []float64{8, 0, 0}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("resolved[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("nil score map", func(t *testing.T) {
		got := ResolveScores(shared.StudentGrades{}, assignments)
		for i, s := range got {
			if s != 0 {
				t.Errorf("resolved[%d] = %v, want 0", i, s)
			}
		}
	})

	t.Run("stored out-of-range values clamped", func(t *testing.T) {
		sg := shared.StudentGrades{Scores: map[string]float64{
			"t1": -2,
			"t2": 14,
			"t3": math.NaN(),
		}}
		got := ResolveScores(sg, assignments)
		want := []float64{0, 10, 0}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("resolved[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})
}

func TestRawAverage(t *testing.T) {
	t.Run("no assignments", func(t *testing.T) {
		if got := RawAverage(nil); got != 0 {
			t.Errorf("RawAverage(nil) = %v, want 0", got)
		}
	})

	t.Run("ungraded work drags the mean down", func(t *testing.T) {
		// One graded 10 out of four assignments: 10/4, not 10/1.
		if got := RawAverage([]float64{10, 0, 0, 0}); !almostEqual(got, 2.5) {
			t.Errorf("RawAverage = %v, want 2.5", got)
		}
	})
}

func TestGlobalAverage(t *testing.T) {
	modules := []shared.Module{{ID: "m1"}, {ID: "m2"}, {ID: "m3"}}

	t.Run("no modules", func(t *testing.T) {
		if got := GlobalAverage(map[string]float64{}, nil); got != 0 {
			t.Errorf("GlobalAverage = %v, want 0", got)
		}
	})

	t.Run("equal module weighting", func(t *testing.T) {
		avgs := map[string]float64{"m1": 9, "m2": 6, "m3": 3}
		if got := GlobalAverage(avgs, modules); !almostEqual(got, 6) {
			t.Errorf("GlobalAverage = %v, want 6", got)
		}
	})

	t.Run("module order is irrelevant", func(t *testing.T) {
		avgs := map[string]float64{"m1": 9.3, "m2": 5.1, "m3": 7.7}
		forward := GlobalAverage(avgs, modules)
		reversed := GlobalAverage(avgs, []shared.Module{{ID: "m3"}, {ID: "m2"}, {ID: "m1"}})
		if !almostEqual(forward, reversed) {
			t.Errorf("order changed the average: %v vs %v", forward, reversed)
		}
	})

	t.Run("module without average counts as zero", func(t *testing.T) {
		avgs := map[string]float64{"m1": 9}
		if got := GlobalAverage(avgs, modules); !almostEqual(got, 3) {
			t.Errorf("GlobalAverage = %v, want 3", got)
		}
	})
}

func TestAggregate(t *testing.T) {
	t.Run("student with no graded work", func(t *testing.T) {
		snapshot := shared.CourseGradesSnapshot{
			CourseID: "c1",
			Modules:  []shared.Module{{ID: "m1"}, {ID: "m2"}},
			Students: []shared.StudentGrades{{StudentID: "e1"}},
		}
		assignments := []shared.Assignment{
			{ID: "t1", ModuleID: "m1", MaxScore: 10},
			{ID: "t2", ModuleID: "m2", MaxScore: 10},
		}

		results := Aggregate(snapshot, assignments)
		if len(results) != 1 {
			t.Fatalf("got %d results, want 1", len(results))
		}
		r := results[0]
		if r.RawAverage != 0 || r.GlobalAverage != 0 {
			t.Errorf("averages = (%v, %v), want zeros", r.RawAverage, r.GlobalAverage)
		}
		if r.Approved {
			t.Error("student with zero average must be reprobated")
		}
	})

	t.Run("boundary average approves", func(t *testing.T) {
		snapshot := shared.CourseGradesSnapshot{
			Modules: []shared.Module{{ID: "m1"}, {ID: "m2"}},
			Students: []shared.StudentGrades{{
				StudentID:      "e1",
				ModuleAverages: map[string]float64{"m1": 7.0, "m2": 7.0},
			}},
		}
		r := Aggregate(snapshot, nil)[0]
		if !almostEqual(r.GlobalAverage, 7.0) {
			t.Fatalf("GlobalAverage = %v, want 7.0", r.GlobalAverage)
		}
		if !r.Approved {
			t.Error("an exact 7.00 must be approved")
		}
	})

	t.Run("just below boundary reprobates", func(t *testing.T) {
		snapshot := shared.CourseGradesSnapshot{
			Modules: []shared.Module{{ID: "m1"}},
			Students: []shared.StudentGrades{{
				StudentID:      "e1",
				ModuleAverages: map[string]float64{"m1": 6.99},
			}},
		}
		if Aggregate(snapshot, nil)[0].Approved {
			t.Error("6.99 must be reprobated")
		}
	})
}

func TestStats(t *testing.T) {
	t.Run("empty roster", func(t *testing.T) {
		got := Stats(nil)
		if got.Total != 0 || got.Approved != 0 || got.Reprobated != 0 || got.Average != 0 {
			t.Errorf("Stats(nil) = %+v, want all zeros", got)
		}
	})

	t.Run("counts partition the roster", func(t *testing.T) {
		results := []StudentResult{
			{StudentID: "e1", GlobalAverage: 9, Approved: true},
			{StudentID: "e2", GlobalAverage: 7, Approved: true},
			{StudentID: "e3", GlobalAverage: 2, Approved: false},
		}
		got := Stats(results)
		if got.Total != 3 || got.Approved != 2 || got.Reprobated != 1 {
			t.Errorf("Stats = %+v, want total 3 / approved 2 / reprobated 1", got)
		}
		if !almostEqual(got.Average, 6) {
			t.Errorf("Average = %v, want 6", got.Average)
		}
	})
}

func TestBand(t *testing.T) {
	cases := []struct {
		name  string
		score float64
		max   float64
		want  ScoreBand
	}{
		{"green at threshold", 7, 10, BandGreen},
		{"amber below green", 6.9, 10, BandAmber},
		{"amber at threshold", 5, 10, BandAmber},
		{"red below amber", 4.9, 10, BandRed},
		{"zero max falls red", 5, 0, BandRed},
		{"negative max falls red", 5, -1, BandRed},
		{"non-decimal scale", 14, 20, BandGreen},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Band(tc.score, tc.max); got != tc.want {
				t.Errorf("Band(%v, %v) = %q, want %q", tc.score, tc.max, got, tc.want)
			}
		})
	}
}

func TestFormatModuleAverage(t *testing.T) {
	t.Run("positive renders two decimals", func(t *testing.T) {
		if got := FormatModuleAverage(7.5); got != "7.50" {
			t.Errorf("got %q, want %q", got, "7.50")
		}
	})
	t.Run("zero renders dash", func(t *testing.T) {
		if got := FormatModuleAverage(0); got != "-" {
			t.Errorf("got %q, want %q", got, "-")
		}
	})
}

func TestSortedModuleIDs(t *testing.T) {
	modules := []shared.Module{{ID: "m3"}, {ID: "m1"}, {ID: "m2"}}
	got := SortedModuleIDs(modules)
	want := []string{"m1", "m2", "m3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortedModuleIDs = %v, want %v", got, want)
		}
	}
}
