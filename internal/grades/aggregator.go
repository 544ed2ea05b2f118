// Package grades derives the teacher-facing grade figures from the
// server-authoritative snapshots: dense per-student score vectors, raw and
// weighted averages, pass/fail classification and course statistics.
package grades

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/Steven2002S/sga-docente/internal/shared"
)

// ScoreBand is the traffic-light classification used on assignment scores.
type ScoreBand string

const (
	BandGreen ScoreBand = "verde"
	BandAmber ScoreBand = "ambar"
	BandRed   ScoreBand = "rojo"
)

// StudentResult holds the derived figures for one student.
type StudentResult struct {
	StudentID      string             `json:"id_estudiante"`
	RawAverage     float64            `json:"promedio_simple"`
	ModuleAverages map[string]float64 `json:"promedios_modulo"`
	GlobalAverage  float64            `json:"promedio_global"`
	Approved       bool               `json:"aprobado"`
}

// CourseStats are the reductions over the currently visible roster.
type CourseStats struct {
	Total      int     `json:"total"`
	Approved   int     `json:"aprobados"`
	Reprobated int     `json:"reprobados"`
	Average    float64 `json:"promedio"`
}

// resolveScore returns the effective score of one (student, assignment)
// pair. Absent and non-finite entries count as a literal zero, so an
// assignment with no submission lowers the average instead of leaving the
// denominator. This matches the upstream grading policy; do not switch to
// averaging graded work only.
func resolveScore(scores map[string]float64, assignmentID string) float64 {
	s, ok := scores[assignmentID]
	if !ok || math.IsNaN(s) || math.IsInf(s, 0) {
		return 0
	}
	return s
}

// ResolveScores produces the fully dense score vector for one student over
// the complete assignment set, clamping stored values into range for
// redisplay.
func ResolveScores(sg shared.StudentGrades, assignments []shared.Assignment) []float64 {
	resolved := make([]float64, len(assignments))
	for i, a := range assignments {
		resolved[i] = shared.ClampScore(resolveScore(sg.Scores, a.ID), a.MaxScore)
	}
	return resolved
}

// RawAverage is the arithmetic mean of all resolved scores, equal weighting.
// Secondary display statistic only; never used for pass/fail.
func RawAverage(resolved []float64) float64 {
	if len(resolved) == 0 {
		return 0
	}
	var sum float64
	for _, s := range resolved {
		sum += s
	}
	return sum / float64(len(resolved))
}

// GlobalAverage is the mean of the per-module averages with equal module
// weighting, independent of how many assignments each module contains.
// Module order never changes the result.
func GlobalAverage(moduleAverages map[string]float64, modules []shared.Module) float64 {
	if len(modules) == 0 {
		return 0
	}
	var sum float64
	for _, m := range modules {
		sum += moduleAverages[m.ID] // absent -> 0
	}
	return sum / float64(len(modules))
}

// Aggregate derives the figures for every student in the snapshot.
func Aggregate(snapshot shared.CourseGradesSnapshot, assignments []shared.Assignment) []StudentResult {
	results := make([]StudentResult, 0, len(snapshot.Students))

	for _, sg := range snapshot.Students {
		moduleAvgs := make(map[string]float64, len(snapshot.Modules))
		for _, m := range snapshot.Modules {
			moduleAvgs[m.ID] = sg.ModuleAverages[m.ID]
		}

		global := GlobalAverage(moduleAvgs, snapshot.Modules)

		results = append(results, StudentResult{
			StudentID:      sg.StudentID,
			RawAverage:     RawAverage(ResolveScores(sg, assignments)),
			ModuleAverages: moduleAvgs,
			GlobalAverage:  global,
			Approved:       shared.IsApproved(global),
		})
	}

	return results
}

// Stats reduces the visible roster's global averages into the course
// statistics. Recomputed on every filter or search change, never cached.
func Stats(results []StudentResult) CourseStats {
	cs := CourseStats{Total: len(results)}
	if len(results) == 0 {
		return cs
	}

	averages := make([]float64, len(results))
	for i, r := range results {
		averages[i] = r.GlobalAverage
		if r.Approved {
			cs.Approved++
		} else {
			cs.Reprobated++
		}
	}

	mean, err := stats.Mean(averages)
	if err != nil {
		return cs
	}
	cs.Average = mean
	return cs
}

// Band classifies an assignment score for traffic-light display.
// Zero or invalid max scores fall to red instead of dividing by zero.
func Band(score, maxScore float64) ScoreBand {
	if maxScore <= 0 {
		return BandRed
	}
	ratio := shared.ClampScore(score, maxScore) / maxScore
	switch {
	case ratio >= shared.GreenBandRatio:
		return BandGreen
	case ratio >= shared.AmberBandRatio:
		return BandAmber
	default:
		return BandRed
	}
}

// FormatModuleAverage renders a module average for display. A zero renders
// as a dash rather than "0.00" so the table never implies a confirmed zero
// when no grade exists; positive values render with two decimals. The
// asymmetry is intentional even when the zero is a computed true zero.
func FormatModuleAverage(v float64) string {
	if v > 0 {
		return fmt.Sprintf("%.2f", v)
	}
	return "-"
}

// SortedModuleIDs returns the snapshot's module ids in a stable order for
// tabular rendering.
func SortedModuleIDs(modules []shared.Module) []string {
	ids := make([]string, len(modules))
	for i, m := range modules {
		ids[i] = m.ID
	}
	sort.Strings(ids)
	return ids
}
