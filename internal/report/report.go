// Package report computes the dashboard views for one account's workout log.
//
// Everything in this package is a pure function of its inputs: no storage, no
// clock, no hidden state. Identical inputs produce identical outputs,
// including ordering. The canonical output order for every table or series is
// ascending date, then ascending exercise name.
package report

import (
	"sort"
	"time"

	"github.com/sharmasaravanan/workout-tracker-app/internal/domain"
)

// Filter holds the user-controlled parameters of a dashboard request.
type Filter struct {
	// Start and End are inclusive calendar-date bounds. A zero value means
	// the bound is open on that side.
	Start time.Time
	End   time.Time

	// Exercises restricts the weight-progression view only. nil selects
	// every exercise present in the filtered range; an empty non-nil slice
	// is the explicit "nothing selected" state.
	Exercises []string

	// Interval sets the bucket size of the period aggregate.
	Interval Interval
}

// Summary holds the overall totals of the filtered range.
type Summary struct {
	Workouts  int `json:"workouts"`
	TotalSets int `json:"totalSets"`
	TotalReps int `json:"totalReps"`
}

// ProgressionPoint is one (date, weight) sample of an exercise's trend.
type ProgressionPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
}

// ExerciseSeries is the weight progression of a single exercise, points in
// ascending date order.
type ExerciseSeries struct {
	Exercise string             `json:"exercise"`
	Points   []ProgressionPoint `json:"points"`
}

// VolumePoint is the training volume of a single entry.
type VolumePoint struct {
	Date     time.Time `json:"date"`
	Exercise string    `json:"exercise"`
	Volume   float64   `json:"volume"`
}

// ExerciseRPE is the multiset of RPE values recorded for one exercise.
// Consumers derive box-plot statistics from it.
type ExerciseRPE struct {
	Exercise string    `json:"exercise"`
	Values   []float64 `json:"values"`
}

// PeriodGroup is one (bucket, exercise) group of the period aggregate.
type PeriodGroup struct {
	Period      time.Time `json:"period"` // First day of the bucket
	Exercise    string    `json:"exercise"`
	MaxWeight   float64   `json:"maxWeight"`
	TotalVolume float64   `json:"totalVolume"`
}

// Report bundles every dashboard view computed for one request.
type Report struct {
	// Empty is set when the filter yields no entries (including an inverted
	// date range). It is an informational state, not a failure.
	Empty bool `json:"empty"`

	Interval          Interval         `json:"interval"`
	Summary           Summary          `json:"summary"`
	WeightProgression []ExerciseSeries `json:"weightProgression"`
	VolumeSeries      []VolumePoint    `json:"volumeSeries"`
	RPEDistribution   []ExerciseRPE    `json:"rpeDistribution"`
	PeriodAggregate   []PeriodGroup    `json:"periodAggregate"`
}

// Build computes every dashboard view from one account's entries under the
// given filter. Entries outside the inclusive [Start, End] range are
// excluded. An inverted range (Start after End) or an empty filtered set
// yields Report.Empty, never an error.
func Build(entries []domain.WorkoutEntry, f Filter) Report {
	if f.Interval == "" {
		f.Interval = IntervalDaily
	}
	empty := Report{Empty: true, Interval: f.Interval}

	if !f.Start.IsZero() && !f.End.IsZero() && f.Start.After(f.End) {
		return empty
	}

	filtered := filterByDate(entries, f.Start, f.End)
	if len(filtered) == 0 {
		return empty
	}
	sortCanonical(filtered)

	return Report{
		Interval:          f.Interval,
		Summary:           summarize(filtered),
		WeightProgression: weightProgression(filtered, f.Exercises),
		VolumeSeries:      volumeSeries(filtered),
		RPEDistribution:   rpeDistribution(filtered),
		PeriodAggregate:   periodAggregate(filtered, f.Interval),
	}
}

func filterByDate(entries []domain.WorkoutEntry, start, end time.Time) []domain.WorkoutEntry {
	start = domain.DateOnly(start)
	end = domain.DateOnly(end)
	var out []domain.WorkoutEntry
	for _, e := range entries {
		d := domain.DateOnly(e.Date)
		if !start.IsZero() && d.Before(start) {
			continue
		}
		if !end.IsZero() && d.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// sortCanonical orders entries by date, then exercise, then id as a final
// tie-break so two runs over the same set never disagree.
func sortCanonical(entries []domain.WorkoutEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		if entries[i].Exercise != entries[j].Exercise {
			return entries[i].Exercise < entries[j].Exercise
		}
		return entries[i].ID < entries[j].ID
	})
}

func summarize(entries []domain.WorkoutEntry) Summary {
	s := Summary{Workouts: len(entries)}
	for _, e := range entries {
		s.TotalSets += e.Sets
		s.TotalReps += e.Reps
	}
	return s
}

// weightProgression builds the per-exercise weight trend. selection follows
// the Filter.Exercises contract: nil means every exercise, an empty non-nil
// slice means none were selected.
func weightProgression(entries []domain.WorkoutEntry, selection []string) []ExerciseSeries {
	if selection != nil && len(selection) == 0 {
		return nil
	}

	var selected map[string]bool
	if selection != nil {
		selected = make(map[string]bool, len(selection))
		for _, name := range selection {
			selected[name] = true
		}
	}

	byExercise := make(map[string][]ProgressionPoint)
	for _, e := range entries {
		if selected != nil && !selected[e.Exercise] {
			continue
		}
		byExercise[e.Exercise] = append(byExercise[e.Exercise], ProgressionPoint{
			Date:   domain.DateOnly(e.Date),
			Weight: e.Weight,
		})
	}

	series := make([]ExerciseSeries, 0, len(byExercise))
	for exercise, points := range byExercise {
		series = append(series, ExerciseSeries{Exercise: exercise, Points: points})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Exercise < series[j].Exercise })
	return series
}

func volumeSeries(entries []domain.WorkoutEntry) []VolumePoint {
	points := make([]VolumePoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, VolumePoint{
			Date:     domain.DateOnly(e.Date),
			Exercise: e.Exercise,
			Volume:   e.Volume(),
		})
	}
	return points
}

func rpeDistribution(entries []domain.WorkoutEntry) []ExerciseRPE {
	byExercise := make(map[string][]float64)
	for _, e := range entries {
		byExercise[e.Exercise] = append(byExercise[e.Exercise], e.RPE)
	}

	dist := make([]ExerciseRPE, 0, len(byExercise))
	for exercise, values := range byExercise {
		dist = append(dist, ExerciseRPE{Exercise: exercise, Values: values})
	}
	sort.Slice(dist, func(i, j int) bool { return dist[i].Exercise < dist[j].Exercise })
	return dist
}

// periodAggregate groups entries by (bucket, exercise) and reduces each group
// to its max weight and summed volume. Buckets with no entries are omitted.
func periodAggregate(entries []domain.WorkoutEntry, interval Interval) []PeriodGroup {
	type key struct {
		period   time.Time
		exercise string
	}
	groups := make(map[key]*PeriodGroup)
	for _, e := range entries {
		k := key{period: interval.BucketStart(e.Date), exercise: e.Exercise}
		g, ok := groups[k]
		if !ok {
			g = &PeriodGroup{Period: k.period, Exercise: k.exercise}
			groups[k] = g
		}
		if e.Weight > g.MaxWeight {
			g.MaxWeight = e.Weight
		}
		g.TotalVolume += e.Volume()
	}

	out := make([]PeriodGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Period.Equal(out[j].Period) {
			return out[i].Period.Before(out[j].Period)
		}
		return out[i].Exercise < out[j].Exercise
	})
	return out
}
