package collector

import (
	"sort"

	"fittracker/internal/core"
)

// ActivityTotals sums the summaries of one activity type.
type ActivityTotals struct {
	Count    int
	Duration float64 // hours
	Distance float64 // km
	Calories float64 // kcal
}

func (a *ActivityTotals) add(other ActivityTotals) {
	a.Count += other.Count
	a.Duration += other.Duration
	a.Distance += other.Distance
	a.Calories += other.Calories
}

// Totals aggregates a batch.
type Totals struct {
	Readings   int
	Failed     int
	All        ActivityTotals
	Activities map[string]*ActivityTotals // keyed by training type name
}

// Succeeded returns the number of readings with a summary.
func (t *Totals) Succeeded() int {
	return t.Readings - t.Failed
}

// ActivityNames returns the training type names present, sorted.
func (t *Totals) ActivityNames() []string {
	names := make([]string, 0, len(t.Activities))
	for name := range t.Activities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ComputeTotals computes totals from results. Pure function, no side effects.
func ComputeTotals(results []core.Result) *Totals {
	t := &Totals{
		Activities: make(map[string]*ActivityTotals),
	}

	for _, r := range results {
		t.Readings++
		if !r.OK() {
			t.Failed++
			continue
		}

		s := r.Summary
		one := ActivityTotals{
			Count:    1,
			Duration: s.Duration,
			Distance: s.Distance,
			Calories: s.Calories,
		}

		if _, exists := t.Activities[s.TrainingType]; !exists {
			t.Activities[s.TrainingType] = &ActivityTotals{}
		}
		t.Activities[s.TrainingType].add(one)
		t.All.add(one)
	}

	return t
}
