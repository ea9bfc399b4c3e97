package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"fittracker/internal/core"
)

// FormatText writes one summary line per workout in batch order, an error
// line per failed reading, and a totals block when there is more than one
// workout.
func FormatText(w io.Writer, results []core.Result, totals *Totals) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No readings processed")
		return
	}

	for _, r := range results {
		if r.OK() {
			fmt.Fprintln(w, r.Summary.Message())
			continue
		}
		fmt.Fprintf(w, "error: reading #%d (%s): %v\n", r.Index, r.Type, r.Err)
	}

	if totals == nil || totals.Succeeded() < 2 {
		return
	}

	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Totals (%d workouts, %d failed):\n", totals.Succeeded(), totals.Failed)
	for _, name := range totals.ActivityNames() {
		writeTotalsLine(w, name, totals.Activities[name])
	}
	writeTotalsLine(w, "All", &totals.All)
}

func writeTotalsLine(w io.Writer, name string, a *ActivityTotals) {
	fmt.Fprintf(w, "  %-15s %3d   %8.3f ч  %9.3f км  %10.3f ккал\n",
		name, a.Count, a.Duration, a.Distance, a.Calories)
}

// FormatJSON writes results and totals in JSON format.
func FormatJSON(w io.Writer, results []core.Result, totals *Totals) error {
	output := struct {
		Workouts []jsonWorkout `json:"workouts"`
		Failures []jsonFailure `json:"failures"`
		Totals   *jsonTotals   `json:"totals,omitempty"`
	}{
		Workouts: make([]jsonWorkout, 0, len(results)),
		Failures: make([]jsonFailure, 0),
	}

	for _, r := range results {
		if !r.OK() {
			output.Failures = append(output.Failures, jsonFailure{
				Index: r.Index,
				Type:  r.Type,
				Error: r.Err.Error(),
			})
			continue
		}
		output.Workouts = append(output.Workouts, jsonWorkout{
			Index:        r.Index,
			Type:         r.Type,
			TrainingType: r.Summary.TrainingType,
			Duration:     number(r.Summary.Duration),
			Distance:     number(r.Summary.Distance),
			Speed:        number(r.Summary.Speed),
			Calories:     number(r.Summary.Calories),
			Message:      r.Summary.Message(),
		})
	}

	if totals != nil {
		output.Totals = toJSONTotals(totals)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

type jsonWorkout struct {
	Index        int    `json:"index"`
	Type         string `json:"type"`
	TrainingType string `json:"training_type"`
	Duration     number `json:"duration"`
	Distance     number `json:"distance"`
	Speed        number `json:"speed"`
	Calories     number `json:"calories"`
	Message      string `json:"message"`
}

type jsonFailure struct {
	Index int    `json:"index"`
	Type  string `json:"type"`
	Error string `json:"error"`
}

type jsonActivityTotals struct {
	Count    int    `json:"count"`
	Duration number `json:"duration"`
	Distance number `json:"distance"`
	Calories number `json:"calories"`
}

type jsonTotals struct {
	Readings   int                           `json:"readings"`
	Failed     int                           `json:"failed"`
	All        jsonActivityTotals            `json:"all"`
	Activities map[string]jsonActivityTotals `json:"activities"`
}

func toJSONTotals(t *Totals) *jsonTotals {
	out := &jsonTotals{
		Readings:   t.Readings,
		Failed:     t.Failed,
		All:        toJSONActivityTotals(&t.All),
		Activities: make(map[string]jsonActivityTotals, len(t.Activities)),
	}
	for name, a := range t.Activities {
		out.Activities[name] = toJSONActivityTotals(a)
	}
	return out
}

func toJSONActivityTotals(a *ActivityTotals) jsonActivityTotals {
	return jsonActivityTotals{
		Count:    a.Count,
		Duration: number(a.Duration),
		Distance: number(a.Distance),
		Calories: number(a.Calories),
	}
}

// number is a float rounded to 3 decimals on output. Non-finite values,
// e.g. speed for a zero duration, are written as null.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)), nil
}
