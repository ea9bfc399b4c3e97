package collector

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"fittracker/internal/core"
	"fittracker/internal/training"
)

// sampleResults processes the demo batch plus one unknown code.
func sampleResults(t testing.TB) []core.Result {
	t.Helper()
	readings := []training.Reading{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "XYZ", Data: []float64{1, 1, 1}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}

	results := make([]core.Result, 0, len(readings))
	for i, r := range readings {
		res := core.Result{Index: i, Type: r.Type}
		w, err := training.Read(r)
		if err == nil {
			res.Summary, err = training.Summarize(w)
		}
		res.Err = err
		results = append(results, res)
	}
	return results
}

func TestCollector_KeepsOrder(t *testing.T) {
	c := NewCollector()
	for _, r := range sampleResults(t) {
		c.Report(r)
	}

	results := c.Results()
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("results[%d].Index = %d", i, r.Index)
		}
	}
}

func TestCollector_ResultsIsCopy(t *testing.T) {
	c := NewCollector()
	c.Report(core.Result{Index: 0, Type: "RUN"})

	results := c.Results()
	results[0].Type = "changed"

	if c.Results()[0].Type != "RUN" {
		t.Error("Results() must return a copy")
	}
}

func TestCollector_Failed(t *testing.T) {
	c := NewCollector()
	c.Report(core.Result{Index: 0})
	c.Report(core.Result{Index: 1, Err: errors.New("boom")})
	c.Report(core.Result{Index: 2, Err: errors.New("boom")})

	if c.Failed() != 2 {
		t.Errorf("expected 2 failed, got %d", c.Failed())
	}
}

func TestCollector_Compute(t *testing.T) {
	c := NewCollector()
	for _, r := range sampleResults(t) {
		c.Report(r)
	}

	totals := c.Compute()
	if totals.Readings != 4 {
		t.Errorf("expected 4 readings, got %d", totals.Readings)
	}
	if totals.Failed != 1 {
		t.Errorf("expected 1 failed, got %d", totals.Failed)
	}
	if totals.All.Count != 3 {
		t.Errorf("expected 3 workouts, got %d", totals.All.Count)
	}
}

func TestCollector_PrintText(t *testing.T) {
	c := NewCollector()
	for _, r := range sampleResults(t) {
		c.Report(r)
	}

	var buf bytes.Buffer
	c.PrintText(&buf)

	output := buf.String()
	if !strings.Contains(output, "Тип тренировки: Swimming;") {
		t.Errorf("expected swimming line, got: %s", output)
	}
	if !strings.Contains(output, `error: reading #2 (XYZ): unknown training type "XYZ"`) {
		t.Errorf("expected error line, got: %s", output)
	}
}

func TestCollector_PrintJSON(t *testing.T) {
	c := NewCollector()
	for _, r := range sampleResults(t) {
		c.Report(r)
	}

	var buf bytes.Buffer
	if err := c.PrintJSON(&buf); err != nil {
		t.Fatalf("PrintJSON: %v", err)
	}

	if !strings.Contains(buf.String(), `"training_type": "SportsWalking"`) {
		t.Errorf("expected walking workout in JSON, got: %s", buf.String())
	}
}
