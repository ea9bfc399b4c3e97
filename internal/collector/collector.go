// Package collector gathers processed readings and reports on them.
package collector

import (
	"io"

	"fittracker/internal/core"
)

// Collector keeps results in the order they are reported.
// Processing is sequential, so no locking is needed.
type Collector struct {
	results []core.Result
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{results: make([]core.Result, 0)}
}

// Report records a result.
func (c *Collector) Report(res core.Result) {
	c.results = append(c.results, res)
}

// Results returns a copy of the collected results.
func (c *Collector) Results() []core.Result {
	out := make([]core.Result, len(c.results))
	copy(out, c.results)
	return out
}

// Failed returns the number of readings that produced no summary.
func (c *Collector) Failed() int {
	n := 0
	for _, r := range c.results {
		if !r.OK() {
			n++
		}
	}
	return n
}

// Compute returns totals over everything collected so far.
func (c *Collector) Compute() *Totals {
	return ComputeTotals(c.results)
}

// PrintText writes the text report.
func (c *Collector) PrintText(w io.Writer) {
	FormatText(w, c.results, c.Compute())
}

// PrintJSON writes the JSON report.
func (c *Collector) PrintJSON(w io.Writer) error {
	return FormatJSON(w, c.results, c.Compute())
}
