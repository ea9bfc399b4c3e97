// Package core defines the types shared by the tracker and the collector.
package core

import "fittracker/internal/training"

// Result is the outcome of processing one reading of a batch.
type Result struct {
	Index   int    // position in the batch, 0-based
	Type    string // type code as read, e.g. "RUN"
	Summary training.Summary
	Err     error
}

// OK reports whether the reading produced a summary.
func (r Result) OK() bool {
	return r.Err == nil
}

// Reporter receives results as readings are processed.
type Reporter interface {
	Report(Result)
}

// Discard drops every result.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(Result) {}
