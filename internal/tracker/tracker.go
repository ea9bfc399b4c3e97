// Package tracker turns a batch of readings into workout summaries.
package tracker

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fittracker/internal/core"
	"fittracker/internal/ratelimit"
	"fittracker/internal/training"
)

// Tracker processes readings one at a time, in batch order.
// A failed reading is reported with its error and never stops the batch.
type Tracker struct {
	reporter  core.Reporter
	limiter   *ratelimit.RateLimiter
	logger    *zap.SugaredLogger
	read      func(training.Reading) (training.Workout, error)
	processed int
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(t *Tracker) { t.logger = l }
}

// WithLimiter paces readings, e.g. to replay a recorded batch.
func WithLimiter(l *ratelimit.RateLimiter) Option {
	return func(t *Tracker) { t.limiter = l }
}

func New(reporter core.Reporter, opts ...Option) *Tracker {
	t := &Tracker{
		reporter: reporter,
		logger:   zap.NewNop().Sugar(),
		read:     training.Read,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.reporter == nil {
		t.reporter = core.Discard
	}
	return t
}

// Process handles every reading in order. It only returns an error when ctx
// is done before the batch finishes; per-reading failures go to the reporter.
func (t *Tracker) Process(ctx context.Context, readings []training.Reading) error {
	for i, r := range readings {
		if err := t.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("stopped after %d of %d readings: %w", i, len(readings), err)
		}

		res := t.processOne(i, r)
		if res.OK() {
			t.logger.Debugw("workout processed",
				"index", i,
				"type", r.Type,
				"distance_km", res.Summary.Distance,
				"calories", res.Summary.Calories)
		} else {
			t.logger.Warnw("reading skipped", "index", i, "type", r.Type, "error", res.Err)
		}
		t.reporter.Report(res)
		t.processed++
	}
	return nil
}

// Processed returns the number of readings handled so far.
func (t *Tracker) Processed() int {
	return t.processed
}

func (t *Tracker) processOne(index int, r training.Reading) (res core.Result) {
	res = core.Result{Index: index, Type: r.Type}
	defer func() {
		if p := recover(); p != nil {
			res.Err = fmt.Errorf("panic: %v", p)
		}
	}()

	w, err := t.read(r)
	if err != nil {
		res.Err = err
		return res
	}

	res.Summary, res.Err = training.Summarize(w)
	return res
}
