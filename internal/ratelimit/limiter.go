// Package ratelimit paces replay of readings.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter lets through at most a fixed number of readings per second.
// A nil RateLimiter or a zero rate never blocks.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter for perSec readings per second.
// Fractional rates are allowed: 0.5 lets one reading through every two seconds.
func NewRateLimiter(perSec float64) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSec), 1),
	}
}

// Wait blocks until the next reading may be emitted or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r == nil || r.limiter.Limit() <= 0 {
		return ctx.Err()
	}
	return r.limiter.Wait(ctx)
}

// Rate returns the pace in readings per second, 0 when unpaced.
func (r *RateLimiter) Rate() float64 {
	if r == nil {
		return 0
	}
	return float64(r.limiter.Limit())
}
