package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestNewRateLimiter_ZeroRate(t *testing.T) {
	rl := NewRateLimiter(0)

	start := time.Now()
	for i := 0; i < 100; i++ {
		if err := rl.Wait(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 10*time.Millisecond {
		t.Errorf("zero rate should not block, took %v", elapsed)
	}
}

func TestRateLimiter_NilNeverBlocks(t *testing.T) {
	var rl *RateLimiter

	if err := rl.Wait(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if rl.Rate() != 0 {
		t.Errorf("Rate() = %v, want 0", rl.Rate())
	}
}

func TestRateLimiter_Paces(t *testing.T) {
	rl := NewRateLimiter(20) // one every 50ms

	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 5; i++ {
		if err := rl.Wait(ctx); err != nil {
			t.Fatalf("wait failed: %v", err)
		}
	}
	elapsed := time.Since(start)

	// first is free, the next four wait 50ms each
	if elapsed < 150*time.Millisecond {
		t.Errorf("pacing doesn't appear to be working, elapsed: %v", elapsed)
	}
}

func TestRateLimiter_ContextCancelled(t *testing.T) {
	rl := NewRateLimiter(1)
	_ = rl.Wait(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := rl.Wait(ctx); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestRateLimiter_ZeroRateStillHonoursCancel(t *testing.T) {
	rl := NewRateLimiter(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := rl.Wait(ctx); err != context.Canceled {
		t.Errorf("Wait() = %v, want context.Canceled", err)
	}
}

func TestRateLimiter_Rate(t *testing.T) {
	if got := NewRateLimiter(2.5).Rate(); got != 2.5 {
		t.Errorf("Rate() = %v, want 2.5", got)
	}
	if got := NewRateLimiter(0).Rate(); got != 0 {
		t.Errorf("Rate() = %v, want 0", got)
	}
}
