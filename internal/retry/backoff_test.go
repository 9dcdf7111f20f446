package retry

import (
	"testing"
	"time"
)

// fixedJitter returns a jitter function that always produces 0.5,
// which maps to a zero random offset (no jitter applied).
func fixedJitter() float64 { return 0.5 }

func TestExponentialBackoff_NextDelay_GrowsExponentially(t *testing.T) {
	b := NewExponentialBackoff(5,
		WithInitialDelay(100*time.Millisecond),
		WithMaxDelay(10*time.Second),
		WithMultiplier(2.0),
		WithJitterFunc(fixedJitter),
	)

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 200 * time.Millisecond},
		{2, 400 * time.Millisecond},
		{3, 800 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := b.NextDelay(tt.attempt); got != tt.want {
			t.Errorf("NextDelay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestExponentialBackoff_NextDelay_CappedAtMax(t *testing.T) {
	b := NewExponentialBackoff(10,
		WithInitialDelay(100*time.Millisecond),
		WithMaxDelay(500*time.Millisecond),
		WithJitterFunc(fixedJitter),
	)

	if got := b.NextDelay(10); got != 500*time.Millisecond {
		t.Errorf("NextDelay(10) = %v, want %v (max cap)", got, 500*time.Millisecond)
	}
}

func TestExponentialBackoff_Jitter_StaysWithinBounds(t *testing.T) {
	b := NewExponentialBackoff(3,
		WithInitialDelay(1000*time.Millisecond),
		WithJitter(0.1),
	)

	// With 10% jitter the first delay must stay within [900ms, 1100ms]
	for i := 0; i < 50; i++ {
		d := b.NextDelay(0)
		if d < 900*time.Millisecond || d > 1100*time.Millisecond {
			t.Fatalf("NextDelay(0) = %v, outside jitter bounds [900ms, 1100ms]", d)
		}
	}
}

func TestExponentialBackoff_MaxAttempts(t *testing.T) {
	if got := NewExponentialBackoff(3).MaxAttempts(); got != 3 {
		t.Errorf("MaxAttempts() = %d, want 3", got)
	}
	if got := NewExponentialBackoff(-1).MaxAttempts(); got != -1 {
		t.Errorf("MaxAttempts() = %d, want -1", got)
	}
}
