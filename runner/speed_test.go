package runner

import (
	"testing"
	"time"
)

func TestIntervalMapping(t *testing.T) {
	testCases := []struct {
		name     string
		load     float64
		limit    MaxRate
		expected time.Duration
	}{
		{name: "idle fps10", load: 0, limit: FPS10, expected: 500 * time.Millisecond},
		{name: "idle fps20", load: 0, limit: FPS20, expected: 500 * time.Millisecond},
		{name: "idle fps30", load: 0, limit: FPS30, expected: 500 * time.Millisecond},
		{name: "idle fps40", load: 0, limit: FPS40, expected: 500 * time.Millisecond},
		{name: "low load stays floored", load: 4, limit: FPS10, expected: 500 * time.Millisecond},
		{name: "half load fps20", load: 50, limit: FPS20, expected: 100 * time.Millisecond},
		{name: "full load fps10", load: 100, limit: FPS10, expected: 100 * time.Millisecond},
		{name: "full load fps40", load: 100, limit: FPS40, expected: 25 * time.Millisecond},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Interval(tc.load, tc.limit); got != tc.expected {
				t.Errorf("Interval(%v, %v) = %v, want %v", tc.load, tc.limit, got, tc.expected)
			}
		})
	}
}

// The animation must never slow down as load rises, for any rate limit.
func TestIntervalMonotonic(t *testing.T) {
	for _, limit := range MaxRates() {
		prev := Interval(0, limit)
		for load := 1.0; load <= 100; load++ {
			got := Interval(load, limit)
			if got > prev {
				t.Fatalf("Interval(%v, %v) = %v, slower than %v at previous load", load, limit, got, prev)
			}
			prev = got
		}
	}
}
