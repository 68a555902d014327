// Package monitor wraps the OS CPU utilization counter behind the narrow
// sampling interface the load driver needs.
package monitor

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"
	"github.com/shirou/gopsutil/v3/cpu"
)

// cpuPercent is swapped out in tests.
var cpuPercent = cpu.Percent

// CPUSampler reads total CPU utilization as a percentage in [0,100].
//
// The underlying counter reports usage since its previous read, so the very
// first read is undefined and must not be surfaced. NewCPUSampler performs
// and discards that warm-up read; every Sample call after it is meaningful.
type CPUSampler struct {
	log  hclog.Logger
	last float64
}

// NewCPUSampler constructs the sampler and primes the counter. An error here
// means the platform cannot provide CPU statistics at all; the indicator has
// no degraded mode without them, so callers treat it as fatal.
func NewCPUSampler(log hclog.Logger) (*CPUSampler, error) {
	if _, err := cpuPercent(0, false); err != nil {
		return nil, fmt.Errorf("priming cpu counter: %w", err)
	}
	return &CPUSampler{log: log}, nil
}

// Sample returns the current CPU load. Readings can overshoot 100 slightly
// from measurement jitter and are clamped; they are counter-guaranteed
// non-negative. A failed read repeats the previous value rather than
// reporting a bogus zero.
func (s *CPUSampler) Sample() float64 {
	vals, err := cpuPercent(0, false)
	if err != nil || len(vals) == 0 {
		s.log.Debug("cpu read failed, keeping previous value", "error", err)
		return s.last
	}

	load := math.Round(vals[0]*10) / 10
	if load > 100 {
		load = 100
	}
	s.last = load
	return load
}
