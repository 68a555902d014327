package runner

import (
	"math"
	"time"
)

// Interval maps a CPU load reading in [0,100] to the animation tick interval.
//
// The animation rate scales linearly with load and with the selected rate
// limit's multiplier, floored at 1 so an idle machine still animates at
// 500ms per frame (~2 fps). There is no extra lower clamp on the interval:
// the fastest reachable tick is 25ms (full load on FPS40), which is already
// coarser than any timer granularity worth worrying about.
func Interval(load float64, limit MaxRate) time.Duration {
	rate := load / 5.0 * limit.multiplier()
	if rate < 1.0 {
		rate = 1.0
	}
	ms := math.Round(500.0 / rate)
	return time.Duration(ms) * time.Millisecond
}
