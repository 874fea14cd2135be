package sched

import "fmt"

// RoundRobin rotates over the active paths in PathSet order, ignoring all
// telemetry. Over any window of N calls with a stable path count K, each path
// is selected floor(N/K) or ceil(N/K) times.
type RoundRobin struct {
	last int // index of the last used path
}

// Name implements Policy.
func (rr *RoundRobin) Name() string { return string(PolicyRoundRobin) }

// Schedule implements Policy.
func (rr *RoundRobin) Schedule(state *ConnState, _ float64) Decision {
	rr.last = (rr.last + 1) % len(state.Paths)
	return oneHot(state.Paths, rr.last, fmt.Sprintf("round-robin[%d]", rr.last))
}
