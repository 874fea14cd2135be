package sched

import (
	"fmt"
	"math"
)

// ECF (earliest completion first) avoids assigning data to a path that, even
// though immediately available, would finish later than waiting for the
// faster one. When the fast path is saturated it estimates how many
// congestion rounds draining the send buffer there would take and compares
// against switching to the slow path, with a one-step memory of a prior
// waiting decision biasing toward continued waiting.
type ECF struct {
	waiting bool // sticky across calls while holding for the fast path
}

// Name implements Policy.
func (e *ECF) Name() string { return string(PolicyECF) }

// Schedule implements Policy.
func (e *ECF) Schedule(state *ConnState, _ float64) Decision {
	if i, ok := state.Paths.firstUnmeasured(); ok {
		return oneHot(state.Paths, i, fmt.Sprintf("ecf bootstrap[%d]", state.Paths[i].PathID))
	}
	fast, slow := state.Paths.fastSlow()
	f, s := state.Paths[fast], state.Paths[slow]

	if f.AvailableWindow() > 0 {
		e.waiting = false
		return oneHot(state.Paths, fast, "ecf fast")
	}

	rttF := f.LastRTT.Seconds()
	rttS := s.LastRTT.Seconds()
	buffered := float64(state.SendBufferBytes)
	cwndF := math.Max(float64(f.CWnd), 1)
	cwndS := math.Max(float64(s.CWnd), 1)

	// Rounds needed to drain the buffer on the fast path, against the time to
	// switch to the slow path plus a jitter margin.
	rounds := 1 + buffered/cwndF
	delta := math.Max(f.RTTVar.Seconds(), s.RTTVar.Seconds())
	bias := 1.0
	if e.waiting {
		bias = 2.0
	}
	if rounds*rttF < bias*(rttS+delta) {
		if buffered/cwndS*rttS >= 2*rttF+delta {
			// Slow path would not finish in time either: wait for the fast one.
			e.waiting = true
			return oneHot(state.Paths, fast, fmt.Sprintf("ecf wait (rounds=%.1f)", rounds))
		}
		return oneHot(state.Paths, slow, fmt.Sprintf("ecf slow (rounds=%.1f)", rounds))
	}
	e.waiting = false
	return oneHot(state.Paths, slow, fmt.Sprintf("ecf slow (rounds=%.1f)", rounds))
}
