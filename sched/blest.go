package sched

import "fmt"

// BLEST gates secondary-path usage on a head-of-line blocking estimate. The
// fast path is used whenever it has available window; otherwise the cost of
// sending on the slow path is estimated against the send-buffer headroom, and
// under blocking risk the decision stalls on the fast path instead of using
// the slow one.
//
// lambda grows by a fixed variance margin every time the blocking branch is
// evaluated, making the gate increasingly conservative under repeated risk.
// For more than two paths the estimate operates on the best-vs-second-best
// RTT reduction.
type BLEST struct {
	lambda float64
	margin float64
}

// Name implements Policy.
func (b *BLEST) Name() string { return string(PolicyBLEST) }

// Schedule implements Policy.
func (b *BLEST) Schedule(state *ConnState, _ float64) Decision {
	if i, ok := state.Paths.firstUnmeasured(); ok {
		return oneHot(state.Paths, i, fmt.Sprintf("blest bootstrap[%d]", state.Paths[i].PathID))
	}
	fast, slow := state.Paths.fastSlow()
	f, s := state.Paths[fast], state.Paths[slow]

	if f.AvailableWindow() > 0 {
		return oneHot(state.Paths, fast, "blest fast")
	}

	mss := float64(state.SegmentSize)
	if mss <= 0 {
		mss = 1
	}
	ratio := s.LastRTT.Seconds() / f.LastRTT.Seconds()
	cwndSegments := float64(f.CWnd) / mss
	cost := mss * (cwndSegments + (ratio-1)/2) * ratio
	headroom := float64(state.TxAvailable) - (float64(s.BytesInFlight) + mss)

	b.lambda += b.margin
	if cost*b.lambda > headroom {
		// Sending on the slow path risks blocking the fast one: hold.
		return oneHot(state.Paths, fast, fmt.Sprintf("blest hold (cost=%.0f, headroom=%.0f)", cost, headroom))
	}
	return oneHot(state.Paths, slow, fmt.Sprintf("blest slow (cost=%.0f, headroom=%.0f)", cost, headroom))
}
