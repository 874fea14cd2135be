package sched

import (
	"time"
)

// pathSpec is a compact path description for building test snapshots.
type pathSpec struct {
	rttMs    float64
	rttVarMs float64
	cwnd     int64
	inflight int64
}

// makeState builds a ConnState with sensible connection-level telemetry and
// one PathState per descriptor, PathIDs assigned in order.
func makeState(specs ...pathSpec) *ConnState {
	paths := make(PathSet, len(specs))
	for i, s := range specs {
		paths[i] = PathState{
			PathID:        i,
			LastRTT:       time.Duration(s.rttMs * float64(time.Millisecond)),
			RTTVar:        time.Duration(s.rttVarMs * float64(time.Millisecond)),
			CWnd:          s.cwnd,
			BytesInFlight: s.inflight,
		}
	}
	return &ConnState{
		Paths:           paths,
		SegmentSize:     1460,
		TxAvailable:     64 * 1024,
		SendBufferBytes: 32 * 1024,
		Clock:           time.Unix(1000, 0),
	}
}

// twoPathState is the 20ms/60ms reference snapshot with both paths open.
func twoPathState() *ConnState {
	return makeState(
		pathSpec{rttMs: 20, rttVarMs: 2, cwnd: 14600, inflight: 0},
		pathSpec{rttMs: 60, rttVarMs: 6, cwnd: 14600, inflight: 0},
	)
}

// saturate closes path i's available window.
func saturate(state *ConnState, i int) *ConnState {
	state.Paths[i].BytesInFlight = state.Paths[i].CWnd
	return state
}
