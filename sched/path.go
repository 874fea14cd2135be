package sched

import (
	"sort"
	"time"
)

// PathState is an immutable-per-decision snapshot of one active path
// ("subflow") of a multipath connection. The telemetry provider populates a
// fresh snapshot for every scheduling call; the scheduler never caches
// snapshots across calls.
type PathState struct {
	PathID        int           // stable ordinal index into the PathSet
	LastRTT       time.Duration // most recent RTT sample; 0 = not yet measured
	RTTVar        time.Duration // smoothed RTT variance
	CWnd          int64         // congestion window, bytes
	BytesInFlight int64         // outstanding bytes
}

// AvailableWindow returns the window capacity not yet consumed, floored at 0.
// A positive value means the path can accept another segment immediately.
func (p PathState) AvailableWindow() int64 {
	if avail := p.CWnd - p.BytesInFlight; avail > 0 {
		return avail
	}
	return 0
}

// Measured reports whether the path has at least one real RTT sample.
func (p PathState) Measured() bool {
	return p.LastRTT > 0
}

// PathSet is the ordered sequence of active paths exposed by the transport
// connection. Insertion order is the stable PathID ordering; Decision weight
// vectors are index-aligned with it.
type PathSet []PathState

// firstUnmeasured returns the index of the lowest-PathID path without an RTT
// sample. Policies provisionally prefer such a path so that measurement
// bootstraps.
func (ps PathSet) firstUnmeasured() (int, bool) {
	for i, p := range ps {
		if !p.Measured() {
			return i, true
		}
	}
	return -1, false
}

// rankByRTT returns path indices ordered by LastRTT ascending, stable on
// PathID. The first entry is the "fast" path, the second the "slow" path in
// the best-vs-second-best reduction used by the two-path policies.
func (ps PathSet) rankByRTT() []int {
	order := make([]int, len(ps))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return ps[order[a]].LastRTT < ps[order[b]].LastRTT
	})
	return order
}

// fastSlow reduces the set to its two lowest-RTT paths. Only meaningful for
// sets of at least two measured paths.
func (ps PathSet) fastSlow() (fast, slow int) {
	order := ps.rankByRTT()
	return order[0], order[1]
}

// ConnState bundles the per-decision view of the transport connection: the
// active PathSet plus the connection-level telemetry some policies consume.
// All fields are read-only for the duration of one decision.
type ConnState struct {
	Paths           PathSet
	SegmentSize     int64     // bytes per segment (MSS)
	TxAvailable     int64     // send capacity left across the connection
	SendBufferBytes int64     // bytes queued in the send buffer
	Clock           time.Time // decision time, used by reward bookkeeping
}
