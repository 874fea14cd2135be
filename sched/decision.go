package sched

import "errors"

// ErrNoActivePath is returned by Decide when the connection has no active
// path. Callers must branch on this sentinel and stall or drop; it is never
// expressed as an all-zero weight vector.
var ErrNoActivePath = errors.New("sched: no active path available")

// Decision is the output of one scheduling call.
//
// PathID is the selected path. Weights is a per-path weight vector aligned
// with the PathSet the decision was made over: deterministic policies return
// a one-hot vector, PriorityLoad returns a full distribution with PathID set
// to its argmax. Weights always sum to 1.0 with every entry >= 0.
//
// A Decision is computed fresh per call and never persisted; only the
// policy-private learning state survives across calls.
type Decision struct {
	PathID  int
	Weights []float64
	Reason  string // human-readable explanation, for tracing
}

// oneHot builds a deterministic Decision selecting paths[chosen].
func oneHot(paths PathSet, chosen int, reason string) Decision {
	w := make([]float64, len(paths))
	w[chosen] = 1.0
	return Decision{PathID: paths[chosen].PathID, Weights: w, Reason: reason}
}
