package sched

import (
	"fmt"
	"math"
)

// PriorityLoad spreads load over all paths with a softmax whose temperature
// is driven by the application priority hint. Each path is scored on RTT
// benefit, available window and in-flight penalty; high priority lowers the
// temperature and concentrates weight on the best path, low priority spreads
// load more evenly. This is the only policy that consumes the hint.
type PriorityLoad struct{}

// Score composition weights and softmax temperature bounds.
const (
	plWindowWeight   = 0.3
	plInflightWeight = 0.3
	plMinTemp        = 0.15
	plRTTFloor       = 1e-3 // seconds, substituted for unmeasured paths
)

// Name implements Policy.
func (pl *PriorityLoad) Name() string { return string(PolicyPriorityLoad) }

// Schedule implements Policy.
func (pl *PriorityLoad) Schedule(state *ConnState, priority float64) Decision {
	prio := clampPriority(priority)
	paths := state.Paths
	k := len(paths)

	rttMin, rttMax := math.Inf(1), 0.0
	for _, p := range paths {
		rtt := pathRTTSeconds(p)
		rttMin = math.Min(rttMin, rtt)
		rttMax = math.Max(rttMax, rtt)
	}
	span := math.Max(1e-6, rttMax-rttMin)

	scores := make([]float64, k)
	best := 0
	for i, p := range paths {
		rttBenefit := 1.0 - (pathRTTSeconds(p)-rttMin)/span
		windowTerm := math.Log1p(float64(p.AvailableWindow()))
		inflightTerm := math.Log1p(float64(p.BytesInFlight))
		scores[i] = rttBenefit + plWindowWeight*windowTerm - plInflightWeight*inflightTerm
		if scores[i] > scores[best] {
			best = i
		}
	}

	temp := math.Max(plMinTemp, 1.0-0.85*prio)
	weights := make([]float64, k)
	sum := 0.0
	for i, s := range scores {
		weights[i] = math.Exp((s - scores[best]) / temp)
		sum += weights[i]
	}
	reason := fmt.Sprintf("priority-load (prio=%.2f, temp=%.2f)", prio, temp)
	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		// Degenerate softmax: deterministic one-hot on the best score.
		return oneHot(paths, best, reason+" one-hot fallback")
	}
	for i := range weights {
		weights[i] /= sum
	}
	return Decision{PathID: paths[best].PathID, Weights: weights, Reason: reason}
}

func pathRTTSeconds(p PathState) float64 {
	if rtt := p.LastRTT.Seconds(); rtt > 0 {
		return rtt
	}
	return plRTTFloor
}
