package sched

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
)

// peekabooDim is the feature dimensionality: cwnd/rtt, inflight/rtt and a
// repeated cwnd/rtt slot for each of the two candidate paths.
const peekabooDim = 6

// peekabooRewardBytes scales the throughput-derived reward (one full-size
// segment payload).
const peekabooRewardBytes = 1460

// Peekaboo models the wait-on-fast vs use-slow choice as a linear contextual
// bandit. Each path owns a regularized feature covariance A (identity at
// start) and a reward-weighted feature sum b (zero at start); decisions
// compare upper-confidence payoff estimates and the chosen arm's state is
// updated in the same call. The reward accumulator is fed externally via
// RecordReward from observed path activation gaps.
type Peekaboo struct {
	arms map[int]*peekabooArm // keyed by PathID

	x        *mat.VecDense // shared feature vector, refreshed by RecordReward
	reward   float64       // discounted reward accumulator
	discount float64

	exploration float64
	rttFloor    time.Duration
	rttMs       [2]float64 // last observed RTT per feature group, ms
}

type peekabooArm struct {
	a *mat.Dense    // feature covariance, 6x6
	b *mat.VecDense // reward-weighted feature sum
}

func newPeekaboo(cfg Config) *Peekaboo {
	return &Peekaboo{
		arms:        make(map[int]*peekabooArm),
		x:           mat.NewVecDense(peekabooDim, nil),
		discount:    1.0,
		exploration: cfg.PeekabooExploration,
		rttFloor:    cfg.PeekabooRTTFloor,
	}
}

// Name implements Policy.
func (p *Peekaboo) Name() string { return string(PolicyPeekaboo) }

// Schedule implements Policy.
func (p *Peekaboo) Schedule(state *ConnState, _ float64) Decision {
	if i, ok := state.Paths.firstUnmeasured(); ok {
		return oneHot(state.Paths, i, fmt.Sprintf("peekaboo bootstrap[%d]", state.Paths[i].PathID))
	}
	fast, slow := state.Paths.fastSlow()
	f, s := state.Paths[fast], state.Paths[slow]

	if f.AvailableWindow() > 0 {
		return oneHot(state.Paths, fast, "peekaboo fast")
	}

	eprFast := p.estimate(f.PathID)
	eprSlow := p.estimate(s.PathID)

	chosen, reason := slow, fmt.Sprintf("peekaboo slow (epr %.3f<=%.3f)", eprFast, eprSlow)
	if eprFast > eprSlow {
		chosen, reason = fast, fmt.Sprintf("peekaboo wait (epr %.3f>%.3f)", eprFast, eprSlow)
	}
	p.update(state.Paths[chosen].PathID)
	return oneHot(state.Paths, chosen, reason)
}

// arm returns the bandit state for pathID, creating identity/zero state on
// first use.
func (p *Peekaboo) arm(pathID int) *peekabooArm {
	arm, ok := p.arms[pathID]
	if !ok {
		arm = &peekabooArm{a: eye(peekabooDim), b: mat.NewVecDense(peekabooDim, nil)}
		p.arms[pathID] = arm
	}
	return arm
}

// estimate computes the upper-confidence payoff <x, A⁻¹b> + c*sqrt(xᵀA⁻¹x).
// A starts as identity and only accumulates rank-one updates, so it should
// stay invertible; a singular A is re-regularized by adding identity, and if
// inversion still fails the confidence term degrades to zero with the mean
// term taken against b directly. Never NaN.
func (p *Peekaboo) estimate(pathID int) float64 {
	arm := p.arm(pathID)
	var inv mat.Dense
	if err := inv.Inverse(arm.a); err != nil {
		arm.a.Add(arm.a, eye(peekabooDim))
		if err := inv.Inverse(arm.a); err != nil {
			return mat.Dot(p.x, arm.b)
		}
	}
	var zeta mat.VecDense
	zeta.MulVec(&inv, arm.b)
	mean := mat.Dot(p.x, &zeta)

	var proj mat.VecDense
	proj.MulVec(&inv, p.x)
	conf := mat.Dot(p.x, &proj)
	if conf < 0 || math.IsNaN(conf) {
		conf = 0
	}
	return mean + p.exploration*math.Sqrt(conf)
}

// update applies the chosen arm's bandit step: A += x·xᵀ, b += R·x.
func (p *Peekaboo) update(pathID int) {
	arm := p.arm(pathID)
	var outer mat.Dense
	outer.Outer(1, p.x, p.x)
	arm.a.Add(arm.a, &outer)
	arm.b.AddScaledVec(arm.b, p.reward, p.x)
}

// RecordReward implements RewardObserver. It refreshes the feature slots for
// the activated path and accumulates a throughput reward discounted by how
// many multiples of the RTT-derived reference window T_r = max(2*rttFast,
// rttSlow) elapsed since the path last carried data. Idle gaps of 3*T_r or
// more contribute nothing.
func (p *Peekaboo) RecordReward(state *ConnState, pathID int, lastActivation time.Time) {
	var path *PathState
	for i := range state.Paths {
		if state.Paths[i].PathID == pathID {
			path = &state.Paths[i]
			break
		}
	}
	if path == nil {
		return
	}

	floorMs := float64(p.rttFloor) / float64(time.Millisecond)
	rttMs := float64(path.LastRTT) / float64(time.Millisecond)
	if rttMs <= 0 {
		rttMs = floorMs
	}

	// Feature slots 0-2 belong to the primary path, 3-5 to everything else,
	// mirroring the two-group feature layout.
	group := 1
	if pathID == 0 {
		group = 0
	}
	p.rttMs[group] = rttMs
	base := group * 3
	p.x.SetVec(base+0, float64(path.CWnd)/rttMs)
	p.x.SetVec(base+1, float64(path.BytesInFlight)/rttMs)
	p.x.SetVec(base+2, float64(path.CWnd)/rttMs)

	rtt0, rtt1 := p.rttMs[0], p.rttMs[1]
	if rtt0 <= 0 {
		rtt0 = floorMs
	}
	if rtt1 <= 0 {
		rtt1 = floorMs
	}
	rttFast := math.Min(rtt0, rtt1)
	rttSlow := math.Max(rtt0, rtt1)

	refWindow := math.Max(2*rttFast, rttSlow) // T_r, ms
	elapsed := state.Clock.Sub(lastActivation)
	if elapsed <= 0 {
		return
	}
	elapsedMs := float64(elapsed) / float64(time.Millisecond)
	if elapsedMs >= 3*refWindow {
		return
	}

	p.reward += p.discount * (peekabooRewardBytes * 1000 / elapsed.Seconds())
	switch {
	case elapsedMs <= refWindow:
		p.discount *= 0.9
	case elapsedMs <= 2*refWindow:
		p.discount *= 0.7
	default:
		p.discount *= 0.5
	}
}

// eye returns an n×n identity matrix.
func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
