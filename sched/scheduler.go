package sched

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// PolicyKind names a scheduling policy.
type PolicyKind string

const (
	PolicyRoundRobin   PolicyKind = "round-robin"
	PolicyMinRTT       PolicyKind = "min-rtt"
	PolicyBLEST        PolicyKind = "blest"
	PolicyECF          PolicyKind = "ecf"
	PolicyPeekaboo     PolicyKind = "peekaboo"
	PolicyPriorityLoad PolicyKind = "priority-load"
)

// validPolicies maps accepted policy names. The empty string defaults to
// round-robin.
var validPolicies = map[PolicyKind]bool{
	PolicyRoundRobin:   true,
	PolicyMinRTT:       true,
	PolicyBLEST:        true,
	PolicyECF:          true,
	PolicyPeekaboo:     true,
	PolicyPriorityLoad: true,
	"":                 true,
}

// IsValidPolicy returns true if kind is a recognized policy name.
func IsValidPolicy(kind PolicyKind) bool {
	return validPolicies[kind]
}

// Config holds the scheduler construction parameters. Policy selection is an
// explicit per-connection parameter; there is no process-wide default.
type Config struct {
	Policy PolicyKind

	// BLEST admission gate: initial lambda and the variance margin added to
	// it on every blocking-risk evaluation.
	BlestLambda float64
	BlestVar    float64

	// Peekaboo bandit: exploration constant for the upper-confidence term and
	// the RTT floor substituted for unmeasured paths in feature/reward math.
	PeekabooExploration float64
	PeekabooRTTFloor    time.Duration
}

// DefaultConfig returns the parameter defaults.
func DefaultConfig() Config {
	return Config{
		Policy:              PolicyRoundRobin,
		BlestLambda:         1000,
		BlestVar:            100,
		PeekabooExploration: 0.8,
		PeekabooRTTFloor:    10 * time.Millisecond,
	}
}

// Policy is a scheduling decision function plus whatever private learning
// state it carries across calls. Schedule is only invoked with at least two
// active paths; the degenerate sizes are handled by the Scheduler.
type Policy interface {
	Name() string
	Schedule(state *ConnState, priority float64) Decision
}

// RewardObserver is an optional interface a policy can implement to receive
// post-send reward notifications. The Scheduler checks for it via type
// assertion; Peekaboo implements it, all other policies don't need to.
type RewardObserver interface {
	RecordReward(state *ConnState, pathID int, lastActivation time.Time)
}

// Scheduler dispatches scheduling calls to the configured policy. It owns the
// policy instance and its learning state exclusively; the decide/update
// sequence is a single critical section per connection and the Scheduler is
// not safe for concurrent use.
type Scheduler struct {
	policy Policy
}

// New creates a Scheduler for one connection. An unknown policy kind degrades
// to round-robin with a warning rather than failing.
func New(cfg Config) *Scheduler {
	return &Scheduler{policy: newPolicy(cfg)}
}

func newPolicy(cfg Config) Policy {
	switch cfg.Policy {
	case "", PolicyRoundRobin:
		return &RoundRobin{}
	case PolicyMinRTT:
		return &MinRTT{}
	case PolicyBLEST:
		return &BLEST{lambda: cfg.BlestLambda, margin: cfg.BlestVar}
	case PolicyECF:
		return &ECF{}
	case PolicyPeekaboo:
		return newPeekaboo(cfg)
	case PolicyPriorityLoad:
		return &PriorityLoad{}
	default:
		logrus.Warnf("unknown scheduler policy %q, falling back to %s", cfg.Policy, PolicyRoundRobin)
		return &RoundRobin{}
	}
}

// PolicyName returns the name of the active policy.
func (s *Scheduler) PolicyName() string {
	return s.policy.Name()
}

// Decide returns the path selection for the next outgoing unit of data.
//
// An empty PathSet yields ErrNoActivePath. A single-path set short-circuits
// to that path with full weight, bypassing all policy logic. Otherwise the
// configured policy decides, mutating its own learning state as a side
// effect.
func (s *Scheduler) Decide(state *ConnState, priority float64) (Decision, error) {
	if state == nil || len(state.Paths) == 0 {
		return Decision{}, ErrNoActivePath
	}
	if len(state.Paths) == 1 {
		return oneHot(state.Paths, 0, "single-path"), nil
	}
	d := s.policy.Schedule(state, priority)
	logrus.Debugf("sched: %s -> path %d (%s)", s.policy.Name(), d.PathID, d.Reason)
	return d, nil
}

// RecordReward forwards a post-send reward observation to the active policy
// when it implements RewardObserver; it is a no-op for every other policy.
// lastActivation is the time the path last started carrying data, as reported
// by the transport's NotifyPathActivated bookkeeping.
func (s *Scheduler) RecordReward(state *ConnState, pathID int, lastActivation time.Time) {
	if obs, ok := s.policy.(RewardObserver); ok {
		obs.RecordReward(state, pathID, lastActivation)
	}
}

// clampPriority normalizes an application priority hint to [0,1]. NaN means
// "absent" and maps to the neutral default 0.5; out-of-range values clamp to
// the nearest bound. Never an error.
func clampPriority(p float64) float64 {
	switch {
	case math.IsNaN(p):
		return 0.5
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
