// Package trace provides decision-trace recording for scheduling analysis.
// It has no dependency on sched/ — it stores pure data types, so replay
// drivers and tests can record and aggregate without import cycles.
package trace

import "time"

// DecisionRecord captures a single scheduling decision.
type DecisionRecord struct {
	Seq      int
	Clock    time.Time
	Policy   string
	PathID   int       // chosen path
	Weights  []float64 // per-path weight vector (one-hot for deterministic policies)
	Reason   string
	Priority float64 // clamped application priority hint in effect
}

// Trace collects decision records during a replay run.
type Trace struct {
	Decisions []DecisionRecord
}

// New creates a Trace ready for recording.
func New() *Trace {
	return &Trace{Decisions: make([]DecisionRecord, 0)}
}

// Record appends a decision record.
func (t *Trace) Record(record DecisionRecord) {
	t.Decisions = append(t.Decisions, record)
}
