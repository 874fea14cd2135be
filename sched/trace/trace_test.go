package trace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrace_RecordAppends(t *testing.T) {
	tr := New()
	assert.Empty(t, tr.Decisions)

	tr.Record(DecisionRecord{Seq: 0, Policy: "min-rtt", PathID: 0, Weights: []float64{1, 0}})
	tr.Record(DecisionRecord{Seq: 1, Policy: "min-rtt", PathID: 1, Weights: []float64{0, 1}})

	assert.Len(t, tr.Decisions, 2)
	assert.Equal(t, 1, tr.Decisions[1].PathID)
}

func TestSummarize_NilAndEmpty(t *testing.T) {
	for _, tr := range []*Trace{nil, New()} {
		s := Summarize(tr)
		assert.Equal(t, 0, s.Decisions)
		assert.Equal(t, 0, s.UniquePaths)
		assert.Empty(t, s.PathDistribution)
		assert.Equal(t, 0.0, s.MeanTopWeight)
	}
}

func TestSummarize_Aggregates(t *testing.T) {
	tr := New()
	clock := time.Unix(0, 0)
	tr.Record(DecisionRecord{Seq: 0, Clock: clock, Policy: "priority-load", PathID: 0, Weights: []float64{0.8, 0.2}})
	tr.Record(DecisionRecord{Seq: 1, Clock: clock, Policy: "priority-load", PathID: 0, Weights: []float64{0.6, 0.4}})
	tr.Record(DecisionRecord{Seq: 2, Clock: clock, Policy: "priority-load", PathID: 1, Weights: []float64{0.3, 0.7}})

	s := Summarize(tr)
	assert.Equal(t, 3, s.Decisions)
	assert.Equal(t, 2, s.UniquePaths)
	assert.Equal(t, 2, s.PathDistribution[0])
	assert.Equal(t, 1, s.PathDistribution[1])
	assert.InDelta(t, (0.8+0.6+0.7)/3, s.MeanTopWeight, 1e-12)
}
