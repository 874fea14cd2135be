package trace

// Summary aggregates statistics from a Trace.
type Summary struct {
	Decisions        int
	UniquePaths      int
	PathDistribution map[int]int // path ID → count of decisions selecting it
	MeanTopWeight    float64     // mean of the largest weight per decision
}

// Summarize computes aggregate statistics from a Trace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(t *Trace) *Summary {
	summary := &Summary{
		PathDistribution: make(map[int]int),
	}
	if t == nil || len(t.Decisions) == 0 {
		return summary
	}

	summary.Decisions = len(t.Decisions)
	totalTop := 0.0
	for _, d := range t.Decisions {
		summary.PathDistribution[d.PathID]++
		top := 0.0
		for _, w := range d.Weights {
			if w > top {
				top = w
			}
		}
		totalTop += top
	}
	summary.MeanTopWeight = totalTop / float64(len(t.Decisions))
	summary.UniquePaths = len(summary.PathDistribution)

	return summary
}
