package sched

import "fmt"

// MinRTT selects the lowest-RTT path that has available window. A path
// without an RTT sample is provisionally preferred so measurement bootstraps.
// When every path is saturated the global minimum-RTT path is returned
// anyway, trading throughput for RTT.
type MinRTT struct{}

// Name implements Policy.
func (m *MinRTT) Name() string { return string(PolicyMinRTT) }

// Schedule implements Policy.
func (m *MinRTT) Schedule(state *ConnState, _ float64) Decision {
	if i, ok := state.Paths.firstUnmeasured(); ok {
		return oneHot(state.Paths, i, fmt.Sprintf("min-rtt bootstrap[%d]", state.Paths[i].PathID))
	}
	order := state.Paths.rankByRTT()
	for _, i := range order {
		if state.Paths[i].AvailableWindow() > 0 {
			return oneHot(state.Paths, i, fmt.Sprintf("min-rtt (rtt=%v)", state.Paths[i].LastRTT))
		}
	}
	// All paths saturated.
	return oneHot(state.Paths, order[0], fmt.Sprintf("min-rtt saturated (rtt=%v)", state.Paths[order[0]].LastRTT))
}
