package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMinRTT(t *testing.T) *Scheduler {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Policy = PolicyMinRTT
	return New(cfg)
}

// TestMinRTT_SelectsLowestRTT verifies monotonicity: a strictly lower RTT
// path with available window always wins.
func TestMinRTT_SelectsLowestRTT(t *testing.T) {
	s := newMinRTT(t)
	for i := 0; i < 10; i++ {
		d, err := s.Decide(twoPathState(), 0.5)
		require.NoError(t, err)
		assert.Equal(t, 0, d.PathID, "20ms path must always be selected")
	}
}

func TestMinRTT_SaturatedFastPath_FallsBackToSlow(t *testing.T) {
	s := newMinRTT(t)
	state := saturate(twoPathState(), 0)

	d, err := s.Decide(state, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1, d.PathID)
}

// When every path is saturated the global minimum-RTT path is returned.
func TestMinRTT_AllSaturated_GlobalMinimum(t *testing.T) {
	s := newMinRTT(t)
	state := saturate(saturate(twoPathState(), 0), 1)

	d, err := s.Decide(state, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0, d.PathID)
}

// An unmeasured path is provisionally preferred so its first RTT sample can
// arrive.
func TestMinRTT_UnmeasuredPath_Bootstraps(t *testing.T) {
	s := newMinRTT(t)
	state := makeState(
		pathSpec{rttMs: 20, cwnd: 14600},
		pathSpec{rttMs: 0, cwnd: 14600},
	)

	d, err := s.Decide(state, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1, d.PathID)
}

func TestMinRTT_ThreePaths_PrefersFastestWithWindow(t *testing.T) {
	s := newMinRTT(t)
	state := makeState(
		pathSpec{rttMs: 40, cwnd: 14600},
		pathSpec{rttMs: 20, cwnd: 14600, inflight: 14600},
		pathSpec{rttMs: 60, cwnd: 14600},
	)

	// 20ms path is saturated: the 40ms path is the fastest with window.
	d, err := s.Decide(state, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0, d.PathID)
}
