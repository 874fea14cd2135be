package sched

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide_EmptyPathSet_ReturnsSentinel(t *testing.T) {
	s := New(DefaultConfig())

	_, err := s.Decide(&ConnState{}, 0.5)
	require.ErrorIs(t, err, ErrNoActivePath)

	_, err = s.Decide(nil, 0.5)
	require.ErrorIs(t, err, ErrNoActivePath)
}

// TestDecide_SinglePath_BypassesPolicy verifies that a one-path set gets full
// weight regardless of the configured policy.
func TestDecide_SinglePath_BypassesPolicy(t *testing.T) {
	for _, kind := range []PolicyKind{
		PolicyRoundRobin, PolicyMinRTT, PolicyBLEST, PolicyECF, PolicyPeekaboo, PolicyPriorityLoad,
	} {
		t.Run(string(kind), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Policy = kind
			s := New(cfg)

			state := makeState(pathSpec{rttMs: 20, cwnd: 14600})
			d, err := s.Decide(state, 0.5)
			require.NoError(t, err)
			assert.Equal(t, 0, d.PathID)
			assert.Equal(t, []float64{1.0}, d.Weights)
		})
	}
}

func TestNew_UnknownPolicy_FallsBackToRoundRobin(t *testing.T) {
	s := New(Config{Policy: "no-such-policy"})
	assert.Equal(t, string(PolicyRoundRobin), s.PolicyName())
}

func TestNew_EmptyPolicy_DefaultsToRoundRobin(t *testing.T) {
	s := New(Config{})
	assert.Equal(t, string(PolicyRoundRobin), s.PolicyName())
}

func TestIsValidPolicy(t *testing.T) {
	assert.True(t, IsValidPolicy(PolicyMinRTT))
	assert.True(t, IsValidPolicy(""))
	assert.False(t, IsValidPolicy("fastest-first"))
}

// TestRecordReward_NonObserverPolicy_NoOp verifies the type-assertion
// forwarding: policies without reward state must tolerate reward calls.
func TestRecordReward_NonObserverPolicy_NoOp(t *testing.T) {
	s := New(DefaultConfig())
	state := twoPathState()
	s.RecordReward(state, 0, state.Clock.Add(-10*time.Millisecond))

	_, err := s.Decide(state, 0.5)
	require.NoError(t, err)
}

func TestClampPriority(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"in range", 0.3, 0.3},
		{"lower bound", 0.0, 0.0},
		{"upper bound", 1.0, 1.0},
		{"below range", -2.5, 0.0},
		{"above range", 7.0, 1.0},
		{"NaN means absent", math.NaN(), 0.5},
		{"negative infinity", math.Inf(-1), 0.0},
		{"positive infinity", math.Inf(1), 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampPriority(tt.in); got != tt.want {
				t.Errorf("clampPriority(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
