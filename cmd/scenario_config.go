package cmd

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	sched "github.com/PTS0118/mpquic-sched/sched"
)

// Define struct for YAML
type ScenarioConfig struct {
	SegmentSize     int64        `yaml:"segment_size"`
	TxAvailable     int64        `yaml:"tx_available"`
	SendBufferBytes int64        `yaml:"send_buffer"`
	Paths           []PathConfig `yaml:"paths"`
}

type PathConfig struct {
	RTTMs         float64 `yaml:"rtt_ms"`
	RTTVarMs      float64 `yaml:"rttvar_ms"`
	CWnd          int64   `yaml:"cwnd"`
	BytesInFlight int64   `yaml:"inflight"`
}

// DefaultScenario is the two-path 20ms/60ms reference setup.
func DefaultScenario() *ScenarioConfig {
	return &ScenarioConfig{
		SegmentSize:     1460,
		TxAvailable:     64 * 1024,
		SendBufferBytes: 32 * 1024,
		Paths: []PathConfig{
			{RTTMs: 20, RTTVarMs: 2, CWnd: 14600, BytesInFlight: 0},
			{RTTMs: 60, RTTVarMs: 6, CWnd: 14600, BytesInFlight: 0},
		},
	}
}

// LoadScenario reads a replay scenario from a YAML file.
func LoadScenario(path string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	if len(cfg.Paths) == 0 {
		return nil, fmt.Errorf("scenario file %s defines no paths", path)
	}
	return &cfg, nil
}

// ConnState builds the scheduler's per-decision snapshot from the scenario at
// the given clock.
func (c *ScenarioConfig) ConnState(clock time.Time) *sched.ConnState {
	paths := make(sched.PathSet, len(c.Paths))
	for i, p := range c.Paths {
		paths[i] = sched.PathState{
			PathID:        i,
			LastRTT:       time.Duration(p.RTTMs * float64(time.Millisecond)),
			RTTVar:        time.Duration(p.RTTVarMs * float64(time.Millisecond)),
			CWnd:          p.CWnd,
			BytesInFlight: p.BytesInFlight,
		}
	}
	return &sched.ConnState{
		Paths:           paths,
		SegmentSize:     c.SegmentSize,
		TxAvailable:     c.TxAvailable,
		SendBufferBytes: c.SendBufferBytes,
		Clock:           clock,
	}
}
