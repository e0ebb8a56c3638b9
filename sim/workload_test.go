package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProcesses_Deterministic(t *testing.T) {
	cfg := &SyntheticConfig{Count: 6, MaxArrival: 20, MinBurst: 2, MaxBurst: 9, Seed: 11}

	first, err := GenerateProcesses(cfg, NewIDGenerator())
	require.NoError(t, err)
	second, err := GenerateProcesses(cfg, NewIDGenerator())
	require.NoError(t, err)

	require.Len(t, first, 6)
	for i := range first {
		assert.Equal(t, first[i].ArrivalTime, second[i].ArrivalTime)
		assert.Equal(t, first[i].BurstTime, second[i].BurstTime)
		assert.Equal(t, first[i].Priority, second[i].Priority)
		assert.Equal(t, first[i].PID, second[i].PID)
	}
}

func TestGenerateProcesses_RespectsBounds(t *testing.T) {
	cfg := &SyntheticConfig{Count: 50, MaxArrival: 15, MinBurst: 3, MaxBurst: 5, Seed: 4}

	procs, err := GenerateProcesses(cfg, NewIDGenerator())
	require.NoError(t, err)

	for _, p := range procs {
		assert.GreaterOrEqual(t, p.ArrivalTime, int64(0))
		assert.LessOrEqual(t, p.ArrivalTime, int64(15))
		assert.GreaterOrEqual(t, p.BurstTime, int64(3))
		assert.LessOrEqual(t, p.BurstTime, int64(5))
		assert.Contains(t, priorityTiers, p.Priority)
		assert.Equal(t, StateNew, p.State)
	}
}

func TestGenerateProcesses_ZeroConfig_UsesDefaults(t *testing.T) {
	procs, err := GenerateProcesses(&SyntheticConfig{}, NewIDGenerator())
	require.NoError(t, err)
	assert.Len(t, procs, 5)
}

func TestSyntheticConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SyntheticConfig
		wantErr bool
	}{
		{"defaults are valid", SyntheticConfig{}, false},
		{"explicit valid", SyntheticConfig{Count: 3, MaxArrival: 5, MinBurst: 1, MaxBurst: 2}, false},
		{"negative count", SyntheticConfig{Count: -1}, true},
		{"negative max arrival", SyntheticConfig{MaxArrival: -2}, true},
		{"burst bounds inverted", SyntheticConfig{MinBurst: 6, MaxBurst: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateProcesses_InvalidConfig_ReturnsError(t *testing.T) {
	_, err := GenerateProcesses(&SyntheticConfig{MinBurst: 9, MaxBurst: 2}, NewIDGenerator())
	assert.Error(t, err)
}
