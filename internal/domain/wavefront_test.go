package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontRadii(t *testing.T) {
	tests := []struct {
		name    string
		elapsed float64
		p, s    float64
	}{
		{"origin", 0, 0, 0},
		{"ten seconds", 10, 60, 35},
		{"negative clamps to zero", -4, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FrontRadii(tt.elapsed)
			assert.InDelta(t, tt.p, got.PRadiusKm, 1e-12)
			assert.InDelta(t, tt.s, got.SRadiusKm, 1e-12)
			assert.GreaterOrEqual(t, got.ElapsedSeconds, 0.0)
		})
	}
}

func TestFrontRadii_PAlwaysLeads(t *testing.T) {
	for elapsed := 0.5; elapsed < 120; elapsed += 0.5 {
		got := FrontRadii(elapsed)
		assert.Greater(t, got.PRadiusKm, got.SRadiusKm)
	}
}

func TestArrivalTime(t *testing.T) {
	p, err := ArrivalTime(42, PWave)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, p, 1e-12)

	s, err := ArrivalTime(35, SWave)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, s, 1e-12)

	zero, err := ArrivalTime(0, SWave)
	require.NoError(t, err)
	assert.Zero(t, zero)

	_, err = ArrivalTime(10, Wave("love"))
	require.ErrorIs(t, err, ErrUnknownWave)
}

func TestShakeDuration(t *testing.T) {
	assert.InDelta(t, 10.0, ShakeDuration(5), 1e-12)
	assert.InDelta(t, 26.0, ShakeDuration(7), 1e-12)
	assert.Zero(t, ShakeDuration(3))
}

func TestShakingAt(t *testing.T) {
	// 35 km site, M7: P at ~5.83 s, S at 10 s, shaking until 36 s.
	tests := []struct {
		elapsed  float64
		phase    ShakingPhase
		shaking  bool
		progress float64
	}{
		{0, PhaseQuiet, false, 0},
		{5, PhaseQuiet, false, 0},
		{7, PhasePWave, false, 0},
		{10, PhaseStrong, true, 0},
		{23, PhaseStrong, true, 0.5},
		{36, PhaseSettled, false, 1},
		{90, PhaseSettled, false, 1},
	}
	for _, tt := range tests {
		got := ShakingAt(35, 7, tt.elapsed)
		assert.Equal(t, tt.phase, got.Phase, "t=%.0f", tt.elapsed)
		assert.Equal(t, tt.shaking, got.IsShaking, "t=%.0f", tt.elapsed)
		assert.InDelta(t, tt.progress, got.Progress, 1e-9, "t=%.0f", tt.elapsed)
		assert.InDelta(t, 36.0, got.ShakingEnds, 1e-9)
	}
}
