package domain

import (
	"errors"
	"fmt"
	"math"
)

// Body-wave velocities in km/s.
const (
	PWaveVelocity = 6.0
	SWaveVelocity = 3.5
)

// ErrUnknownWave is returned for a wave type other than P or S.
var ErrUnknownWave = errors.New("unknown wave")

// Wave selects a body-wave type.
type Wave string

const (
	PWave Wave = "p"
	SWave Wave = "s"
)

var waveVelocities = map[Wave]float64{
	PWave: PWaveVelocity,
	SWave: SWaveVelocity,
}

// WaveFrontState is the position of both wave fronts at one instant.
type WaveFrontState struct {
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	PRadiusKm      float64 `json:"p_radius_km"`
	SRadiusKm      float64 `json:"s_radius_km"`
}

// FrontRadii returns the P and S front radii after elapsedSeconds. Negative
// time is clamped to zero.
func FrontRadii(elapsedSeconds float64) WaveFrontState {
	t := math.Max(elapsedSeconds, 0)
	return WaveFrontState{
		ElapsedSeconds: t,
		PRadiusKm:      PWaveVelocity * t,
		SRadiusKm:      SWaveVelocity * t,
	}
}

// ArrivalTime returns the seconds until the given wave reaches distanceKm.
func ArrivalTime(distanceKm float64, w Wave) (float64, error) {
	v, ok := waveVelocities[w]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWave, w)
	}
	return math.Max(distanceKm, 0) / v, nil
}

// ShakeDuration returns how long strong shaking lasts for a magnitude, in seconds.
func ShakeDuration(magnitude float64) float64 {
	return math.Max(0, 10+(magnitude-5)*8)
}

// ShakingPhase describes what a site is experiencing at an instant.
type ShakingPhase string

const (
	PhaseQuiet   ShakingPhase = "quiet"
	PhasePWave   ShakingPhase = "p_wave"
	PhaseStrong  ShakingPhase = "strong"
	PhaseSettled ShakingPhase = "settled"
)

// ShakingState is the shaking timeline of one site evaluated at Elapsed.
type ShakingState struct {
	Elapsed     float64      `json:"elapsed_seconds"`
	Phase       ShakingPhase `json:"phase"`
	PArrival    float64      `json:"p_arrival_seconds"`
	SArrival    float64      `json:"s_arrival_seconds"`
	ShakingEnds float64      `json:"shaking_ends_seconds"`
	Progress    float64      `json:"progress"` // fraction of strong shaking elapsed, 0..1
	IsShaking   bool         `json:"is_shaking"`
}

// ShakingAt reports the shaking phase at a site distanceKm from the
// epicenter, elapsedSeconds after rupture.
func ShakingAt(distanceKm, magnitude, elapsedSeconds float64) ShakingState {
	d := math.Max(distanceKm, 0)
	t := math.Max(elapsedSeconds, 0)
	pArr := d / PWaveVelocity
	sArr := d / SWaveVelocity
	dur := ShakeDuration(magnitude)

	st := ShakingState{
		Elapsed:     t,
		PArrival:    pArr,
		SArrival:    sArr,
		ShakingEnds: sArr + dur,
	}

	switch {
	case t < pArr:
		st.Phase = PhaseQuiet
	case t < sArr:
		st.Phase = PhasePWave
	case t < sArr+dur:
		st.Phase = PhaseStrong
		st.IsShaking = true
		st.Progress = math.Min(1, (t-sArr)/dur)
	default:
		st.Phase = PhaseSettled
		st.Progress = 1
	}
	return st
}
