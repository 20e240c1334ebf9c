package domain

import (
	"errors"
	"fmt"
	"math"
)

// Scenario domain bounds.
const (
	MinMagnitude = 4.0
	MaxMagnitude = 8.0
	MinDepthKm   = 1.0
	MaxDepthKm   = 30.0

	defaultFaultName = "San Andreas Fault"
)

// ErrInvalidScenario is returned when a scenario falls outside the supported
// magnitude, depth, or coordinate domain.
var ErrInvalidScenario = errors.New("invalid scenario")

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

func (g Geo) valid() bool {
	return !math.IsNaN(g.Lat) && !math.IsNaN(g.Lon) &&
		g.Lat >= -90 && g.Lat <= 90 && g.Lon >= -180 && g.Lon <= 180
}

// Scenario is one earthquake to simulate. It is a value type; evaluation
// never modifies it.
type Scenario struct {
	ID        string  `json:"id,omitempty"`
	Magnitude float64 `json:"magnitude"`
	Epicenter Geo     `json:"epicenter"`
	DepthKm   float64 `json:"depth_km"`
	FaultName string  `json:"fault_name,omitempty"`
}

// NewScenario builds a validated scenario.
func NewScenario(magnitude float64, epicenter Geo, depthKm float64) (Scenario, error) {
	s := Scenario{
		Magnitude: magnitude,
		Epicenter: epicenter,
		DepthKm:   depthKm,
		FaultName: defaultFaultName,
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Validate checks the scenario against the supported domain. The returned
// error wraps ErrInvalidScenario.
func (s Scenario) Validate() error {
	if math.IsNaN(s.Magnitude) || s.Magnitude < MinMagnitude || s.Magnitude > MaxMagnitude {
		return fmt.Errorf("%w: magnitude %.2f outside [%.1f, %.1f]", ErrInvalidScenario, s.Magnitude, MinMagnitude, MaxMagnitude)
	}
	if math.IsNaN(s.DepthKm) || s.DepthKm < MinDepthKm || s.DepthKm > MaxDepthKm {
		return fmt.Errorf("%w: depth %.2f km outside [%.0f, %.0f]", ErrInvalidScenario, s.DepthKm, MinDepthKm, MaxDepthKm)
	}
	if !s.Epicenter.valid() {
		return fmt.Errorf("%w: epicenter (%.4f, %.4f) is not a WGS-84 coordinate", ErrInvalidScenario, s.Epicenter.Lat, s.Epicenter.Lon)
	}
	return nil
}

// Fault returns the fault name, falling back to the default for scenarios
// decoded without one.
func (s Scenario) Fault() string {
	if s.FaultName == "" {
		return defaultFaultName
	}
	return s.FaultName
}
