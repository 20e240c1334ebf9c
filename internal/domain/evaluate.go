package domain

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DamageAssessment is the engine's verdict for one building under one scenario.
type DamageAssessment struct {
	BuildingID     string         `json:"building_id"`
	BuildingName   string         `json:"building_name,omitempty"`
	County         string         `json:"county,omitempty"`
	StructuralType StructuralType `json:"structural_type"`
	Stories        int            `json:"stories"`
	YearBuilt      int            `json:"year_built,omitempty"`
	Location       Geo            `json:"location"`

	DistanceKm    float64 `json:"distance_km"`
	HypocentralKm float64 `json:"hypocentral_km"`
	PGA           float64 `json:"pga_g"`
	MMI           int     `json:"mmi"`

	DamageRatio float64     `json:"damage_ratio"`
	DamageState DamageState `json:"damage_state"`

	SocialMultiplier           float64 `json:"social_multiplier"`
	CombinedVulnerabilityScore float64 `json:"combined_vulnerability_score"`
	RecoveryDays               int     `json:"recovery_days"`
	VulnerableCommunity        bool    `json:"vulnerable_community"`
}

// DamagePercent returns the damage ratio on a 0–100 scale.
func (a DamageAssessment) DamagePercent() float64 {
	return a.DamageRatio * 100
}

// Evaluate assesses every building under the scenario and returns one
// assessment per building in roster order. Invalid scenarios fail before any
// building is touched; any invalid building rejects the whole roster.
func Evaluate(s Scenario, buildings []Building) ([]DamageAssessment, error) {
	if err := validateInputs(s, buildings); err != nil {
		return nil, err
	}
	out := make([]DamageAssessment, len(buildings))
	for i := range buildings {
		out[i] = assess(s, buildings[i])
	}
	return out, nil
}

// EvaluateConcurrent is Evaluate with up to workers buildings assessed at once.
// The result is identical to Evaluate for any worker count.
func EvaluateConcurrent(s Scenario, buildings []Building, workers int) ([]DamageAssessment, error) {
	if workers <= 1 {
		return Evaluate(s, buildings)
	}
	if err := validateInputs(s, buildings); err != nil {
		return nil, err
	}

	out := make([]DamageAssessment, len(buildings))
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range buildings {
		g.Go(func() error {
			out[i] = assess(s, buildings[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func validateInputs(s Scenario, buildings []Building) error {
	if err := s.Validate(); err != nil {
		return err
	}
	var errs []error
	for i := range buildings {
		if err := buildings[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("roster[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func assess(s Scenario, b Building) DamageAssessment {
	distance := Distance(*b.Location, s.Epicenter)
	pga := PGA(s.Magnitude, distance, s.DepthKm)
	ratio, state := Classify(pga, b)
	multiplier := Multiplier(b)

	return DamageAssessment{
		BuildingID:     b.ID,
		BuildingName:   b.Name,
		County:         b.County,
		StructuralType: b.Type,
		Stories:        b.Stories,
		YearBuilt:      b.YearBuilt,
		Location:       *b.Location,

		DistanceKm:    distance,
		HypocentralKm: HypocentralDistance(distance, s.DepthKm),
		PGA:           pga,
		MMI:           ModifiedMercalli(pga),

		DamageRatio: ratio,
		DamageState: state,

		SocialMultiplier:           multiplier,
		CombinedVulnerabilityScore: CombinedVulnerability(ratio, multiplier),
		RecoveryDays:               RecoveryDays(state, b),
		VulnerableCommunity:        IsVulnerableCommunity(b),
	}
}
