package domain

import (
	"fmt"
	"math"
	"strings"
)

// Damage model constants.
const (
	// MinDamagingPGA is the acceleration, in g, below which no damage accrues.
	MinDamagingPGA = 0.02

	fragilityShape    = 2.0
	referenceYear     = 2025
	agePenaltyPerYear = 0.005
	maxAgePenalty     = 0.3
)

// DamageState is a FEMA HAZUS damage level, ordered from least to most severe.
type DamageState int

const (
	DamageNone DamageState = iota
	DamageSlight
	DamageModerate
	DamageExtensive
	DamageSevere
	DamageCollapse
)

var damageStateLabels = [...]string{"None", "Slight", "Moderate", "Extensive", "Severe", "Collapse"}

// DamageStates lists every state in ascending severity.
func DamageStates() []DamageState {
	return []DamageState{DamageNone, DamageSlight, DamageModerate, DamageExtensive, DamageSevere, DamageCollapse}
}

func (s DamageState) String() string {
	if s < DamageNone || s > DamageCollapse {
		return fmt.Sprintf("DamageState(%d)", int(s))
	}
	return damageStateLabels[s]
}

// ParseDamageState accepts a HAZUS label, case-insensitively.
func ParseDamageState(label string) (DamageState, error) {
	for i, l := range damageStateLabels {
		if strings.EqualFold(l, strings.TrimSpace(label)) {
			return DamageState(i), nil
		}
	}
	return DamageNone, fmt.Errorf("unknown damage state %q", label)
}

// MarshalText encodes the state as its HAZUS label.
func (s DamageState) MarshalText() ([]byte, error) {
	if s < DamageNone || s > DamageCollapse {
		return nil, fmt.Errorf("invalid damage state %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a HAZUS label.
func (s *DamageState) UnmarshalText(b []byte) error {
	v, err := ParseDamageState(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// damageBands holds the inclusive lower bound of each state above None,
// most severe first.
var damageBands = []struct {
	min   float64
	state DamageState
}{
	{0.90, DamageCollapse},
	{0.60, DamageSevere},
	{0.30, DamageExtensive},
	{0.15, DamageModerate},
	{0.05, DamageSlight},
}

// StateForRatio discretizes a damage ratio into a HAZUS state. A ratio equal
// to a band boundary belongs to the upper band.
func StateForRatio(ratio float64) DamageState {
	for _, b := range damageBands {
		if ratio >= b.min {
			return b.state
		}
	}
	return DamageNone
}

// DamageRatio returns the expected fraction of value lost, in [0, 1], for a
// building shaken at pga.
func DamageRatio(pga float64, b Building) float64 {
	if !(pga >= MinDamagingPGA) || !b.Type.Valid() {
		return 0
	}
	x := pga * b.heightFactor() / b.capacity()
	ratio := 1 - math.Exp(-math.Pow(x, fragilityShape))
	return math.Max(0, math.Min(1, ratio))
}

// Classify returns the damage ratio and HAZUS state for a building shaken at pga.
func Classify(pga float64, b Building) (float64, DamageState) {
	ratio := DamageRatio(pga, b)
	return ratio, StateForRatio(ratio)
}
