package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidBuilding is returned when a roster entry is missing a required
	// attribute. Evaluation rejects the whole roster when any entry fails.
	ErrInvalidBuilding = errors.New("invalid building")

	// ErrUnknownStructuralType is returned when parsing an unrecognized type label.
	ErrUnknownStructuralType = errors.New("unknown structural type")
)

// StructuralType identifies the lateral-load system of a building.
type StructuralType string

const (
	Wood          StructuralType = "wood"
	Masonry       StructuralType = "masonry" // unreinforced masonry
	Concrete      StructuralType = "concrete"
	Steel         StructuralType = "steel"
	ModernSeismic StructuralType = "modern_seismic"
)

// fragility holds the per-type parameters of the damage curve.
type fragility struct {
	capacityG float64 // effective PGA at which ~63% of value is lost
}

var fragilities = map[StructuralType]fragility{
	Wood:          {capacityG: 0.45},
	Masonry:       {capacityG: 0.25},
	Concrete:      {capacityG: 0.55},
	Steel:         {capacityG: 0.70},
	ModernSeismic: {capacityG: 1.00},
}

// StructuralTypes lists every supported type, weakest construction first.
func StructuralTypes() []StructuralType {
	return []StructuralType{Masonry, Wood, Concrete, Steel, ModernSeismic}
}

// ParseStructuralType normalizes a type label such as "Modern Seismic" or "URM".
func ParseStructuralType(s string) (StructuralType, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.NewReplacer(" ", "_", "-", "_").Replace(v)
	switch v {
	case "urm", "unreinforced_masonry":
		return Masonry, nil
	case "wood_frame":
		return Wood, nil
	}
	t := StructuralType(v)
	if _, ok := fragilities[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStructuralType, s)
	}
	return t, nil
}

// Valid reports whether the type has a fragility entry.
func (t StructuralType) Valid() bool {
	_, ok := fragilities[t]
	return ok
}

// Building is static reference data for one structure and the community
// around it.
type Building struct {
	ID        string         `json:"id" yaml:"id"`
	Name      string         `json:"name,omitempty" yaml:"name"`
	Location  *Geo           `json:"location" yaml:"location"`
	Type      StructuralType `json:"type" yaml:"type"`
	Stories   int            `json:"stories" yaml:"stories"`
	YearBuilt int            `json:"year_built,omitempty" yaml:"year_built"`
	County    string         `json:"county,omitempty" yaml:"county"`

	ElderlyPct     float64 `json:"elderly_pct" yaml:"elderly_pct"`
	PovertyPct     float64 `json:"poverty_pct" yaml:"poverty_pct"`
	DensityPerSqMi float64 `json:"density_per_sqmi" yaml:"density_per_sqmi"`
	SoVI           float64 `json:"sovi" yaml:"sovi"`
}

// Validate checks the attributes the engine cannot work without: an
// identifier, a location and a known structural type.
func (b Building) Validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidBuilding)
	}
	if b.Location == nil {
		return fmt.Errorf("%w: %s: missing location", ErrInvalidBuilding, b.ID)
	}
	if !b.Location.valid() {
		return fmt.Errorf("%w: %s: location (%.4f, %.4f) is not a WGS-84 coordinate", ErrInvalidBuilding, b.ID, b.Location.Lat, b.Location.Lon)
	}
	if b.Type == "" {
		return fmt.Errorf("%w: %s: missing structural type", ErrInvalidBuilding, b.ID)
	}
	if !b.Type.Valid() {
		return fmt.Errorf("%w: %s: %w: %q", ErrInvalidBuilding, b.ID, ErrUnknownStructuralType, b.Type)
	}
	return nil
}

// heightFactor captures resonance of taller structures.
func (b Building) heightFactor() float64 {
	switch {
	case b.Stories <= 3:
		return 0.8
	case b.Stories <= 10:
		return 1.0
	default:
		return 1.2
	}
}

// capacity returns the fragility capacity in g after the age penalty.
func (b Building) capacity() float64 {
	c := fragilities[b.Type].capacityG
	if b.YearBuilt <= 0 {
		return c
	}
	age := float64(referenceYear - b.YearBuilt)
	if age <= 0 {
		return c
	}
	return c * (1 - min(maxAgePenalty, age*agePenaltyPerYear))
}
