package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuilding(typ StructuralType, stories, year int) Building {
	return Building{
		ID:        "b-1",
		Location:  &Geo{Lat: 37.79, Lon: -122.40},
		Type:      typ,
		Stories:   stories,
		YearBuilt: year,
	}
}

func TestStateForRatio_Boundaries(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected DamageState
	}{
		{0, DamageNone},
		{0.049999, DamageNone},
		{0.05, DamageSlight},
		{0.149999, DamageSlight},
		{0.15, DamageModerate},
		{0.299999, DamageModerate},
		{0.30, DamageExtensive},
		{0.599999, DamageExtensive},
		{0.60, DamageSevere},
		{0.899999, DamageSevere},
		{0.90, DamageCollapse},
		{0.999, DamageCollapse},
		{1.0, DamageCollapse},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, StateForRatio(tt.ratio), "ratio %v", tt.ratio)
	}
}

func TestDamageRatio_BelowThreshold(t *testing.T) {
	for _, typ := range StructuralTypes() {
		b := testBuilding(typ, 2, 1900)
		for _, pga := range []float64{0, 0.001, 0.019999, -1, math.NaN()} {
			ratio, state := Classify(pga, b)
			assert.Zero(t, ratio, "%s at %v g", typ, pga)
			assert.Equal(t, DamageNone, state)
		}
	}
}

func TestDamageRatio_FragilityTable(t *testing.T) {
	// With no age penalty and a low-rise height factor of 0.8, the curve is
	// 1 - exp(-(0.8·pga/capacity)²).
	capacities := map[StructuralType]float64{
		Masonry:       0.25,
		Wood:          0.45,
		Concrete:      0.55,
		Steel:         0.70,
		ModernSeismic: 1.00,
	}
	require.Len(t, capacities, len(StructuralTypes()))

	for _, typ := range StructuralTypes() {
		t.Run(string(typ), func(t *testing.T) {
			c, ok := capacities[typ]
			require.True(t, ok)
			for _, pga := range []float64{0.02, 0.1, 0.25, 0.5, 1.0, 1.5} {
				x := 0.8 * pga / c
				want := 1 - math.Exp(-x*x)
				got := DamageRatio(pga, testBuilding(typ, 2, 0))
				assert.InDelta(t, want, got, 1e-12, "pga %v", pga)
				assert.GreaterOrEqual(t, got, 0.0)
				assert.LessOrEqual(t, got, 1.0)
			}
		})
	}
}

func TestDamageRatio_WeakerConstructionDamagesMore(t *testing.T) {
	types := StructuralTypes()
	for _, pga := range []float64{0.05, 0.2, 0.4, 0.8} {
		for i := 1; i < len(types); i++ {
			weaker := DamageRatio(pga, testBuilding(types[i-1], 5, 2000))
			stronger := DamageRatio(pga, testBuilding(types[i], 5, 2000))
			assert.Greater(t, weaker, stronger, "%s vs %s at %v g", types[i-1], types[i], pga)
		}
	}
}

func TestDamageRatio_MonotoneInPGA(t *testing.T) {
	for _, typ := range StructuralTypes() {
		b := testBuilding(typ, 12, 1960)
		prev := 0.0
		for pga := 0.0; pga <= MaxPGA; pga += 0.01 {
			got := DamageRatio(pga, b)
			assert.GreaterOrEqual(t, got, prev)
			prev = got
		}
	}
}

func TestDamageRatio_HeightAndAge(t *testing.T) {
	low := DamageRatio(0.3, testBuilding(Concrete, 3, 2025))
	mid := DamageRatio(0.3, testBuilding(Concrete, 10, 2025))
	tall := DamageRatio(0.3, testBuilding(Concrete, 11, 2025))
	assert.Less(t, low, mid)
	assert.Less(t, mid, tall)

	newer := DamageRatio(0.3, testBuilding(Wood, 2, 2000))
	older := DamageRatio(0.3, testBuilding(Wood, 2, 1950))
	assert.Greater(t, older, newer)

	// The age penalty saturates at 30%.
	ancient := DamageRatio(0.3, testBuilding(Wood, 2, 1800))
	capped := DamageRatio(0.3, testBuilding(Wood, 2, 1905))
	assert.InDelta(t, capped, ancient, 1e-12)

	// Unknown or future build years carry no penalty.
	assert.InDelta(t,
		DamageRatio(0.3, testBuilding(Wood, 2, 0)),
		DamageRatio(0.3, testBuilding(Wood, 2, 2030)),
		1e-12)
}

func TestDamageRatio_UnknownType(t *testing.T) {
	assert.Zero(t, DamageRatio(1.0, testBuilding("adobe", 2, 1950)))
}

func TestDamageState_Text(t *testing.T) {
	for _, s := range DamageStates() {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var back DamageState
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}

	got, err := ParseDamageState(" collapse ")
	require.NoError(t, err)
	assert.Equal(t, DamageCollapse, got)

	_, err = ParseDamageState("Destroyed")
	require.Error(t, err)

	_, err = DamageState(9).MarshalText()
	require.Error(t, err)
	assert.Equal(t, "DamageState(9)", DamageState(9).String())
}

func TestDamageState_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]DamageState{"state": DamageExtensive})
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"Extensive"}`, string(data))
}

func TestModifiedMercalli(t *testing.T) {
	tests := []struct {
		pga      float64
		expected int
	}{
		{0.001, 1},
		{0.03, 4},
		{0.05, 5},
		{0.1, 6},
		{0.25, 7},
		{0.5, 8},
		{1.0, 9},
		{1.5, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ModifiedMercalli(tt.pga), "pga %v", tt.pga)
	}

	prev := 0
	for pga := 0.0; pga <= MaxPGA; pga += 0.001 {
		got := ModifiedMercalli(pga)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}
