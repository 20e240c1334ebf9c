package domain

import "math"

// Social vulnerability thresholds. Bonuses are kept in tenths so the
// threshold-only multipliers (1.0, 1.2, ... 2.2) are exact; a fractional
// SoVI contribution carries ordinary float rounding.
const (
	elderlyThresholdPct = 25
	povertyThresholdPct = 15
	densityThreshold    = 10_000
	highSoVIThreshold   = 0.7

	elderlyBonusTenths = 3
	povertyBonusTenths = 3
	densityBonusTenths = 2
	soviBonusTenths    = 4

	// MaxMultiplier is the largest possible social multiplier.
	MaxMultiplier = 2.2
)

// baseRecoveryDays is the recovery time for a community with no social
// vulnerability, indexed by DamageState.
var baseRecoveryDays = [...]float64{
	DamageNone:      0,
	DamageSlight:    7,
	DamageModerate:  30,
	DamageExtensive: 90,
	DamageSevere:    180,
	DamageCollapse:  365,
}

// BaseRecoveryDays returns the unadjusted recovery time for a damage state.
func BaseRecoveryDays(s DamageState) float64 {
	if s < DamageNone || s > DamageCollapse {
		return 0
	}
	return baseRecoveryDays[s]
}

// Multiplier returns the recovery-time multiplier for the community around a
// building. It is always in [1.0, 2.2]. Only the threshold sums are exact;
// SoVI 0.35 yields 1.14 to within float precision, not bit-exactly.
func Multiplier(b Building) float64 {
	tenths := 10.0
	if b.ElderlyPct > elderlyThresholdPct {
		tenths += elderlyBonusTenths
	}
	if b.PovertyPct > povertyThresholdPct {
		tenths += povertyBonusTenths
	}
	if b.DensityPerSqMi > densityThreshold {
		tenths += densityBonusTenths
	}
	tenths += soviBonusTenths * clampUnit(b.SoVI)
	return tenths / 10
}

// RecoveryDays returns the expected recovery time in whole days for a
// building left in damage state s.
func RecoveryDays(s DamageState, b Building) int {
	days := math.Round(BaseRecoveryDays(s) * Multiplier(b))
	return int(math.Max(0, days))
}

// CombinedVulnerability blends physical damage and social multiplier into a
// 0–100 score.
func CombinedVulnerability(ratio, multiplier float64) float64 {
	score := clampUnit(ratio) * 100 * multiplier / MaxMultiplier
	return math.Max(0, math.Min(100, score))
}

// IsVulnerableCommunity flags buildings in elderly, low-income, or high-SoVI
// communities.
func IsVulnerableCommunity(b Building) bool {
	return b.ElderlyPct > elderlyThresholdPct || b.PovertyPct > povertyThresholdPct || b.SoVI > highSoVIThreshold
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
