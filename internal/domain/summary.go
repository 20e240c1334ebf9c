package domain

import "sort"

// recoveryBands buckets recovery times; each band's upper bound is inclusive.
var recoveryBands = []struct {
	label string
	upTo  int
}{
	{"<30d", 30},
	{"30-90d", 90},
	{"90-180d", 180},
	{"180-365d", 365},
	{">365d", int(^uint(0) >> 1)},
}

// RecoveryBandLabels lists the recovery band labels in ascending order.
func RecoveryBandLabels() []string {
	labels := make([]string, len(recoveryBands))
	for i, b := range recoveryBands {
		labels[i] = b.label
	}
	return labels
}

// CountySummary aggregates assessments that share a county.
type CountySummary struct {
	Buildings           int     `json:"buildings"`
	AverageDamageRatio  float64 `json:"average_damage_ratio"`
	AverageMultiplier   float64 `json:"average_multiplier"`
	AverageRecoveryDays float64 `json:"average_recovery_days"`
}

// Summary is a read-only aggregate view over an assessment sequence.
type Summary struct {
	Buildings           int                      `json:"buildings"`
	AverageDamageRatio  float64                  `json:"average_damage_ratio"`
	MaxDamageRatio      float64                  `json:"max_damage_ratio"`
	StateCounts         map[DamageState]int      `json:"state_counts"`
	SevereOrWorse       int                      `json:"severe_or_worse"`
	AverageMultiplier   float64                  `json:"average_multiplier"`
	AverageRecoveryDays float64                  `json:"average_recovery_days"`
	RecoveryBands       map[string]int           `json:"recovery_bands"`
	Counties            map[string]CountySummary `json:"counties,omitempty"`
	HighRiskBuildings   []string                 `json:"high_risk_buildings"`
}

// Summarize derives aggregate statistics from assessments without touching
// the engine. High-risk buildings are those with Extensive or worse damage in
// a vulnerable community, in roster order.
func Summarize(assessments []DamageAssessment) Summary {
	s := Summary{
		Buildings:         len(assessments),
		StateCounts:       make(map[DamageState]int, len(damageStateLabels)),
		RecoveryBands:     make(map[string]int, len(recoveryBands)),
		HighRiskBuildings: []string{},
	}
	for _, st := range DamageStates() {
		s.StateCounts[st] = 0
	}
	for _, b := range recoveryBands {
		s.RecoveryBands[b.label] = 0
	}
	if len(assessments) == 0 {
		return s
	}

	type countyAcc struct {
		n                      int
		ratio, mult, recovery float64
	}
	counties := map[string]*countyAcc{}

	var ratioSum, multSum, recoverySum float64
	for _, a := range assessments {
		ratioSum += a.DamageRatio
		multSum += a.SocialMultiplier
		recoverySum += float64(a.RecoveryDays)
		s.MaxDamageRatio = max(s.MaxDamageRatio, a.DamageRatio)
		s.StateCounts[a.DamageState]++
		if a.DamageState >= DamageSevere {
			s.SevereOrWorse++
		}
		if a.RecoveryDays > 0 {
			s.RecoveryBands[recoveryBand(a.RecoveryDays)]++
		}
		if a.DamageState >= DamageExtensive && a.VulnerableCommunity {
			s.HighRiskBuildings = append(s.HighRiskBuildings, a.BuildingID)
		}
		if a.County != "" {
			acc, ok := counties[a.County]
			if !ok {
				acc = &countyAcc{}
				counties[a.County] = acc
			}
			acc.n++
			acc.ratio += a.DamageRatio
			acc.mult += a.SocialMultiplier
			acc.recovery += float64(a.RecoveryDays)
		}
	}

	n := float64(len(assessments))
	s.AverageDamageRatio = ratioSum / n
	s.AverageMultiplier = multSum / n
	s.AverageRecoveryDays = recoverySum / n

	if len(counties) > 0 {
		s.Counties = make(map[string]CountySummary, len(counties))
		for name, acc := range counties {
			cn := float64(acc.n)
			s.Counties[name] = CountySummary{
				Buildings:           acc.n,
				AverageDamageRatio:  acc.ratio / cn,
				AverageMultiplier:   acc.mult / cn,
				AverageRecoveryDays: acc.recovery / cn,
			}
		}
	}
	return s
}

// CountyNames returns the summarized counties in alphabetical order.
func (s Summary) CountyNames() []string {
	names := make([]string, 0, len(s.Counties))
	for name := range s.Counties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func recoveryBand(days int) string {
	for _, b := range recoveryBands {
		if days <= b.upTo {
			return b.label
		}
	}
	return recoveryBands[len(recoveryBands)-1].label
}
