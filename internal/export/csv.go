package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"

	"github.com/couchcryptid/quake-impact-service/internal/domain"
)

// assessmentRow is one CSV line. Column order follows field order.
type assessmentRow struct {
	BuildingID          string  `csv:"building_id"`
	BuildingName        string  `csv:"building_name"`
	County              string  `csv:"county"`
	BuildingType        string  `csv:"building_type"`
	Stories             int     `csv:"stories"`
	YearBuilt           int     `csv:"year_built"`
	Lat                 float64 `csv:"lat"`
	Lon                 float64 `csv:"lon"`
	DistanceKm          float64 `csv:"distance_km"`
	PGA                 float64 `csv:"pga_g"`
	MMI                 int     `csv:"mmi"`
	DamageState         string  `csv:"damage_state"`
	DamagePercent       float64 `csv:"physical_damage_percent"`
	SocialMultiplier    float64 `csv:"social_vulnerability_multiplier"`
	CombinedScore       float64 `csv:"combined_vulnerability_score"`
	RecoveryDays        int     `csv:"estimated_recovery_days"`
	VulnerableCommunity bool    `csv:"vulnerable_community"`
}

func toRow(a domain.DamageAssessment) assessmentRow {
	return assessmentRow{
		BuildingID:          a.BuildingID,
		BuildingName:        a.BuildingName,
		County:              a.County,
		BuildingType:        string(a.StructuralType),
		Stories:             a.Stories,
		YearBuilt:           a.YearBuilt,
		Lat:                 a.Location.Lat,
		Lon:                 a.Location.Lon,
		DistanceKm:          round(a.DistanceKm, 3),
		PGA:                 round(a.PGA, 4),
		MMI:                 a.MMI,
		DamageState:         a.DamageState.String(),
		DamagePercent:       round(a.DamagePercent(), 2),
		SocialMultiplier:    round(a.SocialMultiplier, 3),
		CombinedScore:       round(a.CombinedVulnerabilityScore, 2),
		RecoveryDays:        a.RecoveryDays,
		VulnerableCommunity: a.VulnerableCommunity,
	}
}

// WriteCSV writes one header line and one row per assessment, in order.
func WriteCSV(w io.Writer, assessments []domain.DamageAssessment) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if len(assessments) == 0 {
		if err := enc.EncodeHeader(assessmentRow{}); err != nil {
			return fmt.Errorf("encode csv header: %w", err)
		}
	}
	for i := range assessments {
		if err := enc.Encode(toRow(assessments[i])); err != nil {
			return fmt.Errorf("encode csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
