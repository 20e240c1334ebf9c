package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/couchcryptid/quake-impact-service/internal/domain"
)

// Feature kinds in the exported collection.
const (
	KindEpicenter = "epicenter"
	KindBuilding  = "building"
)

func point(g domain.Geo) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{g.Lon, g.Lat})
}

// FeatureCollection builds a collection with the epicenter first and one
// point per assessed building after it, in roster order.
func FeatureCollection(r domain.Report) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{
		Features: make([]*geojson.Feature, 0, len(r.Assessments)+1),
	}

	epicenter := map[string]any{
		"kind":       KindEpicenter,
		"magnitude":  r.Scenario.Magnitude,
		"depth_km":   r.Scenario.DepthKm,
		"fault_name": r.Scenario.Fault(),
	}
	if r.EpicenterPlace != "" {
		epicenter["place"] = r.EpicenterPlace
	}
	fc.Features = append(fc.Features, &geojson.Feature{
		ID:         r.ScenarioID,
		Geometry:   point(r.Scenario.Epicenter),
		Properties: epicenter,
	})

	for _, a := range r.Assessments {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       a.BuildingID,
			Geometry: point(a.Location),
			Properties: map[string]any{
				"kind":                         KindBuilding,
				"name":                         a.BuildingName,
				"county":                       a.County,
				"building_type":                string(a.StructuralType),
				"distance_km":                  round(a.DistanceKm, 3),
				"pga_g":                        round(a.PGA, 4),
				"mmi":                          a.MMI,
				"damage_state":                 a.DamageState.String(),
				"damage_ratio":                 round(a.DamageRatio, 4),
				"social_multiplier":            round(a.SocialMultiplier, 3),
				"combined_vulnerability_score": round(a.CombinedVulnerabilityScore, 2),
				"recovery_days":                a.RecoveryDays,
				"vulnerable_community":         a.VulnerableCommunity,
			},
		})
	}
	return fc
}

// WriteGeoJSON writes the report as a GeoJSON FeatureCollection.
func WriteGeoJSON(w io.Writer, r domain.Report) error {
	data, err := json.Marshal(FeatureCollection(r))
	if err != nil {
		return fmt.Errorf("marshal geojson: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}
	return nil
}
