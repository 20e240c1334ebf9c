package domain

import "time"

// Geocoding outcomes recorded on a report.
const (
	GeoSourceReverse  = "reverse"
	GeoSourceOriginal = "original"
	GeoSourceFailed   = "failed"
)

// Report bundles one scenario's assessments with their summary.
type Report struct {
	ScenarioID  string             `json:"scenario_id"`
	Scenario    Scenario           `json:"scenario"`
	Assessments []DamageAssessment `json:"assessments"`
	Summary     Summary            `json:"summary"`

	// Epicenter enrichment.
	EpicenterPlace   string  `json:"epicenter_place,omitempty"`
	FormattedAddress string  `json:"formatted_address,omitempty"`
	GeoConfidence    float64 `json:"geo_confidence,omitempty"`
	GeoSource        string  `json:"geo_source,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}

// NewReport summarizes assessments for the scenario and stamps the report
// with the report clock.
func NewReport(s Scenario, assessments []DamageAssessment) Report {
	return Report{
		ScenarioID:  s.ID,
		Scenario:    s,
		Assessments: assessments,
		Summary:     Summarize(assessments),
		GeneratedAt: reportTime(),
	}
}
