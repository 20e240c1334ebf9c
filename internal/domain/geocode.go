package domain

import (
	"context"
	"log/slog"
)

// EnrichWithGeocoding names the report's epicenter. A nil geocoder leaves the
// report untouched; a failed lookup is recorded in GeoSource and never fails
// the report.
func EnrichWithGeocoding(ctx context.Context, r Report, geocoder Geocoder, logger *slog.Logger) Report {
	if geocoder == nil {
		return r
	}

	epi := r.Scenario.Epicenter
	result, err := geocoder.ReverseGeocode(ctx, epi.Lat, epi.Lon)
	if err != nil {
		logger.Warn("reverse geocoding failed",
			"scenario_id", r.ScenarioID,
			"lat", epi.Lat,
			"lon", epi.Lon,
			"error", err,
		)
		r.GeoSource = GeoSourceFailed
		return r
	}
	if result.PlaceName == "" && result.FormattedAddress == "" {
		r.GeoSource = GeoSourceOriginal
		return r
	}
	r.EpicenterPlace = result.PlaceName
	if r.EpicenterPlace == "" {
		r.EpicenterPlace = result.FormattedAddress
	}
	r.FormattedAddress = result.FormattedAddress
	r.GeoConfidence = result.Confidence
	r.GeoSource = GeoSourceReverse
	return r
}
