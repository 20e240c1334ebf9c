package http

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	"github.com/couchcryptid/quake-impact-service/internal/domain"
)

const defaultWavefrontMagnitude = 6.0

type wavefrontResponse struct {
	domain.WaveFrontState
	Site *siteResponse `json:"site,omitempty"`
}

type siteResponse struct {
	DistanceKm float64 `json:"distance_km"`
	Magnitude  float64 `json:"magnitude"`
	domain.ShakingState
}

func (s *Server) handleWavefront(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	elapsed, err := floatParam(q, "elapsed", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp := wavefrontResponse{WaveFrontState: domain.FrontRadii(elapsed)}

	if q.Has("distance_km") {
		distance, err := floatParam(q, "distance_km", 0)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		magnitude, err := floatParam(q, "magnitude", defaultWavefrontMagnitude)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.Site = &siteResponse{
			DistanceKm:   distance,
			Magnitude:    magnitude,
			ShakingState: domain.ShakingAt(distance, magnitude, elapsed),
		}
	}
	sharedobs.WriteJSON(w, http.StatusOK, resp)
}

func floatParam(q url.Values, key string, def float64) (float64, error) {
	s := q.Get(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}
	return v, nil
}
