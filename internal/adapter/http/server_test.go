package http_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/couchcryptid/quake-impact-service/internal/adapter/http"
	"github.com/couchcryptid/quake-impact-service/internal/domain"
	"github.com/couchcryptid/quake-impact-service/internal/observability"
	"github.com/couchcryptid/quake-impact-service/internal/pipeline"
	"github.com/couchcryptid/quake-impact-service/internal/roster"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

type failingAssessor struct{}

func (failingAssessor) Assess(context.Context, domain.Scenario, []domain.Building) (domain.Report, error) {
	return domain.Report{}, fmt.Errorf("disk on fire")
}

func newTestServer(readyErr error) *httpadapter.Server {
	metrics := observability.NewMetricsForTesting()
	assessor := pipeline.NewTransformer(roster.Reference(), 2, nil, slog.Default(), metrics)
	return httpadapter.NewServer(":0", &mockReadiness{err: readyErr}, assessor, metrics, slog.Default())
}

func do(t *testing.T, srv http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	srv.ServeHTTP(rec, req)
	return rec
}

const referenceScenarioBody = `{"scenario":{"id":"sf-m7","magnitude":7.0,"epicenter":{"lat":37.7949,"lon":-122.4194},"depth_km":8}}`

func TestHealthzReturns200(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	rec := do(t, newTestServer(fmt.Errorf("not ready yet")), http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "not ready yet", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestAssessments_JSONWithReferenceRoster(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodPost, "/v1/assessments", referenceScenarioBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report domain.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "sf-m7", report.ScenarioID)
	require.Len(t, report.Assessments, 25)
	assert.Equal(t, "1", report.Assessments[0].BuildingID)
	assert.Equal(t, 11, report.Summary.StateCounts[domain.DamageCollapse])
}

func TestAssessments_CustomBuildings(t *testing.T) {
	body := `{
		"scenario": {"magnitude": 6.0, "epicenter": {"lat": 37.7949, "lon": -122.4194}, "depth_km": 10},
		"buildings": [
			{"id": "a", "type": "URM", "stories": 2, "location": {"lat": 37.79, "lon": -122.41}},
			{"id": "b", "type": "modern_seismic", "stories": 30, "location": {"lat": 37.60, "lon": -122.40}}
		]
	}`
	rec := do(t, newTestServer(nil), http.MethodPost, "/v1/assessments", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report domain.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Assessments, 2)
	assert.Equal(t, domain.Masonry, report.Assessments[0].StructuralType)
	assert.Greater(t, report.Assessments[0].DamageRatio, report.Assessments[1].DamageRatio)
}

func TestAssessments_CSV(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodPost, "/v1/assessments?format=csv", referenceScenarioBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 26)
}

func TestAssessments_GeoJSON(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodPost, "/v1/assessments?format=geojson", referenceScenarioBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))

	var fc struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Len(t, fc.Features, 26)
}

func TestAssessments_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"bad json", "/v1/assessments", `{"scenario":`, http.StatusBadRequest},
		{"unknown field", "/v1/assessments", `{"quake":{}}`, http.StatusBadRequest},
		{"unknown format", "/v1/assessments?format=xml", referenceScenarioBody, http.StatusBadRequest},
		{
			name:   "magnitude out of range",
			target: "/v1/assessments",
			body:   `{"scenario":{"magnitude":9.1,"epicenter":{"lat":37.79,"lon":-122.42},"depth_km":8}}`,
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "building without location",
			target: "/v1/assessments",
			body:   `{"scenario":{"magnitude":6,"epicenter":{"lat":37.79,"lon":-122.42},"depth_km":8},"buildings":[{"id":"x","type":"wood"}]}`,
			status: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(nil), http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestAssessments_InternalError(t *testing.T) {
	srv := httpadapter.NewServer(":0", &mockReadiness{}, failingAssessor{}, observability.NewMetricsForTesting(), slog.Default())
	rec := do(t, srv, http.MethodPost, "/v1/assessments", referenceScenarioBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk on fire")
}

func TestAssessments_MethodNotAllowed(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodGet, "/v1/assessments", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestWavefront(t *testing.T) {
	srv := newTestServer(nil)

	t.Run("fronts only", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/v1/wavefront?elapsed=10", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.InDelta(t, 60.0, body["p_radius_km"], 1e-9)
		assert.InDelta(t, 35.0, body["s_radius_km"], 1e-9)
		assert.NotContains(t, body, "site")
	})

	t.Run("with site", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/v1/wavefront?elapsed=23&distance_km=35&magnitude=7", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Site struct {
				Phase     string  `json:"phase"`
				IsShaking bool    `json:"is_shaking"`
				Progress  float64 `json:"progress"`
			} `json:"site"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "strong", body.Site.Phase)
		assert.True(t, body.Site.IsShaking)
		assert.InDelta(t, 0.5, body.Site.Progress, 1e-9)
	})

	t.Run("negative elapsed clamps", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/v1/wavefront?elapsed=-5", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"p_radius_km":0`)
	})

	t.Run("bad parameter", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/v1/wavefront?elapsed=soon", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
