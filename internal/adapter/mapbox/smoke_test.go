//go:build mapbox

package mapbox

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/quake-impact-service/internal/observability"
)

// These tests hit the real Mapbox API and require MAPBOX_TOKEN.
// Run with: go test -tags=mapbox ./internal/adapter/mapbox/ -v -count=1

func smokeClient(t *testing.T) *Client {
	t.Helper()
	token := os.Getenv("MAPBOX_TOKEN")
	if token == "" {
		t.Fatal("MAPBOX_TOKEN must be set to run smoke tests")
	}
	return NewClient(token, 10*time.Second, observability.NewMetricsForTesting(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSmoke_ReverseGeocode(t *testing.T) {
	c := smokeClient(t)

	// Downtown San Francisco.
	result, err := c.ReverseGeocode(context.Background(), 37.7949, -122.4194)
	require.NoError(t, err)

	assert.Contains(t, result.FormattedAddress, "San Francisco")
	assert.NotEmpty(t, result.PlaceName)
	assert.Greater(t, result.Confidence, 0.0)
}

func TestSmoke_ReverseGeocode_Offshore(t *testing.T) {
	c := smokeClient(t)

	// Farallon escarpment; Mapbox may or may not find a place.
	_, err := c.ReverseGeocode(context.Background(), 37.5, -123.8)
	require.NoError(t, err)
}

func TestSmoke_CachedGeocoder(t *testing.T) {
	c := smokeClient(t)
	cached := NewCachedGeocoder(c, 10, observability.NewMetricsForTesting())

	r1, err := cached.ReverseGeocode(context.Background(), 37.8044, -122.2712)
	require.NoError(t, err)
	r2, err := cached.ReverseGeocode(context.Background(), 37.8044, -122.2712)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}
