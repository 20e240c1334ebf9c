package observability

import (
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/quake-impact-service/internal/config"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestNewMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.ScenariosConsumed.Add(3)
	a.DamageStates.WithLabelValues("Collapse").Inc()

	assert.InDelta(t, 3.0, counterValue(t, a.ScenariosConsumed), 1e-9)
	assert.Zero(t, counterValue(t, b.ScenariosConsumed))
	assert.InDelta(t, 1.0, counterValue(t, a.DamageStates.WithLabelValues("Collapse")), 1e-9)
}

func TestNewLogger_Levels(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	tests := []struct {
		level, format string
		enabled       slog.Level
		disabled      slog.Level
	}{
		{"warn", "json", slog.LevelWarn, slog.LevelInfo},
		{"DEBUG", "text", slog.LevelDebug, slog.LevelDebug - 4},
		{"nonsense", "json", slog.LevelInfo, slog.LevelDebug},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(&config.Config{LogLevel: tt.level, LogFormat: tt.format})
			require.NotNil(t, logger)
			assert.True(t, logger.Enabled(context.Background(), tt.enabled))
			assert.False(t, logger.Enabled(context.Background(), tt.disabled))
			assert.Same(t, logger, slog.Default())
		})
	}
}
