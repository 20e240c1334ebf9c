package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/quake-impact-service/internal/domain"
	"github.com/couchcryptid/quake-impact-service/internal/observability"
)

// ScenarioTransformer assesses scenarios against a fixed roster and
// optionally names the epicenter.
type ScenarioTransformer struct {
	buildings []domain.Building
	workers   int
	geocoder  domain.Geocoder
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewTransformer creates a ScenarioTransformer over the given roster. Pass
// a nil geocoder to disable epicenter enrichment.
func NewTransformer(buildings []domain.Building, workers int, geocoder domain.Geocoder, logger *slog.Logger, metrics *observability.Metrics) *ScenarioTransformer {
	return &ScenarioTransformer{
		buildings: buildings,
		workers:   workers,
		geocoder:  geocoder,
		logger:    logger,
		metrics:   metrics,
	}
}

// Roster returns the configured buildings.
func (t *ScenarioTransformer) Roster() []domain.Building {
	return t.buildings
}

// Transform parses a scenario message, assesses it, and serializes the report.
func (t *ScenarioTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	s, err := domain.ParseScenario(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}
	report, err := t.Assess(ctx, s, nil)
	if err != nil {
		return domain.OutputEvent{}, err
	}
	return domain.SerializeReport(report)
}

// Assess evaluates the scenario against buildings, or against the
// configured roster when buildings is nil, and builds the report.
func (t *ScenarioTransformer) Assess(ctx context.Context, s domain.Scenario, buildings []domain.Building) (domain.Report, error) {
	if buildings == nil {
		buildings = t.buildings
	}

	start := time.Now()
	assessments, err := domain.EvaluateConcurrent(s, buildings, t.workers)
	if err != nil {
		return domain.Report{}, fmt.Errorf("assess scenario %q: %w", s.ID, err)
	}
	t.record(assessments, time.Since(start))

	report := domain.NewReport(s, assessments)
	report = domain.EnrichWithGeocoding(ctx, report, t.geocoder, t.logger)

	t.logger.Debug("scenario assessed",
		"scenario_id", s.ID,
		"magnitude", s.Magnitude,
		"buildings", len(assessments),
		"severe_or_worse", report.Summary.SevereOrWorse,
	)
	return report, nil
}

func (t *ScenarioTransformer) record(assessments []domain.DamageAssessment, elapsed time.Duration) {
	if t.metrics == nil {
		return
	}
	t.metrics.EvaluationDuration.Observe(elapsed.Seconds())
	t.metrics.BuildingsAssessed.Add(float64(len(assessments)))
	for _, a := range assessments {
		t.metrics.DamageStates.WithLabelValues(a.DamageState.String()).Inc()
	}
}
