// Package pipeline runs the scenario consume-assess-publish loop.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/storm-data-shared/retry"

	"github.com/couchcryptid/quake-impact-service/internal/domain"
	"github.com/couchcryptid/quake-impact-service/internal/observability"
)

// Retry bounds for extract and load failures.
const (
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = 5 * time.Second
)

// BatchExtractor reads up to batchSize raw scenario messages from the source.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error)
}

// Transformer turns one scenario message into a serialized report.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error)
}

// BatchLoader writes serialized reports to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, events []domain.OutputEvent) error
}

// Pipeline orchestrates the extract-assess-load loop.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
	batchSize   int
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		batchSize:   batchSize,
	}
}

// CheckReadiness returns nil once at least one report has been published.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not published any reports yet")
	}
	return nil
}

// Run consumes scenarios until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	b := backoff{current: initialBackoff}
	for ctx.Err() == nil {
		if !p.processBatch(ctx, &b) {
			break
		}
	}
	p.logger.Info("pipeline stopping", "reason", context.Cause(ctx))
	return nil
}

// processBatch runs one cycle. It returns false when the pipeline should stop.
func (p *Pipeline) processBatch(ctx context.Context, b *backoff) bool {
	start := time.Now()

	batch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		if len(batch) == 0 {
			p.logger.Error("extract batch failed", "error", err)
			return b.wait(ctx)
		}
		// Fetched messages are not redelivered, so a partial batch is still processed.
		p.logger.Warn("extract batch interrupted, processing partial batch",
			"error", err, "fetched", len(batch))
	}
	if len(batch) == 0 {
		return ctx.Err() == nil
	}

	p.metrics.ScenariosConsumed.Add(float64(len(batch)))
	p.metrics.BatchSize.Observe(float64(len(batch)))
	b.reset()

	reports, sources := p.transformBatch(ctx, batch)
	if len(reports) == 0 {
		return true
	}

	if err := p.loader.LoadBatch(ctx, reports); err != nil {
		p.logger.Error("load batch failed", "error", err, "batch_size", len(reports))
		return b.wait(ctx)
	}
	p.metrics.ReportsProduced.Add(float64(len(reports)))
	for _, raw := range sources {
		p.commit(ctx, raw)
	}

	p.metrics.BatchProcessingDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)
	return true
}

// transformBatch assesses each scenario. A message that cannot be assessed
// is logged, counted, and committed so it is never retried.
func (p *Pipeline) transformBatch(ctx context.Context, batch []domain.RawEvent) ([]domain.OutputEvent, []domain.RawEvent) {
	reports := make([]domain.OutputEvent, 0, len(batch))
	sources := make([]domain.RawEvent, 0, len(batch))

	for _, raw := range batch {
		out, err := p.transformer.Transform(ctx, raw)
		if err != nil {
			p.logger.Warn("scenario rejected, skipping message",
				"error", err,
				"key", string(raw.Key),
				"topic", raw.Topic,
				"partition", raw.Partition,
				"offset", raw.Offset,
			)
			p.metrics.TransformErrors.Inc()
			p.commit(ctx, raw)
			continue
		}
		reports = append(reports, out)
		sources = append(sources, raw)
	}
	return reports, sources
}

func (p *Pipeline) commit(ctx context.Context, raw domain.RawEvent) {
	if raw.Commit == nil {
		return
	}
	if err := raw.Commit(ctx); err != nil {
		p.logger.Warn("commit offset failed", "error", err,
			"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
	}
}

// backoff doubles the retry delay after each failure up to maxBackoff.
type backoff struct {
	current time.Duration
}

func (b *backoff) reset() { b.current = initialBackoff }

// wait sleeps for the current delay and advances it. It returns false if
// the context ends first.
func (b *backoff) wait(ctx context.Context) bool {
	if !retry.SleepWithContext(ctx, b.current) {
		return false
	}
	b.current = retry.NextBackoff(b.current, maxBackoff)
	return true
}
