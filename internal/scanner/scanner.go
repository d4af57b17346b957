package scanner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"domain-finder/internal/batch"
	"domain-finder/internal/domain"
	"domain-finder/internal/types"
	"domain-finder/internal/worker"
)

// DefaultReportInterval is the processed-candidate cadence for
// progress telemetry.
const DefaultReportInterval = 500

// Events carries a run's observable side effects. Both callbacks are
// optional. Found fires from worker goroutines the moment an available
// name is probed; Progress fires from the aggregator at reporting
// boundaries. Found must therefore be safe for concurrent use.
type Events struct {
	Found    func(types.Verdict)
	Progress func(types.Progress)
}

// Engine dispatches candidate batches over a bounded worker pool and
// aggregates the verdicts as they complete.
type Engine struct {
	checker  domain.Checker
	cfg      types.RunConfig
	interval int
	events   Events
}

// Option adjusts an Engine beyond its required configuration.
type Option func(*Engine)

// WithEvents attaches run event callbacks.
func WithEvents(events Events) Option {
	return func(e *Engine) { e.events = events }
}

// WithReportInterval overrides the telemetry cadence.
func WithReportInterval(interval int) Option {
	return func(e *Engine) { e.interval = interval }
}

// New validates the run configuration and builds an engine. Invalid
// tunables are rejected here, before any network work can start, and
// are never clamped.
func New(checker domain.Checker, cfg types.RunConfig, opts ...Option) (*Engine, error) {
	if checker == nil {
		return nil, types.NewConfigurationError("a checker is required", nil)
	}

	if cfg.BatchSize < 1 {
		return nil, types.NewValidationError(fmt.Sprintf("batch size must be at least 1, got %d", cfg.BatchSize), nil)
	}

	if cfg.Workers < 1 {
		return nil, types.NewValidationError(fmt.Sprintf("worker count must be at least 1, got %d", cfg.Workers), nil)
	}

	e := &Engine{
		checker:  checker,
		cfg:      cfg,
		interval: DefaultReportInterval,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Report summarizes one completed run. Available is unordered; callers
// sort before display or persistence.
type Report struct {
	Available []string
	Processed int
	Total     int
	Elapsed   time.Duration
	Rate      float64
}

// Run processes every candidate and blocks until the aggregated
// available set is complete or ctx is canceled. Batches are submitted
// in order; completions arrive in any order. On cancellation no
// further batches are submitted and the partial results are discarded.
func (e *Engine) Run(ctx context.Context, candidates []string) (*Report, error) {
	batches := batch.Split(candidates, e.cfg.BatchSize)

	log.Debug().
		Int("candidates", len(candidates)).
		Int("batches", len(batches)).
		Int("batch_size", e.cfg.BatchSize).
		Int("workers", e.cfg.Workers).
		Msg("starting scan")

	jobs := make(chan []string)
	// Buffered to the batch count so workers finishing after a
	// cancellation never block on send.
	results := make(chan []types.Verdict, len(batches))

	var wg sync.WaitGroup
	for i := 0; i < e.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range jobs {
				results <- worker.ProcessBatch(ctx, e.checker, b, e.events.Found)
			}
		}()
	}

	// Feeder: submission preserves batch order and stops at the first
	// sign of cancellation.
	go func() {
		defer close(jobs)
		for _, b := range batches {
			select {
			case <-ctx.Done():
				return
			case jobs <- b:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// Single aggregator: the only writer of the counters and the set.
	tr := newTracker(len(candidates), e.interval)
	var available []string
	for verdicts := range results {
		for _, v := range verdicts {
			if v.Available {
				available = append(available, v.Domain)
			}
		}

		if progress, crossed := tr.advance(len(verdicts)); crossed && e.events.Progress != nil {
			e.events.Progress(progress)
		}
	}

	if err := ctx.Err(); err != nil {
		log.Debug().Int("processed", tr.processed).Msg("scan canceled before completion")
		return nil, err
	}

	elapsed := tr.elapsed()
	rate := 0.0
	if elapsed > 0 {
		rate = float64(tr.processed) / elapsed.Seconds()
	}

	return &Report{
		Available: available,
		Processed: tr.processed,
		Total:     len(candidates),
		Elapsed:   elapsed,
		Rate:      rate,
	}, nil
}
