// Package benchmark measures scan throughput under a fixed set of
// batch/worker configurations and picks the fastest one for the full
// run.
package benchmark

import (
	"context"

	"github.com/rs/zerolog/log"

	"domain-finder/internal/domain"
	"domain-finder/internal/scanner"
	"domain-finder/internal/types"
)

// DefaultSampleSize is how many candidates a trial probes when the
// caller does not configure its own sample size.
const DefaultSampleSize = 1000

// Strategies are the trial configurations, ordered from many small
// batches to few large ones. Ties on elapsed time resolve to the
// earlier entry.
var Strategies = []types.RunConfig{
	{BatchSize: 1, Workers: 100},
	{BatchSize: 4, Workers: 75},
	{BatchSize: 5, Workers: 50},
	{BatchSize: 10, Workers: 30},
	{BatchSize: 20, Workers: 20},
	{BatchSize: 50, Workers: 10},
}

// Fixed configurations for runs that skip the measurement phase.
var (
	PresetFast     = types.RunConfig{BatchSize: 1, Workers: 100}
	PresetBalanced = types.RunConfig{BatchSize: 10, Workers: 30}
	PresetSteady   = types.RunConfig{BatchSize: 50, Workers: 10}
)

// Outcome holds every trial plus the winning configuration.
type Outcome struct {
	Trials []types.TrialResult
	Best   types.TrialResult
}

// Sample returns the leading portion of candidates used for trials.
// The slice is shared with the input.
func Sample(candidates []string, size int) []string {
	if size <= 0 || size >= len(candidates) {
		return candidates
	}
	return candidates[:size]
}

// Run probes the same sample once per strategy and measures each
// pass. The observer, when set, is called after every finished trial.
func Run(ctx context.Context, checker domain.Checker, sample []string, observer func(types.TrialResult)) (*Outcome, error) {
	if len(sample) == 0 {
		return nil, types.NewValidationError("benchmark sample is empty", nil)
	}

	trials := make([]types.TrialResult, 0, len(Strategies))
	for _, rc := range Strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		eng, err := scanner.New(checker, rc)
		if err != nil {
			return nil, err
		}

		report, err := eng.Run(ctx, sample)
		if err != nil {
			return nil, err
		}

		trial := types.TrialResult{
			Config:  rc,
			Elapsed: report.Elapsed,
			Rate:    report.Rate,
			Found:   len(report.Available),
		}
		trials = append(trials, trial)

		log.Debug().
			Int("batch_size", rc.BatchSize).
			Int("workers", rc.Workers).
			Dur("elapsed", trial.Elapsed).
			Float64("rate", trial.Rate).
			Msg("benchmark trial finished")

		if observer != nil {
			observer(trial)
		}
	}

	return &Outcome{Trials: trials, Best: SelectBest(trials)}, nil
}

// SelectBest returns the trial with the lowest elapsed time. Earlier
// trials win ties.
func SelectBest(trials []types.TrialResult) types.TrialResult {
	if len(trials) == 0 {
		return types.TrialResult{}
	}
	best := trials[0]
	for _, trial := range trials[1:] {
		if trial.Elapsed < best.Elapsed {
			best = trial
		}
	}
	return best
}
