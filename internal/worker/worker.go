package worker

import (
	"context"

	"github.com/rs/zerolog/log"

	"domain-finder/internal/domain"
	"domain-finder/internal/types"
)

// ProcessBatch probes every candidate of one batch strictly in order
// and returns the verdicts together once the batch is done. A probe
// failure counts as unavailable and never stops the rest of the batch.
// Available candidates are reported through found as soon as they are
// seen. Cancellation stops before the next probe; the partial verdict
// list is returned and the canceled run discards it.
func ProcessBatch(ctx context.Context, checker domain.Checker, batch []string, found func(types.Verdict)) []types.Verdict {
	verdicts := make([]types.Verdict, 0, len(batch))

	for _, name := range batch {
		if ctx.Err() != nil {
			return verdicts
		}

		available, err := checker.Check(ctx, name)
		if err != nil {
			log.Debug().Str("domain", name).Err(err).Msg("probe failed, counting as unavailable")
			available = false
		}

		verdict := types.Verdict{Domain: name, Available: available}
		if verdict.Available && found != nil {
			found(verdict)
		}

		verdicts = append(verdicts, verdict)
	}

	return verdicts
}
