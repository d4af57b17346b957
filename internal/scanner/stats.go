package scanner

import (
	"time"

	"domain-finder/internal/types"
)

// tracker accumulates run counters and decides when a telemetry
// snapshot is due. Only the aggregator touches it.
type tracker struct {
	total     int
	interval  int
	processed int
	lastMark  int
	start     time.Time
}

func newTracker(total, interval int) *tracker {
	return &tracker{total: total, interval: interval, start: time.Now()}
}

// advance adds n processed candidates and returns a snapshot when the
// counter crossed a reporting boundary since the last report. A
// completion that jumps past several boundaries yields one report, so
// the cadence stays coarse.
func (t *tracker) advance(n int) (types.Progress, bool) {
	t.processed += n

	if t.interval < 1 {
		return types.Progress{}, false
	}

	mark := t.processed / t.interval
	if mark <= t.lastMark {
		return types.Progress{}, false
	}
	t.lastMark = mark

	return ComputeProgress(t.processed, t.total, t.elapsed()), true
}

func (t *tracker) elapsed() time.Duration {
	return time.Since(t.start)
}

// ComputeProgress derives the telemetry tuple from raw counters. Rate
// is candidates per second; ETA is remaining work at the current rate
// and stays zero while the rate is zero.
func ComputeProgress(processed, total int, elapsed time.Duration) types.Progress {
	p := types.Progress{Processed: processed, Total: total, Elapsed: elapsed}

	if total > 0 {
		p.Percent = float64(processed) / float64(total) * 100
	}

	if elapsed > 0 {
		p.Rate = float64(processed) / elapsed.Seconds()
	}

	if remaining := total - processed; remaining > 0 && p.Rate > 0 {
		p.ETA = time.Duration(float64(remaining) / p.Rate * float64(time.Second))
	}

	return p
}
