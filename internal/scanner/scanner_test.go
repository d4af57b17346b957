package scanner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domain-finder/internal/generator"
	"domain-finder/internal/types"
)

// stubChecker deterministically maps candidates to verdicts and counts
// probes.
type stubChecker struct {
	available map[string]bool
	fail      bool
	delay     time.Duration

	mu    sync.Mutex
	calls int
}

func (c *stubChecker) Check(ctx context.Context, domain string) (bool, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()

	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}

	if c.fail {
		return false, errors.New("simulated probe failure")
	}
	return c.available[domain], nil
}

func (c *stubChecker) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func sampleCandidates(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("name%05d.com", i)
	}
	return out
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	checker := &stubChecker{}

	cases := []struct {
		name string
		cfg  types.RunConfig
	}{
		{"zero batch size", types.RunConfig{BatchSize: 0, Workers: 10}},
		{"negative batch size", types.RunConfig{BatchSize: -1, Workers: 10}},
		{"zero workers", types.RunConfig{BatchSize: 10, Workers: 0}},
		{"negative workers", types.RunConfig{BatchSize: 10, Workers: -4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(checker, tc.cfg)
			require.Error(t, err)

			var valErr *types.ValidationError
			assert.ErrorAs(t, err, &valErr)
		})
	}

	assert.Zero(t, checker.callCount(), "rejection must happen before any probe")
}

func TestNewRejectsNilChecker(t *testing.T) {
	_, err := New(nil, types.RunConfig{BatchSize: 1, Workers: 1})
	require.Error(t, err)
}

func TestRunScenarioThreeLetterCom(t *testing.T) {
	candidates := generator.Collect(generator.GenerateDomains(3, ".com", nil))
	require.Len(t, candidates, 17576)

	checker := &stubChecker{available: map[string]bool{"abc.com": true, "xyz.com": true}}
	eng, err := New(checker, types.RunConfig{BatchSize: 10, Workers: 30})
	require.NoError(t, err)

	report, err := eng.Run(context.Background(), candidates)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"abc.com", "xyz.com"}, report.Available)
	assert.Equal(t, 17576, report.Processed)
	assert.Equal(t, 17576, report.Total)
	assert.Equal(t, 17576, checker.callCount())
}

func TestRunIdempotentAcrossWorkerCounts(t *testing.T) {
	candidates := sampleCandidates(1000)
	available := map[string]bool{
		"name00007.com": true,
		"name00419.com": true,
		"name00999.com": true,
	}

	var sets [][]string
	for _, workers := range []int{1, 7, 50} {
		checker := &stubChecker{available: available}
		eng, err := New(checker, types.RunConfig{BatchSize: 13, Workers: workers})
		require.NoError(t, err)

		report, err := eng.Run(context.Background(), candidates)
		require.NoError(t, err)
		require.Equal(t, 1000, report.Processed)

		got := append([]string(nil), report.Available...)
		sort.Strings(got)
		sets = append(sets, got)
	}

	assert.Equal(t, sets[0], sets[1], "worker count must not change the result")
	assert.Equal(t, sets[1], sets[2], "worker count must not change the result")
	assert.Equal(t, []string{"name00007.com", "name00419.com", "name00999.com"}, sets[0])
}

func TestRunHandlesUnorderedCompletion(t *testing.T) {
	candidates := sampleCandidates(120)
	available := map[string]bool{"name00000.com": true, "name00119.com": true}

	// A small per-probe delay plus many workers makes completion order
	// effectively arbitrary.
	checker := &stubChecker{available: available, delay: time.Millisecond}
	eng, err := New(checker, types.RunConfig{BatchSize: 7, Workers: 16})
	require.NoError(t, err)

	report, err := eng.Run(context.Background(), candidates)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"name00000.com", "name00119.com"}, report.Available)
	assert.Equal(t, 120, report.Processed)
}

func TestRunCounterWithRemainderBatch(t *testing.T) {
	checker := &stubChecker{}
	eng, err := New(checker, types.RunConfig{BatchSize: 10, Workers: 3})
	require.NoError(t, err)

	report, err := eng.Run(context.Background(), sampleCandidates(25))
	require.NoError(t, err)

	assert.Equal(t, 25, report.Processed)
	assert.Equal(t, 25, checker.callCount())
}

func TestRunFailClosedProbes(t *testing.T) {
	checker := &stubChecker{fail: true}
	eng, err := New(checker, types.RunConfig{BatchSize: 5, Workers: 4})
	require.NoError(t, err)

	report, err := eng.Run(context.Background(), sampleCandidates(40))
	require.NoError(t, err, "probe failures never fail the run")

	assert.Empty(t, report.Available)
	assert.Equal(t, 40, report.Processed)
}

func TestRunEmitsTelemetryAtBoundaries(t *testing.T) {
	var snapshots []types.Progress
	events := Events{Progress: func(p types.Progress) { snapshots = append(snapshots, p) }}

	checker := &stubChecker{}
	eng, err := New(checker, types.RunConfig{BatchSize: 3, Workers: 1},
		WithEvents(events), WithReportInterval(10))
	require.NoError(t, err)

	_, err = eng.Run(context.Background(), sampleCandidates(30))
	require.NoError(t, err)

	// Single worker makes completion order deterministic: the counter
	// passes 10 at 12 and 20 at 21.
	require.Len(t, snapshots, 3)
	assert.Equal(t, 12, snapshots[0].Processed)
	assert.Equal(t, 21, snapshots[1].Processed)
	assert.Equal(t, 30, snapshots[2].Processed)

	for _, p := range snapshots {
		assert.Equal(t, 30, p.Total)
	}
}

func TestRunTelemetrySkippedBoundaryStillReports(t *testing.T) {
	var snapshots []types.Progress
	events := Events{Progress: func(p types.Progress) { snapshots = append(snapshots, p) }}

	checker := &stubChecker{}
	eng, err := New(checker, types.RunConfig{BatchSize: 25, Workers: 1},
		WithEvents(events), WithReportInterval(10))
	require.NoError(t, err)

	_, err = eng.Run(context.Background(), sampleCandidates(50))
	require.NoError(t, err)

	// Each completion jumps several multiples of the interval; one
	// report per completion.
	require.Len(t, snapshots, 2)
	assert.Equal(t, 25, snapshots[0].Processed)
	assert.Equal(t, 50, snapshots[1].Processed)
}

func TestRunFoundNoticesMatchAvailableSet(t *testing.T) {
	candidates := sampleCandidates(200)
	available := map[string]bool{
		"name00003.com": true,
		"name00100.com": true,
		"name00199.com": true,
	}

	var mu sync.Mutex
	var notified []string
	events := Events{Found: func(v types.Verdict) {
		mu.Lock()
		notified = append(notified, v.Domain)
		mu.Unlock()
	}}

	checker := &stubChecker{available: available}
	eng, err := New(checker, types.RunConfig{BatchSize: 9, Workers: 8}, WithEvents(events))
	require.NoError(t, err)

	report, err := eng.Run(context.Background(), candidates)
	require.NoError(t, err)

	assert.ElementsMatch(t, report.Available, notified)
}

func TestRunEmptyCandidates(t *testing.T) {
	eng, err := New(&stubChecker{}, types.RunConfig{BatchSize: 10, Workers: 5})
	require.NoError(t, err)

	report, err := eng.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, report.Available)
	assert.Zero(t, report.Processed)
	assert.Zero(t, report.Total)
}

// gatedChecker blocks every probe until released so cancellation can
// be delivered at a known point.
type gatedChecker struct {
	release chan struct{}

	mu    sync.Mutex
	calls int
}

func (c *gatedChecker) Check(ctx context.Context, domain string) (bool, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()

	select {
	case <-c.release:
	case <-ctx.Done():
	}
	return false, ctx.Err()
}

func (c *gatedChecker) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestRunCancellationStopsSubmission(t *testing.T) {
	checker := &gatedChecker{release: make(chan struct{})}

	eng, err := New(checker, types.RunConfig{BatchSize: 1, Workers: 2})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	var report *Report
	var runErr error
	go func() {
		defer close(done)
		report, runErr = eng.Run(ctx, sampleCandidates(10))
	}()

	// Wait until both workers sit inside a probe, then interrupt.
	require.Eventually(t, func() bool { return checker.callCount() == 2 },
		time.Second, time.Millisecond)
	cancel()
	close(checker.release)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after cancellation")
	}

	require.ErrorIs(t, runErr, context.Canceled)
	assert.Nil(t, report, "a canceled run returns no partial results")
	assert.Equal(t, 2, checker.callCount(), "no probes after the signal was observed")
}

func TestRunCancelBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := &stubChecker{}
	eng, err := New(checker, types.RunConfig{BatchSize: 5, Workers: 2})
	require.NoError(t, err)

	report, err := eng.Run(ctx, sampleCandidates(50))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
	assert.Zero(t, checker.callCount())
}

func TestRunReportRate(t *testing.T) {
	checker := &stubChecker{delay: time.Millisecond}
	eng, err := New(checker, types.RunConfig{BatchSize: 10, Workers: 10})
	require.NoError(t, err)

	report, err := eng.Run(context.Background(), sampleCandidates(100))
	require.NoError(t, err)

	assert.Greater(t, report.Rate, 0.0)
	assert.Greater(t, report.Elapsed, time.Duration(0))
}
