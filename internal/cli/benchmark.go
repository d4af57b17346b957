package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"domain-finder/internal/benchmark"
	"domain-finder/internal/config"
	"domain-finder/internal/domain"
	"domain-finder/internal/generator"
	"domain-finder/internal/types"
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Measure scan throughput across batch/worker configurations",
	Long: `Probes a sample of the candidate set once per built-in configuration
and reports the throughput of each. The fastest configuration is the
one strategy auto would pick for a full run.`,
	RunE: runBenchmarkCmd,
}

func init() {
	rootCmd.AddCommand(benchmarkCmd)
}

func runBenchmarkCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(cmd)
	if err != nil {
		return err
	}

	cfg.Domain.TLDs = config.NormalizeTLDs(cfg.Domain.TLDs)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	filter, err := generator.NewFilter(cfg.Domain.RegexFilter, cfg.Domain.ExcludeFilter)
	if err != nil {
		return err
	}
	candidates := generator.Collect(generator.GenerateDomainsMulti(cfg.Domain.Length, cfg.Domain.TLDs, filter))

	checker, err := domain.NewChecker(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop := notifyInterrupt(cancel)
	defer stop()

	outcome, err := runTrials(ctx, cfg, checker, candidates)
	if err != nil {
		return finishInterrupted(err)
	}

	best := outcome.Best.Config
	fmt.Printf("\nBest configuration: batch size %d with %d workers\n", best.BatchSize, best.Workers)
	return nil
}

// runTrials benchmarks every built-in configuration over a sample of
// the candidate set, printing one table row per finished trial.
func runTrials(ctx context.Context, cfg *types.Config, checker domain.Checker, candidates []string) (*benchmark.Outcome, error) {
	sample := benchmark.Sample(candidates, cfg.Benchmark.SampleSize)

	fmt.Printf("Benchmarking %d configurations over %d candidates\n\n", len(benchmark.Strategies), len(sample))
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-12s %-10s %-12s %-14s %s", "BATCH SIZE", "WORKERS", "ELAPSED", "RATE", "FOUND")))

	outcome, err := benchmark.Run(ctx, checker, sample, func(trial types.TrialResult) {
		fmt.Printf("%-12d %-10d %-12s %-14s %d\n",
			trial.Config.BatchSize,
			trial.Config.Workers,
			trial.Elapsed.Round(time.Millisecond),
			fmt.Sprintf("%.1f/s", trial.Rate),
			trial.Found)
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}
