// Package cli wires configuration, candidate generation, the scan
// engine and the result sink into the domain-finder command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"domain-finder/internal/benchmark"
	"domain-finder/internal/config"
	"domain-finder/internal/domain"
	"domain-finder/internal/generator"
	"domain-finder/internal/scanner"
	"domain-finder/internal/sink"
	"domain-finder/internal/types"
)

const Version = "1.0.0"

// defaultConfigFile is picked up from the working directory when no
// --config flag is given.
const defaultConfigFile = "config.toml"

type rootFlags struct {
	configPath    string
	length        int
	tlds          []string
	batchSize     int
	workers       int
	timeout       int
	method        string
	rdapURL       string
	proxy         string
	regexFilter   string
	excludeFilter string
	strategy      string
	sampleSize    int
	interval      int
	outputDir     string
	outputFile    string
	interactive   bool
	noProgressbar bool
	verbose       bool
}

var flags rootFlags

var rootCmd = &cobra.Command{
	Use:   "domain-finder",
	Short: "Concurrent availability scanner for short domain names",
	Long: `domain-finder enumerates every letter combination of a given length
across one or more TLDs and probes each candidate against the registry.

Features:
  - RDAP, WHOIS and DNS probe methods
  - Batched worker pool with configurable concurrency
  - Built-in throughput benchmark that picks the fastest configuration
  - Regex include/exclude filters for the candidate set
  - SOCKS5 and HTTP proxy support`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScan,
}

func init() {
	cobra.OnInitialize(setupLogging)

	persistent := rootCmd.PersistentFlags()
	persistent.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	persistent.StringVarP(&flags.configPath, "config", "c", "", "Path to TOML config file (default: config.toml when present)")
	persistent.IntVarP(&flags.length, "length", "l", 3, "Candidate name length")
	persistent.StringSliceVarP(&flags.tlds, "tlds", "t", []string{".com"}, "TLD suffixes to scan")
	persistent.IntVarP(&flags.batchSize, "batch-size", "b", 10, "Candidates per batch")
	persistent.IntVarP(&flags.workers, "workers", "w", 30, "Number of concurrent workers")
	persistent.IntVar(&flags.timeout, "timeout", config.DefaultTimeoutSeconds, "Probe timeout in seconds")
	persistent.StringVarP(&flags.method, "method", "m", config.MethodRDAP, "Probe method (rdap, whois, dns)")
	persistent.StringVar(&flags.rdapURL, "rdap-url", config.DefaultRDAPBaseURL, "RDAP service base URL")
	persistent.StringVarP(&flags.proxy, "proxy", "p", "", "Proxy server (socks5://host:port, http://host:port)")
	persistent.StringVarP(&flags.regexFilter, "regex", "r", "", "Keep only candidates matching this regex")
	persistent.StringVarP(&flags.excludeFilter, "exclude", "e", "", "Drop candidates matching this regex")
	persistent.StringVarP(&flags.strategy, "strategy", "s", "", "Run strategy (fast, balanced, steady, custom, auto)")
	persistent.IntVar(&flags.sampleSize, "sample", config.DefaultSampleSize, "Benchmark sample size for strategy auto")
	persistent.IntVar(&flags.interval, "interval", config.DefaultReportInterval, "Progress report interval in processed candidates")
	persistent.StringVarP(&flags.outputDir, "output-dir", "o", "", "Directory for result files")
	persistent.StringVar(&flags.outputFile, "output", "", "Result file name template")

	rootCmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "Pick length, TLDs and strategy interactively")
	rootCmd.Flags().BoolVarP(&flags.noProgressbar, "no-progressbar", "P", false, "Disable the progress bar UI")
}

func setupLogging() {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flags.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// Execute runs the command tree and terminates the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}

// loadConfiguration builds the effective configuration: file, then
// environment, then explicitly set flags.
func loadConfiguration(cmd *cobra.Command) (*types.Config, error) {
	var cfg *types.Config
	var err error

	switch {
	case flags.configPath != "":
		cfg, err = config.LoadConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("file", flags.configPath).Msg("configuration loaded")
	default:
		if _, statErr := os.Stat(defaultConfigFile); statErr == nil {
			cfg, err = config.LoadConfig(defaultConfigFile)
			if err != nil {
				return nil, err
			}
			log.Debug().Str("file", defaultConfigFile).Msg("configuration loaded")
		} else {
			cfg = config.Default()
		}
	}

	config.LoadEnv(cfg)
	applyFlagOverrides(cmd, cfg)

	return cfg, nil
}

// applyFlagOverrides copies every flag the user set on the command
// line over the file and environment values.
func applyFlagOverrides(cmd *cobra.Command, cfg *types.Config) {
	set := cmd.Flags().Changed

	if set("length") {
		cfg.Domain.Length = flags.length
	}
	if set("tlds") {
		cfg.Domain.TLDs = flags.tlds
	}
	if set("regex") {
		cfg.Domain.RegexFilter = flags.regexFilter
	}
	if set("exclude") {
		cfg.Domain.ExcludeFilter = flags.excludeFilter
	}
	if set("batch-size") {
		cfg.Scanner.BatchSize = flags.batchSize
	}
	if set("workers") {
		cfg.Scanner.Workers = flags.workers
	}
	if set("timeout") {
		cfg.Scanner.Timeout = flags.timeout
	}
	if set("method") {
		cfg.Scanner.Method = flags.method
	}
	if set("rdap-url") {
		cfg.Scanner.RDAPBaseURL = strings.TrimSuffix(flags.rdapURL, "/")
	}
	if set("proxy") {
		cfg.Scanner.Proxy = flags.proxy
	}
	if set("strategy") {
		cfg.Scanner.Strategy = flags.strategy
	}
	if set("sample") {
		cfg.Benchmark.SampleSize = flags.sampleSize
	}
	if set("interval") {
		cfg.Scanner.ReportInterval = flags.interval
	}
	if set("output-dir") {
		cfg.Output.OutputDir = flags.outputDir
	}
	if set("output") {
		cfg.Output.AvailableFile = flags.outputFile
	}
}

// notifyInterrupt cancels the context on SIGINT or SIGTERM and prints
// a notice. The returned stop function releases the signal handler.
func notifyInterrupt(cancel context.CancelFunc) func() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if _, ok := <-sigChan; !ok {
			return
		}
		fmt.Println(warningStyle.Render("\nInterrupt received, stopping..."))
		cancel()
	}()

	return func() {
		signal.Stop(sigChan)
		close(sigChan)
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	showBanner()

	cfg, err := loadConfiguration(cmd)
	if err != nil {
		return err
	}

	if flags.interactive {
		if err := RunMenu(cfg, os.Stdin, os.Stdout); err != nil {
			return err
		}
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

	fmt.Printf("Checking %d candidates of length %d across %d TLD(s) using method %s\n",
		len(candidates), cfg.Domain.Length, len(cfg.Domain.TLDs), cfg.Scanner.Method)
	if cfg.Domain.RegexFilter != "" {
		fmt.Printf("Regex filter: %s\n", cfg.Domain.RegexFilter)
	}
	if cfg.Domain.ExcludeFilter != "" {
		fmt.Printf("Exclude filter: %s\n", cfg.Domain.ExcludeFilter)
	}

	checker, err := domain.NewChecker(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop := notifyInterrupt(cancel)
	defer stop()

	runCfg, err := resolveStrategy(ctx, cfg, checker, candidates)
	if err != nil {
		return finishInterrupted(err)
	}

	fmt.Printf("Scanning with batch size %d and %d workers\n\n", runCfg.BatchSize, runCfg.Workers)

	var report *scanner.Report
	if flags.noProgressbar {
		report, err = runPlain(ctx, os.Stdout, checker, runCfg, cfg.Scanner.ReportInterval, candidates)
	} else {
		report, err = runWithProgress(ctx, checker, runCfg, cfg.Scanner.ReportInterval, candidates)
	}
	if err != nil {
		return finishInterrupted(err)
	}

	filename := sink.Filename(cfg.Output.AvailableFile, cfg.Domain.Length, cfg.Domain.TLDs)
	path, err := sink.Save(cfg.Output.OutputDir, filename, report.Available)
	if err != nil {
		return err
	}

	printSummary(path, report)
	return nil
}

// finishInterrupted turns a cancellation into a clean exit with a
// notice; no result file is written for an interrupted run.
func finishInterrupted(err error) error {
	if errors.Is(err, context.Canceled) {
		fmt.Println(warningStyle.Render("Scan interrupted, discarding unconfirmed results. No file was written."))
		return nil
	}
	return err
}

// resolveStrategy maps the configured strategy onto a concrete run
// configuration, benchmarking first when set to auto.
func resolveStrategy(ctx context.Context, cfg *types.Config, checker domain.Checker, candidates []string) (types.RunConfig, error) {
	custom := types.RunConfig{BatchSize: cfg.Scanner.BatchSize, Workers: cfg.Scanner.Workers}

	switch cfg.Scanner.Strategy {
	case "", config.StrategyCustom:
		return custom, nil
	case config.StrategyFast:
		return benchmark.PresetFast, nil
	case config.StrategyBalanced:
		return benchmark.PresetBalanced, nil
	case config.StrategySteady:
		return benchmark.PresetSteady, nil
	case config.StrategyAuto:
		outcome, err := runTrials(ctx, cfg, checker, candidates)
		if err != nil {
			return types.RunConfig{}, err
		}
		return outcome.Best.Config, nil
	default:
		return types.RunConfig{}, types.NewConfigurationError(fmt.Sprintf("unknown strategy %q", cfg.Scanner.Strategy), nil)
	}
}

func printSummary(path string, report *scanner.Report) {
	fmt.Printf("\n\nResults saved to:\n")
	fmt.Printf("- Available domains: %s\n", path)

	fmt.Printf("\nSummary:\n")
	fmt.Printf("- Total domains checked: %d\n", report.Processed)
	fmt.Printf("- Available domains: %d\n", len(report.Available))
	fmt.Printf("- Elapsed: %s\n", report.Elapsed.Round(time.Millisecond))
	fmt.Printf("- Rate: %.1f domains/s\n", report.Rate)
	if report.Processed > 0 {
		fmt.Printf("- Efficiency: %.3f%% available\n", float64(len(report.Available))/float64(report.Processed)*100)
	}

	if len(report.Available) == 0 {
		fmt.Println("\nNo available domains found.")
		return
	}

	sorted := append([]string(nil), report.Available...)
	sort.Strings(sorted)
	fmt.Printf("\nAvailable domains (%d):\n", len(sorted))
	for _, name := range sorted {
		fmt.Printf("  %s %s\n", successStyle.Render("•"), name)
	}
}
