package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"domain-finder/internal/types"
)

// Probe method names accepted in [scanner] method.
const (
	MethodRDAP  = "rdap"
	MethodWHOIS = "whois"
	MethodDNS   = "dns"
)

// Strategy names accepted in [scanner] strategy and --strategy.
const (
	StrategyFast     = "fast"
	StrategyBalanced = "balanced"
	StrategySteady   = "steady"
	StrategyCustom   = "custom"
	StrategyAuto     = "auto"
)

const (
	DefaultRDAPBaseURL    = "https://rdap.org"
	DefaultTimeoutSeconds = 2
	DefaultReportInterval = 500
	DefaultSampleSize     = 1000
	DefaultAvailableFile  = "available_domains_{length}_{tlds}.txt"
)

// Environment variables recognized by LoadEnv. A .env file in the
// working directory is read first when present.
const (
	EnvRDAPBaseURL = "DOMAIN_FINDER_RDAP_URL"
	EnvProxy       = "DOMAIN_FINDER_PROXY"
)

// Default returns a configuration with every default applied.
func Default() *types.Config {
	config := &types.Config{}
	applyDefaults(config)
	return config
}

// LoadConfig loads configuration from a TOML file
func LoadConfig(configPath string) (*types.Config, error) {
	config := &types.Config{}
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, types.NewConfigurationError(fmt.Sprintf("cannot load config file %s", configPath), err)
	}

	applyDefaults(config)
	return config, nil
}

// applyDefaults fills every field not set by the file or the caller.
func applyDefaults(config *types.Config) {
	if config.Domain.Length == 0 {
		config.Domain.Length = 3
	}

	if len(config.Domain.TLDs) == 0 {
		config.Domain.TLDs = []string{".com"}
	}

	if config.Scanner.BatchSize == 0 {
		config.Scanner.BatchSize = 10
	}

	if config.Scanner.Workers == 0 {
		config.Scanner.Workers = 30
	}

	if config.Scanner.Timeout == 0 {
		config.Scanner.Timeout = DefaultTimeoutSeconds
	}

	if config.Scanner.Method == "" {
		config.Scanner.Method = MethodRDAP
	}

	if config.Scanner.RDAPBaseURL == "" {
		config.Scanner.RDAPBaseURL = DefaultRDAPBaseURL
	}

	if config.Scanner.ReportInterval == 0 {
		config.Scanner.ReportInterval = DefaultReportInterval
	}

	if config.Benchmark.SampleSize == 0 {
		config.Benchmark.SampleSize = DefaultSampleSize
	}

	if config.Output.AvailableFile == "" {
		config.Output.AvailableFile = DefaultAvailableFile
	}
}

// LoadEnv overlays environment settings onto the configuration. A .env
// file is honored when present; missing files are not an error.
func LoadEnv(config *types.Config) {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded settings from .env")
	}

	if v := os.Getenv(EnvRDAPBaseURL); v != "" {
		config.Scanner.RDAPBaseURL = strings.TrimSuffix(v, "/")
	}

	if v := os.Getenv(EnvProxy); v != "" {
		config.Scanner.Proxy = v
	}
}

// NormalizeTLDs lowercases every suffix and ensures the leading dot.
func NormalizeTLDs(tlds []string) []string {
	normalized := make([]string, 0, len(tlds))
	for _, s := range tlds {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if !strings.HasPrefix(s, ".") {
			s = "." + s
		}
		normalized = append(normalized, s)
	}
	return normalized
}

// Validate rejects configurations that cannot produce a correct run.
// Values are never clamped; a bad value is an error before any network
// work starts.
func Validate(config *types.Config) error {
	if config.Domain.Length < 1 {
		return types.NewValidationError(fmt.Sprintf("domain length must be at least 1, got %d", config.Domain.Length), nil)
	}

	if len(config.Domain.TLDs) == 0 {
		return types.NewValidationError("at least one TLD suffix is required", nil)
	}

	if config.Scanner.BatchSize < 1 {
		return types.NewValidationError(fmt.Sprintf("batch size must be at least 1, got %d", config.Scanner.BatchSize), nil)
	}

	if config.Scanner.Workers < 1 {
		return types.NewValidationError(fmt.Sprintf("worker count must be at least 1, got %d", config.Scanner.Workers), nil)
	}

	if config.Scanner.Timeout < 1 {
		return types.NewValidationError(fmt.Sprintf("probe timeout must be at least 1 second, got %d", config.Scanner.Timeout), nil)
	}

	if config.Scanner.ReportInterval < 1 {
		return types.NewValidationError(fmt.Sprintf("report interval must be at least 1, got %d", config.Scanner.ReportInterval), nil)
	}

	if config.Benchmark.SampleSize < 1 {
		return types.NewValidationError(fmt.Sprintf("benchmark sample size must be at least 1, got %d", config.Benchmark.SampleSize), nil)
	}

	switch config.Scanner.Method {
	case MethodRDAP, MethodWHOIS, MethodDNS:
	default:
		return types.NewConfigurationError(fmt.Sprintf("unknown probe method %q", config.Scanner.Method), nil)
	}

	switch config.Scanner.Strategy {
	case "", StrategyFast, StrategyBalanced, StrategySteady, StrategyCustom, StrategyAuto:
	default:
		return types.NewConfigurationError(fmt.Sprintf("unknown strategy %q", config.Scanner.Strategy), nil)
	}

	if config.Domain.Length > 5 {
		log.Warn().Int("length", config.Domain.Length).Msg("length above 5 produces a very large candidate set; consider the shard-config utility")
	}

	if config.Scanner.Workers > 500 {
		log.Warn().Int("workers", config.Scanner.Workers).Msg("very high worker count may exhaust local sockets")
	}

	return nil
}
