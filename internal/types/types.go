package types

import "time"

// Verdict is the availability outcome of a single domain probe.
// Available means the registry lookup came back "not found"; probe
// failures are folded into Available=false before a Verdict is built.
type Verdict struct {
	Domain    string
	Available bool
}

// RunConfig holds the two tunables governing one engine run.
type RunConfig struct {
	BatchSize int
	Workers   int
}

// Progress is one telemetry snapshot emitted while a run is in flight.
type Progress struct {
	Processed int
	Total     int
	Percent   float64
	Rate      float64
	ETA       time.Duration
	Elapsed   time.Duration
}

// TrialResult records the measured outcome of one benchmark trial.
type TrialResult struct {
	Config  RunConfig
	Elapsed time.Duration
	Rate    float64
	Found   int
}

// Config represents the application configuration
type Config struct {
	Domain struct {
		Length        int      `toml:"length"`
		TLDs          []string `toml:"tlds"`
		RegexFilter   string   `toml:"regex_filter"`
		ExcludeFilter string   `toml:"exclude_filter"`
	} `toml:"domain"`

	Scanner struct {
		BatchSize      int    `toml:"batch_size"`
		Workers        int    `toml:"workers"`
		Timeout        int    `toml:"timeout"`
		Method         string `toml:"method"`
		RDAPBaseURL    string `toml:"rdap_base_url"`
		Proxy          string `toml:"proxy"`
		ReportInterval int    `toml:"report_interval"`
		Strategy       string `toml:"strategy"`
	} `toml:"scanner"`

	Benchmark struct {
		SampleSize int `toml:"sample_size"`
	} `toml:"benchmark"`

	Output struct {
		AvailableFile string `toml:"available_file"`
		OutputDir     string `toml:"output_dir"`
	} `toml:"output"`
}
