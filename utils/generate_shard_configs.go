// Command generate_shard_configs splits a large scan into per-letter
// shards. Each shard gets its own TOML config with a regex filter
// pinning the first letter, so shards can run on separate machines
// and write into separate output directories.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"domain-finder/internal/config"
	"domain-finder/internal/types"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

func main() {
	shardStart := flag.Int("shard-start", 0, "Index of the first letter shard (0 = a)")
	shardCount := flag.Int("shard-count", 26, "Number of letter shards to generate")
	length := flag.Int("length", 4, "Candidate name length")
	tlds := flag.String("tlds", ".com", "Comma-separated TLD suffixes")
	batchSize := flag.Int("batch-size", 10, "Candidates per batch")
	workers := flag.Int("workers", 30, "Concurrent workers per shard")
	method := flag.String("method", config.MethodRDAP, "Probe method (rdap, whois, dns)")
	configDir := flag.String("config-dir", "./config", "Directory for generated shard configs")
	outputDir := flag.String("output-dir", "./results", "Base directory for shard results")
	flag.Parse()

	startIdx := *shardStart
	endIdx := *shardStart + *shardCount
	if startIdx < 0 || startIdx >= len(letters) {
		fmt.Printf("Invalid shard-start %d, must be between 0 and %d\n", startIdx, len(letters)-1)
		os.Exit(1)
	}
	if endIdx > len(letters) {
		endIdx = len(letters)
	}

	if err := os.MkdirAll(*configDir, 0o755); err != nil {
		fmt.Printf("Error creating config directory: %v\n", err)
		os.Exit(1)
	}

	suffixes := config.NormalizeTLDs(strings.Split(*tlds, ","))

	fmt.Printf("Generating shard configurations...\n")
	fmt.Printf("Shards: %d to %d\n", startIdx, endIdx-1)
	fmt.Printf("Length: %d\n", *length)
	fmt.Printf("TLDs: %s\n", strings.Join(suffixes, ", "))
	fmt.Printf("Config directory: %s\n", *configDir)
	fmt.Printf("Output directory: %s\n", *outputDir)

	generated := 0
	var index strings.Builder
	index.WriteString("# Shard configuration index\n")
	fmt.Fprintf(&index, "# Length %d over %s\n\n", *length, strings.Join(suffixes, ", "))

	for i := startIdx; i < endIdx; i++ {
		letter := string(letters[i])

		cfg := config.Default()
		cfg.Domain.Length = *length
		cfg.Domain.TLDs = suffixes
		cfg.Domain.RegexFilter = "^" + letter
		cfg.Scanner.BatchSize = *batchSize
		cfg.Scanner.Workers = *workers
		cfg.Scanner.Method = *method
		cfg.Output.OutputDir = filepath.Join(*outputDir, "shard_"+letter)
		cfg.Output.AvailableFile = fmt.Sprintf("available_domains_shard_%s_{length}_{tlds}.txt", letter)

		configPath := filepath.Join(*configDir, fmt.Sprintf("config_shard_%s.toml", letter))
		if err := writeConfig(configPath, cfg); err != nil {
			fmt.Printf("Error writing %s: %v\n", configPath, err)
			continue
		}

		if err := os.MkdirAll(cfg.Output.OutputDir, 0o755); err != nil {
			fmt.Printf("Error creating output directory %s: %v\n", cfg.Output.OutputDir, err)
			continue
		}

		fmt.Printf("Generated: %s -> %s\n", configPath, cfg.Output.OutputDir)
		fmt.Fprintf(&index, "Shard %2d: letter %q\n  Config: %s\n  Output: %s\n",
			i-startIdx+1, letter, configPath, cfg.Output.OutputDir)
		generated++
	}

	indexPath := filepath.Join(*configDir, "shard_index.txt")
	if err := os.WriteFile(indexPath, []byte(index.String()), 0o644); err != nil {
		fmt.Printf("Warning: could not write index file: %v\n", err)
	} else {
		fmt.Printf("Index file created: %s\n", indexPath)
	}

	fmt.Printf("\nDone. Generated %d shard configuration(s).\n", generated)
	fmt.Printf("Run each shard with: domain-finder --config %s\n",
		filepath.Join(*configDir, "config_shard_a.toml"))
}

func writeConfig(path string, cfg *types.Config) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(cfg)
}
