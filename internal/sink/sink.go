// Package sink persists confirmed-available domains to disk.
package sink

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"domain-finder/internal/types"
)

// DefaultTemplate names the output file after the run parameters,
// e.g. available_domains_3_com_net.txt for length 3 over .com/.net.
const DefaultTemplate = "available_domains_{length}_{tlds}.txt"

// Filename renders template with the candidate length and the TLD
// set. TLDs are joined by underscores with their dots stripped.
func Filename(template string, length int, tlds []string) string {
	parts := make([]string, 0, len(tlds))
	for _, tld := range tlds {
		part := strings.ReplaceAll(tld, ".", "")
		if part != "" {
			parts = append(parts, part)
		}
	}

	name := strings.ReplaceAll(template, "{length}", strconv.Itoa(length))
	return strings.ReplaceAll(name, "{tlds}", strings.Join(parts, "_"))
}

// Save writes domains to filename under dir, one per line in
// lexicographic order, and returns the full path. The input slice is
// not modified.
func Save(dir, filename string, domains []string) (string, error) {
	sorted := append([]string(nil), domains...)
	sort.Strings(sorted)

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", types.NewFileSystemError("failed to create output directory", err)
		}
	}

	var buf strings.Builder
	for _, domain := range sorted {
		buf.WriteString(domain)
		buf.WriteByte('\n')
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(buf.String()), 0o644); err != nil {
		return "", types.NewFileSystemError("failed to write results file", err)
	}

	log.Info().Str("file", path).Int("count", len(sorted)).Msg("results saved")
	return path, nil
}
