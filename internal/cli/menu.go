package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"domain-finder/internal/config"
	"domain-finder/internal/tld"
	"domain-finder/internal/types"
)

// RunMenu fills the run settings from interactive prompts. Empty
// input keeps the current value.
func RunMenu(cfg *types.Config, in io.Reader, out io.Writer) error {
	reader := bufio.NewScanner(in)

	length, err := promptInt(reader, out, "Candidate length", cfg.Domain.Length, 2, 6)
	if err != nil {
		return err
	}
	cfg.Domain.Length = length

	tlds, err := promptTLDs(reader, out, cfg.Domain.TLDs)
	if err != nil {
		return err
	}
	cfg.Domain.TLDs = tlds

	strategy, err := promptStrategy(reader, out, cfg.Scanner.Strategy)
	if err != nil {
		return err
	}
	cfg.Scanner.Strategy = strategy

	if strategy == config.StrategyCustom {
		batchSize, err := promptInt(reader, out, "Batch size", cfg.Scanner.BatchSize, 1, 10000)
		if err != nil {
			return err
		}
		cfg.Scanner.BatchSize = batchSize

		workers, err := promptInt(reader, out, "Workers", cfg.Scanner.Workers, 1, 10000)
		if err != nil {
			return err
		}
		cfg.Scanner.Workers = workers
	}

	fmt.Fprintln(out)
	return nil
}

func readLine(reader *bufio.Scanner) (string, error) {
	if !reader.Scan() {
		if err := reader.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(reader.Text()), nil
}

// promptInt asks until it gets an integer inside [min, max] or an
// empty line, which keeps fallback.
func promptInt(reader *bufio.Scanner, out io.Writer, label string, fallback, min, max int) (int, error) {
	for {
		fmt.Fprintf(out, "%s [%d]: ", label, fallback)

		input, err := readLine(reader)
		if err != nil {
			return 0, err
		}
		if input == "" {
			return fallback, nil
		}

		value, err := strconv.Atoi(input)
		if err != nil || value < min || value > max {
			fmt.Fprintf(out, "Please enter a number between %d and %d\n", min, max)
			continue
		}
		return value, nil
	}
}

// promptTLDs shows the catalog as one numbered list and reads a
// comma-separated selection. 0 selects every TLD.
func promptTLDs(reader *bufio.Scanner, out io.Writer, fallback []string) ([]string, error) {
	all := tld.All()

	fmt.Fprintln(out, "\nAvailable TLDs:")
	index := 1
	for _, category := range tld.Categories() {
		fmt.Fprintf(out, "\n%s\n  ", headerStyle.Render(category.Name))
		for _, suffix := range category.TLDs {
			fmt.Fprintf(out, "%2d) %-8s", index, suffix)
			index++
		}
		fmt.Fprintln(out)
	}

	for {
		fmt.Fprintf(out, "\nSelect TLDs (e.g. 1,3 or 1-5, a literal .xyz, 0 for all) [%s]: ", strings.Join(fallback, ","))

		input, err := readLine(reader)
		if err != nil {
			return nil, err
		}
		if input == "" {
			return fallback, nil
		}

		selected, err := parseTLDSelection(input, all)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		return selected, nil
	}
}

// parseTLDSelection resolves a selection like "1,3,5" or "1-5,8"
// against the numbered catalog. Tokens starting with a dot are taken
// as literal TLDs, so suffixes outside the catalog stay reachable.
func parseTLDSelection(input string, all []string) ([]string, error) {
	if input == "0" || strings.EqualFold(input, "all") {
		return append([]string(nil), all...), nil
	}

	var selected []string
	seenIndex := make(map[int]bool)
	pick := func(n int) error {
		if n < 1 || n > len(all) {
			return fmt.Errorf("%d is out of range (1-%d)", n, len(all))
		}
		if !seenIndex[n] {
			seenIndex[n] = true
			selected = append(selected, all[n-1])
		}
		return nil
	}

	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
			continue

		case strings.HasPrefix(part, "."):
			selected = append(selected, strings.ToLower(part))

		case strings.Contains(part, "-"):
			bounds := strings.SplitN(part, "-", 2)
			lo, loErr := strconv.Atoi(strings.TrimSpace(bounds[0]))
			hi, hiErr := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if loErr != nil || hiErr != nil || lo > hi {
				return nil, fmt.Errorf("bad range: %q", part)
			}
			for n := lo; n <= hi; n++ {
				if err := pick(n); err != nil {
					return nil, err
				}
			}

		default:
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("not a number: %q", part)
			}
			if err := pick(n); err != nil {
				return nil, err
			}
		}
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no TLDs selected")
	}
	return selected, nil
}

func promptStrategy(reader *bufio.Scanner, out io.Writer, fallback string) (string, error) {
	if fallback == "" {
		fallback = config.StrategyCustom
	}

	for {
		fmt.Fprintf(out, "Strategy (fast, balanced, steady, custom, auto) [%s]: ", fallback)

		input, err := readLine(reader)
		if err != nil {
			return "", err
		}
		if input == "" {
			return fallback, nil
		}

		switch strings.ToLower(input) {
		case config.StrategyFast, config.StrategyBalanced, config.StrategySteady, config.StrategyCustom, config.StrategyAuto:
			return strings.ToLower(input), nil
		}
		fmt.Fprintln(out, "Unknown strategy, try again")
	}
}
