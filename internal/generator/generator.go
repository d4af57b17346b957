package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"domain-finder/internal/types"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// Filter restricts which generated candidates are emitted. Patterns
// match against the full candidate (name plus suffix), so anchored
// expressions like "^ab" pin the name prefix.
type Filter struct {
	include *regexp2.Regexp
	exclude *regexp2.Regexp
}

// NewFilter compiles the include and exclude patterns. Empty patterns
// are allowed and match everything / nothing respectively.
func NewFilter(include, exclude string) (*Filter, error) {
	f := &Filter{}

	if include != "" {
		re, err := compilePattern(include)
		if err != nil {
			return nil, err
		}
		f.include = re
	}

	if exclude != "" {
		re, err := compilePattern(exclude)
		if err != nil {
			return nil, err
		}
		f.exclude = re
	}

	return f, nil
}

func compilePattern(pattern string) (*regexp2.Regexp, error) {
	if err := validateRegexComplexity(pattern); err != nil {
		return nil, types.NewConfigurationError("regex pattern rejected", err)
	}

	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, types.NewConfigurationError("invalid regex pattern", err)
	}

	// Timeout protection against ReDoS attacks
	re.MatchTimeout = 100 * time.Millisecond
	return re, nil
}

// Match reports whether the candidate passes the filter. A matching
// error on either pattern drops the candidate.
func (f *Filter) Match(candidate string) bool {
	if f == nil {
		return true
	}

	if f.include != nil {
		ok, err := safeRegexMatch(f.include, candidate)
		if err != nil || !ok {
			return false
		}
	}

	if f.exclude != nil {
		ok, err := safeRegexMatch(f.exclude, candidate)
		if err != nil || ok {
			return false
		}
	}

	return true
}

// GenerateDomains returns a streaming channel of candidates for one
// suffix instead of materializing all of them at once.
func GenerateDomains(length int, suffix string, filter *Filter) <-chan string {
	domainChan := make(chan string, 1000)

	go func() {
		defer close(domainChan)
		generateCombinationsIterative(domainChan, length, suffix, filter)
	}()

	return domainChan
}

// GenerateDomainsMulti streams candidates across several suffixes,
// exhausting each suffix before starting the next so per-TLD blocks
// stay contiguous.
func GenerateDomainsMulti(length int, suffixes []string, filter *Filter) <-chan string {
	domainChan := make(chan string, 1000)

	go func() {
		defer close(domainChan)
		for _, suffix := range suffixes {
			generateCombinationsIterative(domainChan, length, suffix, filter)
		}
	}()

	return domainChan
}

// Collect drains a candidate channel into a slice.
func Collect(domainChan <-chan string) []string {
	var domains []string
	for d := range domainChan {
		domains = append(domains, d)
	}
	return domains
}

// generateCombinationsIterative uses a counter instead of recursion to
// enumerate combinations in lexicographic order.
func generateCombinationsIterative(domainChan chan<- string, length int, suffix string, filter *Filter) {
	if length <= 0 {
		return
	}

	charsetSize := len(letters)
	total := 1
	for i := 0; i < length; i++ {
		total *= charsetSize
	}

	for counter := 0; counter < total; counter++ {
		current := ""
		temp := counter

		for i := 0; i < length; i++ {
			current = string(letters[temp%charsetSize]) + current
			temp /= charsetSize
		}

		domain := current + suffix
		if filter.Match(domain) {
			domainChan <- domain
		}
	}
}

// CalculateDomainsCount returns the unfiltered candidate count for the
// given length across suffixCount TLDs.
func CalculateDomainsCount(length int, suffixCount int) int {
	if length <= 0 || suffixCount <= 0 {
		return 0
	}

	total := 1
	for i := 0; i < length; i++ {
		total *= len(letters)
	}
	return total * suffixCount
}

// validateRegexComplexity checks regex complexity to prevent potential ReDoS attacks
func validateRegexComplexity(pattern string) error {
	if len(pattern) > 200 {
		return fmt.Errorf("regex pattern too long (max 200 characters)")
	}

	dangerousPatterns := []string{
		"(.*)*",
		"(.+)+",
		"(a+)+",
		"(a*)*",
		"(.{0,})*",
		"(\\w+)*\\w*",
	}

	for _, dangerous := range dangerousPatterns {
		if strings.Contains(pattern, dangerous) {
			return fmt.Errorf("detected potentially dangerous regex pattern: %s", dangerous)
		}
	}

	nestedCount := strings.Count(pattern, "+") + strings.Count(pattern, "*")
	if nestedCount > 5 {
		return fmt.Errorf("too many quantifiers in regex pattern (max 5)")
	}

	return nil
}

// safeRegexMatch executes regex matching with timeout and error handling
func safeRegexMatch(regex *regexp2.Regexp, input string) (bool, error) {
	if regex == nil {
		return true, nil
	}

	if regex.MatchTimeout == 0 {
		regex.MatchTimeout = 100 * time.Millisecond
	}

	match, err := regex.MatchString(input)
	if err != nil {
		return false, fmt.Errorf("regex matching failed for pattern '%s' with input '%s': %w", regex.String(), input, err)
	}

	return match, nil
}
