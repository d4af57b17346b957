package domain

import (
	"context"
	"strings"
	"time"

	"github.com/likexian/whois"

	"domain-finder/internal/types"
)

// WHOIS indicators for domain availability detection
var availableIndicators = []string{
	"no match for", "not found", "no data found", "no entries found",
	"domain not found", "no object found", "no matching record",
	"status: free", "status: available", "available for registration",
	"this domain is available", "domain is available", "domain available",
}

// WhoisChecker probes registry WHOIS servers. The response text is
// scanned for no-match indicators only; anything else, including an
// unreadable response, counts as taken.
type WhoisChecker struct {
	client *whois.Client
}

// NewWhoisChecker builds a WHOIS prober with the given query timeout.
func NewWhoisChecker(timeout time.Duration) *WhoisChecker {
	client := whois.NewClient()
	client.SetTimeout(timeout)
	return &WhoisChecker{client: client}
}

// Check performs one WHOIS lookup for the domain.
func (c *WhoisChecker) Check(ctx context.Context, domain string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	result, err := c.client.Whois(domain)
	if err != nil {
		return false, types.NewNetworkError("whois lookup failed", err)
	}

	return parseWhoisAvailability(result), nil
}

// parseWhoisAvailability maps a raw WHOIS response to the binary
// availability signal. A "not available" phrasing would otherwise hit
// the "available for registration" indicator, so negations win.
func parseWhoisAvailability(response string) bool {
	result := strings.ToLower(response)
	if strings.Contains(result, "not available") {
		return false
	}
	for _, indicator := range availableIndicators {
		if strings.Contains(result, indicator) {
			return true
		}
	}
	return false
}
