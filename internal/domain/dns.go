package domain

import (
	"context"
	"errors"
	"net"

	"domain-finder/internal/types"
)

// DNSChecker probes the DNS for delegation. NXDOMAIN on the NS lookup
// means nothing is delegated, which this prober reads as available.
// Cheap but weaker than RDAP: a registered but undelegated name looks
// available.
type DNSChecker struct {
	resolver *net.Resolver
}

// NewDNSChecker builds a DNS prober using the Go resolver.
func NewDNSChecker() *DNSChecker {
	return &DNSChecker{
		resolver: &net.Resolver{PreferGo: true},
	}
}

// Check performs one NS lookup for the domain.
func (c *DNSChecker) Check(ctx context.Context, domain string) (bool, error) {
	_, err := c.resolver.LookupNS(ctx, domain)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return true, nil
		}
		return false, types.NewNetworkError("ns lookup failed", err)
	}

	return false, nil
}
