package domain

import (
	"context"
	"fmt"
	"time"

	"domain-finder/internal/config"
	"domain-finder/internal/types"
)

// Checker decides whether a single domain can still be registered.
// The error reports why a probe failed; callers fold any error into an
// unavailable verdict, so implementations never retry.
type Checker interface {
	Check(ctx context.Context, domain string) (bool, error)
}

// NewChecker builds the prober selected by the configuration.
func NewChecker(cfg *types.Config) (Checker, error) {
	switch cfg.Scanner.Method {
	case config.MethodRDAP:
		return NewRDAPChecker(cfg.Scanner.RDAPBaseURL, ClientConfig{
			Timeout:   time.Duration(cfg.Scanner.Timeout) * time.Second,
			Proxy:     cfg.Scanner.Proxy,
			VerifySSL: true,
		})
	case config.MethodWHOIS:
		return NewWhoisChecker(time.Duration(cfg.Scanner.Timeout) * time.Second), nil
	case config.MethodDNS:
		return NewDNSChecker(), nil
	default:
		return nil, types.NewConfigurationError(fmt.Sprintf("unknown probe method %q", cfg.Scanner.Method), nil)
	}
}
