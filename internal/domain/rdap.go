package domain

import (
	"context"
	"io"
	"net/http"
	"strings"

	"domain-finder/internal/types"
)

// RDAPChecker probes the RDAP lookup service over HTTP. A 404 means
// the registry has no record of the domain, so it is available; every
// other status means taken. Only the status code is inspected.
type RDAPChecker struct {
	client  *HTTPClient
	baseURL string
}

// NewRDAPChecker builds an RDAP prober against the given base URL.
func NewRDAPChecker(baseURL string, clientConfig ClientConfig) (*RDAPChecker, error) {
	client, err := NewHTTPClient(clientConfig)
	if err != nil {
		return nil, types.NewConfigurationError("cannot build RDAP client", err)
	}

	return &RDAPChecker{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Check performs one RDAP lookup for the domain.
func (c *RDAPChecker) Check(ctx context.Context, domain string) (bool, error) {
	resp, err := c.client.Get(ctx, c.baseURL+"/domain/"+domain)
	if err != nil {
		return false, types.NewNetworkError("rdap lookup failed", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	return resp.StatusCode == http.StatusNotFound, nil
}
