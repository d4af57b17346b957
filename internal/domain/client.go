package domain

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/proxy"
)

const defaultUserAgent = "domain-finder/1.0"

// ClientConfig controls the HTTP client used by the RDAP prober.
type ClientConfig struct {
	Timeout   time.Duration
	Proxy     string
	UserAgent string
	VerifySSL bool
}

// HTTPClient wraps http.Client with the transport settings the prober
// needs. The client timeout bounds every probe.
type HTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewHTTPClient builds a client for the given configuration. Proxy
// URLs may use the socks5, http, or https schemes.
func NewHTTPClient(config ClientConfig) (*HTTPClient, error) {
	transport, err := createTransport(config.Proxy, config.VerifySSL)
	if err != nil {
		return nil, err
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &HTTPClient{
		client: &http.Client{
			Transport: transport,
			Timeout:   config.Timeout,
		},
		userAgent: userAgent,
	}, nil
}

func createTransport(proxyStr string, verifySSL bool) (*http.Transport, error) {
	if proxyStr == "" {
		return &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: !verifySSL,
			},
		}, nil
	}

	proxyURL, err := url.Parse(proxyStr)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy URL: %w", err)
	}

	if proxyURL.Scheme == "socks5" {
		dialer, err := proxy.SOCKS5("tcp", proxyURL.Host, nil, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}

		return &http.Transport{
			Dial: dialer.Dial,
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: !verifySSL,
			},
		}, nil
	}

	return &http.Transport{
		Proxy: http.ProxyURL(proxyURL),
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: !verifySSL,
		},
	}, nil
}

// Get issues a GET request honoring the given context.
func (c *HTTPClient) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)

	return c.client.Do(req)
}
