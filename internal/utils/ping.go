package utils

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"
)

const authorizerTimeout = 1500 * time.Millisecond

var schemePorts = map[string]string{
	"http":       "80",
	"https":      "443",
	"postgres":   "5432",
	"postgresql": "5432",
	"mysql":      "3306",
	"sqlserver":  "1433",
}

// DialAddress resolves a service URL to host:port, filling in the scheme's port
func DialAddress(serviceURL string) (string, error) {
	u, err := url.Parse(serviceURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("invalid URL %q: missing host", serviceURL)
	}

	port := u.Port()
	if port == "" {
		var ok bool
		if port, ok = schemePorts[u.Scheme]; !ok {
			port = "80"
		}
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}

// PingService opens and closes a TCP connection to the service
func PingService(ctx context.Context, serviceURL string, timeout time.Duration) error {
	address, err := DialAddress(serviceURL)
	if err != nil {
		return err
	}

	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	return conn.Close()
}

// PingAuthorizer checks if the Authorizer service is reachable
func PingAuthorizer(ctx context.Context, authzURL string) error {
	return PingService(ctx, authzURL, authorizerTimeout)
}
