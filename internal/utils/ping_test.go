package utils

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialAddress(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"http://authz.local", "authz.local:80"},
		{"https://authz.local", "authz.local:443"},
		{"postgres://db", "db:5432"},
		{"mysql://db", "db:3306"},
		{"sqlserver://db", "db:1433"},
		{"gopher://db", "db:80"},
		{"http://authz.local:8080", "authz.local:8080"},
	}
	for _, tt := range tests {
		got, err := DialAddress(tt.url)
		require.NoError(t, err, tt.url)
		assert.Equal(t, tt.want, got)
	}

	_, err := DialAddress("http://")
	assert.Error(t, err)
	_, err = DialAddress("://bad")
	assert.Error(t, err)
}

func TestPingService(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	assert.NoError(t, PingService(context.Background(), "http://"+ln.Addr().String(), time.Second))
}

func TestPingServiceUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	assert.Error(t, PingService(context.Background(), "http://"+addr, 200*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, PingService(ctx, "http://"+addr, time.Second))
}
