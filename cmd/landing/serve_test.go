package main

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiflowstudio/landing/pkg/httpserver"
	"github.com/apiflowstudio/landing/pkg/logger"
)

func TestSiteURL(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"[::]:8080":      "http://localhost:8080",
		"0.0.0.0:3000":   "http://localhost:3000",
		":8080":          "http://localhost:8080",
		"127.0.0.1:8080": "http://127.0.0.1:8080",
		"[::1]:9000":     "http://[::1]:9000",
		"not-an-address": "http://not-an-address",
	}
	for addr, want := range tests {
		assert.Equal(t, want, siteURL(addr), addr)
	}
}

func TestConsoleHooks(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	started := make(chan struct{})
	opts := append(consoleHooks(&out),
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithLogger(logger.Discard()),
		httpserver.OnStart(func(string) { close(started) }),
	)
	srv := httpserver.New(opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Landing page available at http://127.0.0.1:"), lines[0])
	assert.Equal(t, "Server stopped", lines[1])
}
