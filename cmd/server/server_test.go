package main

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/drinkchain/internal/config"
)

// loadConfig loads defaults from an empty directory with in-memory storage,
// listening on port.
func loadConfig(t *testing.T, port int) *config.Config {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvServerHost, "127.0.0.1")
	t.Setenv(config.EnvServerPort, strconv.Itoa(port))
	t.Setenv("DRINKCHAIN_STORAGE_PROVIDER", "memory")
	t.Setenv("DRINKCHAIN_SYNTHESIS_API_KEY", "")
	t.Setenv("DRINKCHAIN_TELEMETRY_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestRunServesUntilCancelled(t *testing.T) {
	cfg := loadConfig(t, freePort(t))

	srv, err := NewServer(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	base := "http://" + cfg.Server.Addr()
	require.Eventually(t, func() bool {
		res, err := http.Get(base + "/readyz")
		if err != nil {
			return false
		}
		res.Body.Close()
		return res.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	res, err := http.Get(base + "/scalar")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunFailsOnBoundPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := loadConfig(t, ln.Addr().(*net.TCPAddr).Port)

	srv, err := NewServer(cfg)
	require.NoError(t, err)

	err = srv.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}
