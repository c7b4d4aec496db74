// ABOUTME: Tests for listener selection and the tailscale config helpers
// ABOUTME: Exercises state dir and auth key resolution without joining a tailnet

package gateway

import (
	"bytes"
	"context"
	"log/slog"
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tailscale.com/ipn/ipnstate"

	"github.com/2389/people-gateway/internal/config"
)

// debugBufferLogger returns a logger that writes text records into a buffer.
func debugBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestResolveTailscaleStateDir(t *testing.T) {
	t.Run("configured dir is used as is", func(t *testing.T) {
		dir, err := resolveTailscaleStateDir("/var/lib/people/ts")
		require.NoError(t, err)
		assert.Equal(t, "/var/lib/people/ts", dir)
	})

	t.Run("defaults under home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		dir, err := resolveTailscaleStateDir("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "people-gateway", "tailscale"), dir)
	})

	t.Run("no home directory", func(t *testing.T) {
		t.Setenv("HOME", "")

		_, err := resolveTailscaleStateDir("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tailscale.state_dir")
	})
}

func TestResolveTailscaleAuthKey(t *testing.T) {
	t.Run("config wins over environment", func(t *testing.T) {
		t.Setenv("TS_AUTHKEY", "tskey-env")

		key, err := resolveTailscaleAuthKey("tskey-config")
		require.NoError(t, err)
		assert.Equal(t, "tskey-config", key)
	})

	t.Run("falls back to TS_AUTHKEY", func(t *testing.T) {
		t.Setenv("TS_AUTHKEY", "tskey-env")

		key, err := resolveTailscaleAuthKey("")
		require.NoError(t, err)
		assert.Equal(t, "tskey-env", key)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Setenv("TS_AUTHKEY", "")

		_, err := resolveTailscaleAuthKey("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TS_AUTHKEY")
	})
}

func TestSetupListeners_TCP(t *testing.T) {
	cfg := testConfig(t)
	gw, err := New(cfg, testLogger())
	require.NoError(t, err)
	defer gw.Shutdown(context.Background())

	grpcLn, httpLn, err := gw.setupListeners(context.Background())
	require.NoError(t, err)
	defer grpcLn.Close()
	defer httpLn.Close()

	assert.Equal(t, cfg.Server.GRPCAddr, grpcLn.Addr().String())
	assert.Equal(t, cfg.Server.HTTPAddr, httpLn.Addr().String())
	assert.Nil(t, gw.tsnetServer)
}

func TestSetupListeners_TCPAddressInUse(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.HTTPAddr = cfg.Server.GRPCAddr
	gw, err := New(cfg, testLogger())
	require.NoError(t, err)
	defer gw.Shutdown(context.Background())

	_, _, err = gw.setupListeners(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on HTTP address")
}

func TestSetupListeners_TailscaleRequiresAuthKey(t *testing.T) {
	t.Setenv("TS_AUTHKEY", "")
	stateDir := filepath.Join(t.TempDir(), "ts-state")

	cfg := testConfig(t)
	cfg.Tailscale = config.TailscaleConfig{
		Enabled:  true,
		Hostname: "people-test",
		StateDir: stateDir,
	}
	logger, logs := debugBufferLogger()
	gw, err := New(cfg, logger)
	require.NoError(t, err)
	defer gw.Shutdown(context.Background())

	_, _, err = gw.setupListeners(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tailscale auth key required")

	// The tailnet branch ran: the state dir exists, the TCP addresses were
	// reported as ignored, and no tsnet node was created.
	info, statErr := os.Stat(stateDir)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
	assert.Contains(t, logs.String(), "ignored when tailscale is enabled")
	assert.Nil(t, gw.tsnetServer)
}

func TestLogTailscaleStatus(t *testing.T) {
	t.Run("reports address and dns name", func(t *testing.T) {
		logger, logs := debugBufferLogger()
		gw := &Gateway{logger: logger}

		gw.logTailscaleStatus("people", &ipnstate.Status{
			TailscaleIPs: []netip.Addr{netip.MustParseAddr("100.64.0.7")},
			Self:         &ipnstate.PeerStatus{DNSName: "people.tail1234.ts.net."},
		})

		out := logs.String()
		assert.Contains(t, out, "tailscale_ip=100.64.0.7")
		assert.Contains(t, out, "dns_name=people.tail1234.ts.net.")
		assert.NotContains(t, out, "no IP addresses")
	})

	t.Run("warns without addresses", func(t *testing.T) {
		logger, logs := debugBufferLogger()
		gw := &Gateway{logger: logger}

		gw.logTailscaleStatus("people", &ipnstate.Status{})

		assert.Contains(t, logs.String(), "tailscale node has no IP addresses assigned")
	})
}
