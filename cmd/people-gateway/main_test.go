// ABOUTME: Tests for gateway binary helpers
// ABOUTME: Config path resolution, generated config round-trip, logging and audit output

package main

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/people-gateway/internal/config"
)

func TestGetConfigPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv("PEOPLE_CONFIG", "/etc/people/custom.yaml")
		assert.Equal(t, "/etc/people/custom.yaml", getConfigPath())
	})

	t.Run("xdg config home", func(t *testing.T) {
		t.Setenv("PEOPLE_CONFIG", "")
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		assert.Equal(t, filepath.Join("/tmp/xdg", "people", "gateway.yaml"), getConfigPath())
	})
}

func TestGetDataPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	assert.Equal(t, filepath.Join("/tmp/data", "people"), getDataPath())
}

func TestRenderConfig_LoadsBack(t *testing.T) {
	out := renderConfig(initAnswers{
		GRPCAddr:   "localhost:6000",
		HTTPAddr:   "localhost:6001",
		DBPath:     ":memory:",
		DeleteMode: "index",
		Seed:       true,
		SeedMin:    "5",
		SeedMax:    "9",
		LogLevel:   "debug",
		LogFormat:  "json",
	})

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "localhost:6000", cfg.Server.GRPCAddr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, config.DeleteByIndex, cfg.People.DeleteMode)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, 5, cfg.Seed.Min)
	assert.Equal(t, 9, cfg.Seed.Max)
	assert.False(t, cfg.Tailscale.Enabled)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestRenderConfig_Tailscale(t *testing.T) {
	out := renderConfig(initAnswers{
		DBPath:     ":memory:",
		DeleteMode: "id",
		Tailscale:  true,
		TSHostname: "people",
		TSFunnel:   true,
		LogLevel:   "info",
		LogFormat:  "text",
	})

	assert.NotContains(t, out, "auth_key")

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.True(t, cfg.Tailscale.Enabled)
	assert.Equal(t, "people", cfg.Tailscale.Hostname)
	assert.True(t, cfg.Tailscale.Funnel)
}

func TestIsYes(t *testing.T) {
	for _, s := range []string{"y", "Y", "yes", "YES"} {
		assert.True(t, isYes(s), s)
	}
	for _, s := range []string{"", "n", "no", "yep"} {
		assert.False(t, isYes(s), s)
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLevel("chatty"))
}

func TestColorHandler(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	h := &colorHandler{out: &buf, mu: &sync.Mutex{}, level: slog.LevelInfo}
	logger := slog.New(h).With("component", "gateway")

	logger.Debug("hidden")
	logger.Info("grpc call", "method", "/people.PingService/Ping")
	logger.WithGroup("req").Warn("slow", "ms", 250)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INF grpc call component=gateway method=/people.PingService/Ping")
	assert.Contains(t, out, "WRN slow component=gateway req.ms=250")
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPrintAudit(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	printAudit(&buf, nil)
	assert.Equal(t, "no audit entries\n", buf.String())

	buf.Reset()
	printAudit(&buf, []auditEntry{
		{ID: "a", Action: "delete_person", PersonID: 4, Timestamp: "2026-01-02T03:04:05.000000000Z", Detail: map[string]any{"name": "Ada"}},
		{ID: "b", Action: "create_person", PersonID: 4, Timestamp: "2026-01-02T03:04:04.000000000Z"},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "delete_person")
	assert.Contains(t, lines[0], "person=4")
	assert.Contains(t, lines[0], `{"name":"Ada"}`)
	assert.NotContains(t, lines[1], "{")
}
