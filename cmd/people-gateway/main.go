// ABOUTME: Entry point for the people-gateway server
// ABOUTME: Serves the person record gRPC API and its health and audit endpoints

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"

	"github.com/2389/people-gateway/internal/config"
	"github.com/2389/people-gateway/internal/gateway"
)

// version is set by goreleaser at build time.
var version = "dev"

const banner = `
                          _                        _
  _ __   ___  ___  _ __ | | ___        __ _  __ _| |_ _____      ____ _ _   _
 | '_ \ / _ \/ _ \| '_ \| |/ _ \_____ / _' |/ _' | __/ _ \ \ /\ / / _' | | | |
 | |_) |  __/ (_) | |_) | |  __/_____| (_| | (_| | ||  __/\ V  V / (_| | |_| |
 | .__/ \___|\___/| .__/|_|\___|      \__, |\__,_|\__\___| \_/\_/ \__,_|\__, |
 |_|              |_|                 |___/                             |___/
`

// getConfigPath returns the path to the gateway config file.
// Priority: PEOPLE_CONFIG env var > XDG_CONFIG_HOME/people/gateway.yaml > ~/.config/people/gateway.yaml
func getConfigPath() string {
	if envPath := os.Getenv("PEOPLE_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "gateway.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "people", "gateway.yaml")
}

// getDataPath returns the path to the people data directory.
// Priority: XDG_DATA_HOME/people > ~/.local/share/people
func getDataPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "data" // fallback
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return filepath.Join(dataDir, "people")
}

func usage() {
	fmt.Println("Usage: people-gateway <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  serve                 Start the gateway server")
	fmt.Println("  init                  Create a new config file interactively")
	fmt.Println("  health                Check gateway health")
	fmt.Println("  ready                 Show readiness and record count")
	fmt.Println("  audit [person_id]     Show recent audit journal entries")
	fmt.Println("  version               Print the version")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx)
	case "init":
		err = runInit(os.Stdin)
	case "health":
		err = runHealth(ctx)
	case "ready":
		err = runReady(ctx)
	case "audit":
		err = runAudit(ctx, os.Args[2:])
	case "version":
		fmt.Println(version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	configPath := getConfigPath()

	// Print banner
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	// Version info
	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := setupLogger(cfg.Logging)

	// Startup info
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	green.Print("    ▶ ")
	fmt.Printf("Config:      %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("gRPC:        %s\n", cfg.Server.GRPCAddr)
	green.Print("    ▶ ")
	fmt.Printf("HTTP:        %s\n", cfg.Server.HTTPAddr)
	green.Print("    ▶ ")
	fmt.Printf("Journal:     %s\n", cfg.Database.Path)
	green.Print("    ▶ ")
	fmt.Printf("Delete mode: ")
	if cfg.People.DeleteMode == config.DeleteByIndex {
		yellow.Printf("%s (deprecated)\n", cfg.People.DeleteMode)
	} else {
		fmt.Println(cfg.People.DeleteMode)
	}
	if cfg.Seed.Enabled {
		green.Print("    ▶ ")
		fmt.Printf("Seed:        %d-%d people\n", cfg.Seed.Min, cfg.Seed.Max)
	}

	// Tailscale status
	if cfg.Tailscale.Enabled {
		green.Print("    ▶ ")
		fmt.Printf("Tailscale:   ")
		cyan.Print(cfg.Tailscale.Hostname)
		if cfg.Tailscale.Funnel {
			yellow.Print(" [funnel]")
		}
		if cfg.Tailscale.Ephemeral {
			gray.Print(" (ephemeral)")
		}
		fmt.Println()
	}

	fmt.Println()

	logger.Info("starting people-gateway",
		"config", configPath,
		"grpc_addr", cfg.Server.GRPCAddr,
		"http_addr", cfg.Server.HTTPAddr,
	)

	gw, err := gateway.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating gateway: %w", err)
	}

	return gw.Run(ctx)
}

// getHTTP performs a GET against the configured HTTP address and returns the body.
func getHTTP(ctx context.Context, path string) (int, []byte, error) {
	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return 0, nil, fmt.Errorf("loading config: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+cfg.Server.HTTPAddr+path, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func runHealth(ctx context.Context) error {
	status, _, err := getHTTP(ctx, "/health")
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", status)
	}

	fmt.Println("healthy")
	return nil
}

func runReady(ctx context.Context) error {
	status, body, err := getHTTP(ctx, "/health/ready")
	if err != nil {
		return fmt.Errorf("ready check failed: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("not ready: status %d", status)
	}

	fmt.Println(string(body))
	return nil
}

// auditEntry is one element of the /api/audit response.
type auditEntry = gateway.AuditEntryResponse

func runAudit(ctx context.Context, args []string) error {
	query := url.Values{}
	query.Set("limit", "20")
	if len(args) > 1 {
		return errors.New("usage: people-gateway audit [person_id]")
	}
	if len(args) == 1 {
		query.Set("person_id", args[0])
	}

	status, body, err := getHTTP(ctx, "/api/audit?"+query.Encode())
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("audit request failed: status %d: %s", status, strings.TrimSpace(string(body)))
	}

	var entries []auditEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return fmt.Errorf("decoding audit entries: %w", err)
	}

	printAudit(os.Stdout, entries)
	return nil
}

func printAudit(w io.Writer, entries []auditEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no audit entries")
		return
	}

	gray := color.New(color.FgHiBlack)
	for _, e := range entries {
		actionColor := color.New(color.FgCyan)
		switch e.Action {
		case "create_person":
			actionColor = color.New(color.FgGreen)
		case "delete_person":
			actionColor = color.New(color.FgRed)
		}

		gray.Fprintf(w, "%s ", e.Timestamp)
		actionColor.Fprintf(w, "%-14s", e.Action)
		fmt.Fprintf(w, " person=%d", e.PersonID)
		if len(e.Detail) > 0 {
			detail, _ := json.Marshal(e.Detail)
			gray.Fprintf(w, " %s", detail)
		}
		fmt.Fprintln(w)
	}
}
