// ABOUTME: Interactive config file generator for the gateway
// ABOUTME: Prompts for each section and writes a YAML file config.Load accepts

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// initAnswers holds everything runInit asks for.
type initAnswers struct {
	GRPCAddr   string
	HTTPAddr   string
	DBPath     string
	DeleteMode string
	Seed       bool
	SeedMin    string
	SeedMax    string
	Tailscale  bool
	TSHostname string
	TSAuthKey  string
	TSEphem    bool
	TSFunnel   bool
	LogLevel   string
	LogFormat  string
}

func runInit(in io.Reader) error {
	reader := bufio.NewReader(in)

	fmt.Println("people-gateway configuration setup")
	fmt.Println("==================================")
	fmt.Println()

	defaultDBPath := filepath.Join(getDataPath(), "audit.db")

	outputFile := prompt(reader, "Config file path", getConfigPath())

	if _, err := os.Stat(outputFile); err == nil {
		if !isYes(prompt(reader, "File exists. Overwrite?", "no")) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	var a initAnswers

	fmt.Println("\n--- Server Configuration ---")
	a.GRPCAddr = prompt(reader, "gRPC address", "localhost:50051")
	a.HTTPAddr = prompt(reader, "HTTP address", "localhost:8080")

	fmt.Println("\n--- Audit Journal ---")
	a.DBPath = prompt(reader, "SQLite journal path (:memory: to keep it in memory)", defaultDBPath)

	fmt.Println("\n--- People ---")
	a.DeleteMode = prompt(reader, "DeletePerson mode (id/index)", "id")
	a.Seed = isYes(prompt(reader, "Seed the store with fake people at startup?", "no"))
	if a.Seed {
		a.SeedMin = prompt(reader, "Minimum people", "20")
		a.SeedMax = prompt(reader, "Maximum people (exclusive)", "50")
	}

	fmt.Println("\n--- Tailscale Configuration ---")
	a.Tailscale = isYes(prompt(reader, "Enable Tailscale?", "no"))
	if a.Tailscale {
		a.TSHostname = prompt(reader, "Tailscale hostname", "people-gateway")
		a.TSAuthKey = prompt(reader, "Tailscale auth key (leave empty to use TS_AUTHKEY)", "")
		a.TSEphem = isYes(prompt(reader, "Ephemeral node?", "no"))
		a.TSFunnel = isYes(prompt(reader, "Enable Funnel (public HTTPS)?", "no"))
	}

	fmt.Println("\n--- Logging Configuration ---")
	a.LogLevel = prompt(reader, "Log level (debug/info/warn/error)", "info")
	a.LogFormat = prompt(reader, "Log format (text/json)", "text")

	configDir := filepath.Dir(outputFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(outputFile, []byte(renderConfig(a)), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	if a.DBPath != ":memory:" {
		dataDir := filepath.Dir(a.DBPath)
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
		fmt.Printf("Data directory: %s\n", dataDir)
	}

	fmt.Printf("\nConfig written to %s\n", outputFile)
	fmt.Println("\nTo start the server:")
	fmt.Printf("  people-gateway serve\n")

	return nil
}

// renderConfig produces the YAML config file for a.
func renderConfig(a initAnswers) string {
	var cfg strings.Builder
	cfg.WriteString("# people-gateway configuration\n")
	cfg.WriteString("# Generated by people-gateway init\n\n")

	cfg.WriteString("server:\n")
	cfg.WriteString(fmt.Sprintf("  grpc_addr: \"%s\"\n", a.GRPCAddr))
	cfg.WriteString(fmt.Sprintf("  http_addr: \"%s\"\n", a.HTTPAddr))
	cfg.WriteString("  shutdown_timeout: \"5s\"\n")
	cfg.WriteString("\n")

	cfg.WriteString("database:\n")
	cfg.WriteString(fmt.Sprintf("  path: \"%s\"\n", a.DBPath))
	cfg.WriteString("\n")

	cfg.WriteString("people:\n")
	cfg.WriteString(fmt.Sprintf("  delete_mode: \"%s\"\n", a.DeleteMode))
	cfg.WriteString("\n")

	cfg.WriteString("seed:\n")
	cfg.WriteString(fmt.Sprintf("  enabled: %t\n", a.Seed))
	if a.Seed {
		cfg.WriteString(fmt.Sprintf("  min: %s\n", a.SeedMin))
		cfg.WriteString(fmt.Sprintf("  max: %s\n", a.SeedMax))
	}
	cfg.WriteString("\n")

	cfg.WriteString("tailscale:\n")
	cfg.WriteString(fmt.Sprintf("  enabled: %t\n", a.Tailscale))
	if a.Tailscale {
		cfg.WriteString(fmt.Sprintf("  hostname: \"%s\"\n", a.TSHostname))
		if a.TSAuthKey != "" {
			cfg.WriteString(fmt.Sprintf("  auth_key: \"%s\"\n", a.TSAuthKey))
		}
		cfg.WriteString(fmt.Sprintf("  ephemeral: %t\n", a.TSEphem))
		cfg.WriteString(fmt.Sprintf("  funnel: %t\n", a.TSFunnel))
	}
	cfg.WriteString("\n")

	cfg.WriteString("logging:\n")
	cfg.WriteString(fmt.Sprintf("  level: \"%s\"\n", a.LogLevel))
	cfg.WriteString(fmt.Sprintf("  format: \"%s\"\n", a.LogFormat))

	return cfg.String()
}

func isYes(s string) bool {
	s = strings.ToLower(s)
	return s == "yes" || s == "y"
}

func prompt(reader *bufio.Reader, question, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("%s [%s]: ", question, defaultVal)
	} else {
		fmt.Printf("%s: ", question)
	}

	input, err := reader.ReadString('\n')
	if err != nil {
		// On EOF or error, return default
		fmt.Println()
		return defaultVal
	}
	input = strings.TrimSpace(input)

	if input == "" {
		return defaultVal
	}
	return input
}
