// ABOUTME: Configuration loading for people-client
// ABOUTME: Loads an optional TOML config from the XDG path with environment variable expansion

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

const defaultGatewayAddr = "localhost:50051"

type Config struct {
	Gateway GatewayConfig `toml:"gateway"`
	Output  OutputConfig  `toml:"output"`
}

type GatewayConfig struct {
	Addr string `toml:"addr"`
}

type OutputConfig struct {
	// Color forces colored output on or off. Unset means detect the terminal.
	Color *bool `toml:"color"`
}

// clientConfigPath returns the path to the client config file.
// Priority: PEOPLE_CLIENT_CONFIG env var > XDG_CONFIG_HOME/people/client.toml > ~/.config/people/client.toml
func clientConfigPath() string {
	if envPath := os.Getenv("PEOPLE_CLIENT_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "client.toml"
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "people", "client.toml")
}

// LoadConfig reads config from the given path, expanding environment variables.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{Gateway: GatewayConfig{Addr: defaultGatewayAddr}}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables (${VAR} syntax)
	expanded := expandEnvVars(string(data))

	if _, err := toml.Decode(expanded, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} with environment variable values.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		return os.Getenv(varName)
	})
}

// Validate checks that required config fields are present.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Gateway.Addr) == "" {
		return errors.New("gateway.addr is required")
	}
	return nil
}
