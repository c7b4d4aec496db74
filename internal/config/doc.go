// Package config handles configuration loading for people-gateway.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package fills in defaults and validates the result.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from PEOPLE_CONFIG environment variable
//  2. $XDG_CONFIG_HOME/people/gateway.yaml
//  3. ~/.config/people/gateway.yaml
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	tailscale:
//	  auth_key: "${TS_AUTHKEY}"
//
// Syntax: ${VAR_NAME}. Unset variables expand to the empty string.
//
// # Configuration Sections
//
//	server:
//	  grpc_addr: "0.0.0.0:50051"
//	  http_addr: "0.0.0.0:8080"    # /health and /health/ready
//	  shutdown_timeout: "5s"
//
//	database:
//	  path: ":memory:"             # audit journal; a file path keeps history across restarts
//
//	people:
//	  delete_mode: "id"            # id (default) or index (deprecated)
//
//	seed:
//	  enabled: true
//	  min: 20
//	  max: 50
//	  random_seed: 0               # 0 picks a random seed
//
//	tailscale:
//	  enabled: false
//	  hostname: "people-gateway"
//	  https: false
//	  funnel: false
//
//	logging:
//	  level: "info"                # debug, info, warn, error
//	  format: "text"               # text, json
//
// # Usage
//
//	cfg, err := config.Load("/etc/people/gateway.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
