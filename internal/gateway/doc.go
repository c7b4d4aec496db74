// ABOUTME: Package documentation for the gateway orchestrator
// ABOUTME: Describes server wiring, interceptors and the HTTP side channel

// Package gateway wires the people-gateway servers together.
//
// # Overview
//
// A Gateway owns:
//
//   - the in-memory record store and its SQLite audit journal
//   - a gRPC server exposing people.PingService and people.PersonService
//   - an HTTP server for health checks and the audit API
//   - optionally, a tsnet node that replaces the TCP listeners
//
// New builds everything from a config.Config and seeds the store when
// seed.enabled is set. Run listens, serves until its context is canceled,
// then shuts down within server.shutdown_timeout.
//
// # gRPC
//
// Every call passes through two interceptors. The outer one logs method,
// peer, status code and duration. The inner one recovers panics that escape
// a handler and reports them as codes.Internal. Domain outcomes, including
// handler faults, travel in ResponseMetadata and never as gRPC errors.
//
// Server keepalive pings every 15s and tolerates client pings every 5s, so
// long DeletePeople streams survive idle NATs.
//
// # HTTP
//
//	GET /health        200 "OK"
//	GET /health/ready  200 "ready (N people)"
//	GET /api/audit     audit entries as JSON, newest first
//
// /api/audit accepts person_id, action and limit query parameters.
//
// # Tailscale
//
// With tailscale.enabled, gRPC listens on :50051 of the tailnet node and HTTP
// on :80, or :443 with tailscale.https or tailscale.funnel. The auth key comes
// from tailscale.auth_key or TS_AUTHKEY.
package gateway
