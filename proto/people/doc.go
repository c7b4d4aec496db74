// ABOUTME: Generated protobuf messages and gRPC bindings for people.proto
// ABOUTME: Regenerate with go generate after editing the .proto file

// Package people holds the wire contract for the people gateway.
package people

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative people.proto
