// ABOUTME: Package documentation for the people gRPC services
// ABOUTME: Describes the response envelope, status codes and delete variants

// Package people implements the PersonService and PingService gRPC services.
//
// Every PersonService response carries a ResponseMetadata envelope with an
// HTTP-style status and a human-readable message. Handlers never return a
// gRPC-level error for domain outcomes:
//
//   - 201 for a created person
//   - 200 for successful reads, updates and deletes, including "not found"
//     answers on the read and delete paths
//   - 400 for rejected GetPeople windows and out-of-range delete indices
//   - 404 for updates of a missing person
//   - 500 when a handler faults; the fault is logged and contained
//
// DeletePerson runs in one of two modes chosen at startup. DeleteByID is the
// default. DeleteByIndex removes by position and is kept for older clients.
//
// DeletePeople is a bidirectional stream. Ids are deleted in arrival order and
// each one is acknowledged with running totals. Sending -1 ends the stream
// with a summary.
package people
