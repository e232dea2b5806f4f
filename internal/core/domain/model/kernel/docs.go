// Package kernel provides the domain primitives shared by the load and booking
// aggregates.
//
// The package includes:
//   - UUID: a value object for aggregate identifiers with validation and comparison
//
// Primitives are immutable and safe for concurrent use.
package kernel
