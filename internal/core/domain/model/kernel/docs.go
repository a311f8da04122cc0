// Package kernel provides the shared domain primitives of the parcel-tracking
// system. Types here carry no tracking semantics of their own; they exist so
// every aggregate builds on the same validated building blocks.
//
// The package includes:
//   - UUID: A value object wrapping an RFC 4122 identifier, used for delivery
//     receipt ids, with validation, parsing and comparison
//
// Kernel types are immutable after construction and safe to share across
// goroutines, so aggregates can hand them out without copying concerns.
package kernel
