// Package kernel provides core domain primitives shared across the ordering
// domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A value object holding monetary amounts as integer cents with rounding-safe arithmetic
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use. Zero values are
// invalid; instances must be created through the provided constructors, and
// Validate detects values that bypassed construction.
package kernel
