// Package kernel provides core domain primitives for the order notification
// system. It implements fundamental building blocks following Domain-Driven
// Design principles that are used throughout the domain model.
//
// The package includes:
//   - Phone: A value object holding a customer phone number normalized to a
//     single country-coded digit format
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
