// Package kernel provides core domain primitives used throughout the
// order-processing domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison
//     capabilities, used for tenant, order, table, and customer identity
//   - Money: A value object for the monetary breakdown of an order
//     (subtotal, discount, tax, total) built on decimal arithmetic
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
