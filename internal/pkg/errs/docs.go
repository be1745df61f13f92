// Package errs provides standardized error types for the order-processing core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the core:
//   - ObjectNotFoundError: an order, table, or counter could not be resolved
//   - ValueIsInvalidError / ValueIsRequiredError: malformed or missing input
//   - InvalidStateTransitionError: a mutation violates a state machine,
//     including any mutation of a terminal order
//   - ConcurrencyConflictError: a concurrent writer invalidated observed state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels, never by
// matching message text.
package errs
