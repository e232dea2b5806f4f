// Package errs provides standardized error types for the freight marketplace.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for each failure kind the core reports:
//   - ObjectNotFoundError: a requested identifier does not resolve in storage
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: caller-supplied
//     data violates an enum or shape constraint
//   - BusinessRuleViolationError: a well-formed operation violates a domain rule
//   - ConflictError: the persistence layer rejected a write (duplicate key,
//     concurrent modification)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the kind
//
// Adapters classify errors with errors.Is against the sentinels and never need
// to inspect messages.
package errs
