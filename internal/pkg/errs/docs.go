// Package errs provides standardized error types for the storefront application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid (for example a malformed identifier)
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when a referenced object cannot be found
//   - ObjectConflictError: For when an operation left an object in a conflicting state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Transport adapters classify errors with errors.Is against the sentinels:
// ErrValueIsRequired, ErrValueIsInvalid and ErrValueIsOutOfRange are invalid arguments,
// ErrObjectNotFound is a missing object and ErrObjectConflict is a conflict.
package errs
