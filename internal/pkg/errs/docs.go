// Package errs provides standardized error types for the SwiftGo shipping core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failures
//   - ObjectNotFoundError: an order or other stored object does not exist
//   - InvalidTransitionError: an order status change that the lifecycle forbids
//   - OperationNotAllowedError: an operation that the object's current state forbids
//   - VersionIsInvalidError: a persisted snapshot written by an unknown schema version
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the error
package errs
