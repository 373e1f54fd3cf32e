// Package errs provides standardized error types for the catering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectAlreadyExistsError: For uniqueness conflicts (duplicate email,
//     duplicate delivery assignment)
//   - Sentinel auth errors distinguishing missing/invalid credentials
//     (ErrUnauthenticated) from insufficient role (ErrForbidden)
//
// Each structured error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach lets boundary code classify failures with errors.Is
// and map them to the HTTP error taxonomy in one place.
package errs
