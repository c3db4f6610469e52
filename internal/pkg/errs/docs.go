// Package errs provides the shared error types of the packing service.
//
// Every type follows the same pattern:
//   - a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...) used with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - New... and New...WithCause constructors
//   - Unwrap returning the sentinel
//
// The HTTP adapter maps the sentinels to status codes, so domain code only has
// to pick the right constructor:
//
//	if qty < 0 {
//	    return errs.NewValueIsOutOfRangeError("qty", qty, 0, math.MaxInt)
//	}
//
// ErrConflict is raised by the postgres adapter when a unique constraint is
// violated by a concurrent writer; callers that own a retry loop test for it.
package errs
