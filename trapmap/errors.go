package trapmap

import "github.com/pkg/errors"

// Threading errors through every recursive step of a segment insertion
// would add a lot of incidental complexity. Instead, structural-invariant
// violations panic, and the public API recovers and converts to an error at
// its boundary.

// InvariantError reports a violation of the trapezoidal map's or the search
// DAG's structural invariants. These are programming errors, never ordinary
// control flow: degenerate or rejected input is signaled with the NONE
// sentinel instead and never reaches this path.
type InvariantError error

// throwInvariant panics with an InvariantError.
func throwInvariant(format string, args ...interface{}) {
	panic(InvariantError(errors.Errorf(format, args...)))
}

// HandleInvariantPanicRecover converts a panic raised by throwInvariant back
// into a returned error. Since InvariantError is just the error interface,
// any panic value that implements error (runtime errors included) is
// converted the same way; panic values that are not errors are re-raised.
func HandleInvariantPanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if invErr, ok := r.(InvariantError); ok {
		return invErr
	}
	panic(r)
}
