package geom

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Error kinds returned by this package.  Callers should match them
// with errors.Is.
var (
	ErrMissingArgument   = errors.New("geom: missing argument")
	ErrInvalidType       = errors.New("geom: invalid type")
	ErrNonFiniteInput    = errors.New("geom: non-finite input")
	ErrDimensionMismatch = errors.New("geom: dimension mismatch")
	ErrInvalidDomain     = errors.New("geom: invalid domain")
	ErrSingularMatrix    = errors.New("geom: singular matrix")
	ErrNonConvergence    = errors.New("geom: IWLS did not converge")
)

// ValidationError describes an argument that failed validation.
type ValidationError struct {

	// Kind is one of the Err* sentinels above.
	Kind error

	// Cause is a human-readable description of the problem.
	Cause string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalid(kind error, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Kind:  kind,
		Cause: fmt.Sprintf(format, args...),
	}
}

// SingularError is returned when the weighted cross product X'WX
// cannot be inverted.
type SingularError struct {

	// Iteration is the IWLS iteration at which the failure occurred,
	// or -1 if it occurred after convergence.
	Iteration int

	// Cond is the condition number estimate, +Inf if the matrix is
	// exactly singular.
	Cond mat.Condition
}

func (e *SingularError) Error() string {
	if e.Iteration < 0 {
		return fmt.Sprintf("%v: X'WX at the converged estimate (%v)", ErrSingularMatrix, e.Cond)
	}
	return fmt.Sprintf("%v: X'WX at iteration %d (%v)", ErrSingularMatrix, e.Iteration, e.Cond)
}

func (e *SingularError) Is(err error) bool {
	return err == ErrSingularMatrix
}

func (e *SingularError) Unwrap() error {
	return e.Cond
}
