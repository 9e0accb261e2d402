package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Validate checks the outcome vector y, the design matrix x and the
// optional starting values before any numerical work is done.  The
// checks are made in a fixed order (presence, type, finiteness,
// dimensions, domain) and the first failure is returned as a
// *ValidationError.  If start is nil, a zero vector with one element
// per column of x is returned in its place.
func Validate(y []float64, x *mat.Dense, start []float64) ([]float64, error) {

	if y == nil {
		return nil, invalid(ErrMissingArgument, "the outcome vector y is required")
	}
	if x == nil {
		return nil, invalid(ErrMissingArgument, "the design matrix X is required")
	}

	if len(y) == 0 {
		return nil, invalid(ErrInvalidType, "the outcome vector y is empty")
	}
	if x.IsEmpty() {
		return nil, invalid(ErrInvalidType, "the design matrix X has no elements")
	}
	if start != nil && len(start) == 0 {
		return nil, invalid(ErrInvalidType, "the starting values are an empty vector")
	}

	n, p := x.Dims()

	for i, v := range y {
		if !finite(v) {
			return nil, invalid(ErrNonFiniteInput, "y[%d] is %v", i, v)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			if v := x.At(i, j); !finite(v) {
				return nil, invalid(ErrNonFiniteInput, "X[%d, %d] is %v", i, j, v)
			}
		}
	}
	for j, v := range start {
		if !finite(v) {
			return nil, invalid(ErrNonFiniteInput, "start[%d] is %v", j, v)
		}
	}

	if start == nil {
		start = make([]float64, p)
	}

	if len(y) != n {
		return nil, invalid(ErrDimensionMismatch, "y has length %d but X has %d rows", len(y), n)
	}
	if len(start) != p {
		return nil, invalid(ErrDimensionMismatch, "start has length %d but X has %d columns", len(start), p)
	}
	if n < p {
		return nil, invalid(ErrDimensionMismatch, "X has fewer rows (%d) than columns (%d)", n, p)
	}

	for i, v := range y {
		if v < 1 || v != math.Trunc(v) {
			return nil, invalid(ErrInvalidDomain, "y[%d] = %v is not a positive integer", i, v)
		}
	}

	return start, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
