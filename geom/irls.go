package geom

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// A Cholesky pivot whose square is below pivotTol times the
// corresponding diagonal element of X'WX marks the column as linearly
// dependent on the preceding columns.  Exact collinearity often leaves
// a condition number just under mat.ConditionTolerance, so both checks
// are made.
const pivotTol = 1e-10

// fitIRLS runs the IWLS iterations from the starting values.  It
// returns the final coefficients, the number of iterations, and the
// L1 norm of the last score vector.
func (g *Geom) fitIRLS() ([]float64, int, float64, error) {

	n := g.NumObs()
	nvar := g.NumParams()

	linpred := make([]float64, n)
	mn := make([]float64, n)
	va := make([]float64, n)
	irlsw := make([]float64, n)
	adjy := make([]float64, n)
	resid := make([]float64, n)

	xtx := make([]float64, nvar*nvar)
	xtz := make([]float64, nvar)

	params := make([]float64, nvar)
	copy(params, g.start)

	// Any score with norm above the tolerance will do, it is
	// replaced in the first iteration.
	score := make([]float64, nvar)
	for j := range score {
		score[j] = 1 + g.tol
	}
	snorm := floats.Norm(score, 1)

	var iter int
	for !(snorm <= g.tol) {

		if iter >= g.maxiter {
			return nil, iter, snorm, fmt.Errorf("%w: score norm %g after %d iterations",
				ErrNonConvergence, snorm, iter)
		}

		g.linearPredictor(params, linpred)
		GeomLink.InvLink(linpred, mn)
		GeomVariance.Var(mn, va)
		irlsWeights(mn, va, irlsw)
		adjustedResponse(g.y, linpred, mn, adjy)

		g.weightedXprod(irlsw, xtx)
		xtxi, err := invertXprod(xtx, nvar)
		if err != nil {
			return nil, iter, snorm, singular(iter, err)
		}

		g.weightedXty(irlsw, adjy, xtz)

		// The score uses the linear predictor from before the update.
		floats.SubTo(resid, adjy, linpred)
		g.weightedXty(irlsw, resid, score)
		snorm = floats.Norm(score, 1)

		var nparam mat.VecDense
		nparam.MulVec(xtxi, mat.NewVecDense(nvar, xtz))
		params = nparam.RawVector().Data

		iter++

		if g.log != nil {
			g.log.Printf("Iteration %d: score=%.10g deviance=%.10f\n",
				iter, snorm, geomDeviance(g.y, mn))
		}
	}

	if g.log != nil {
		g.log.Printf("IWLS converged after %d iterations\n", iter)
	}

	return params, iter, snorm, nil
}

// weightedXprod computes X' diag(w) X, in vectorized form.
func (g *Geom) weightedXprod(w, xtx []float64) {

	nvar := len(g.xdat)
	wx := make([]float64, len(w))

	for j1, xa := range g.xdat {
		floats.MulTo(wx, w, xa)
		for j2 := 0; j2 <= j1; j2++ {
			u := floats.Dot(wx, g.xdat[j2])
			xtx[j1*nvar+j2] = u
			xtx[j2*nvar+j1] = u
		}
	}
}

// weightedXty computes X' diag(w) v.
func (g *Geom) weightedXty(w, v, xty []float64) {

	wv := make([]float64, len(w))
	floats.MulTo(wv, w, v)

	for j, x := range g.xdat {
		xty[j] = floats.Dot(wv, x)
	}
}

// invertXprod inverts the symmetric positive definite matrix stored
// in xtx.  The returned error is a mat.Condition if the matrix is
// singular or numerically singular.
func invertXprod(xtx []float64, nvar int) (*mat.SymDense, error) {

	a := mat.NewSymDense(nvar, append([]float64(nil), xtx...))

	var chol mat.Cholesky
	if ok := chol.Factorize(a); !ok {
		return nil, mat.Condition(math.Inf(1))
	}

	if c := chol.Cond(); c > mat.ConditionTolerance {
		return nil, mat.Condition(c)
	}

	var l mat.TriDense
	chol.LTo(&l)
	for j := 0; j < nvar; j++ {
		d := l.At(j, j)
		if d*d <= pivotTol*a.At(j, j) {
			return nil, mat.Condition(chol.Cond())
		}
	}

	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		return nil, err
	}

	return &inv, nil
}

// singular converts an inversion failure into a *SingularError.
func singular(iter int, err error) error {
	var c mat.Condition
	if !errors.As(err, &c) {
		c = mat.Condition(math.Inf(1))
	}
	return &SingularError{
		Iteration: iter,
		Cond:      c,
	}
}
