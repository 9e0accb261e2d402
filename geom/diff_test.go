package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/kshedden/geomreg/statmodel"
)

func relClose(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol*(1+math.Abs(b[i])) {
			return false
		}
	}
	return true
}

var diffParams = [][]float64{
	{0, 0},
	{-0.6, 1.1},
	{0.3, -0.4},
	{1, 0.5},
}

func TestScoreNumeric(t *testing.T) {

	y, x := data1()
	model, err := NewGeom(y, x, nil, nil)
	require.NoError(t, err)

	for _, params := range diffParams {
		score := make([]float64, 2)
		model.Score(params, score)

		ngrad := fd.Gradient(nil, model.LogLike, params, &fd.Settings{Formula: fd.Central})

		if !relClose(score, ngrad, 1e-5) {
			t.Errorf("score at %v: analytic %v, numeric %v", params, score, ngrad)
		}
	}
}

func TestScoreZeroAtFit(t *testing.T) {

	y, x := data1()
	model, err := NewGeom(y, x, nil, nil)
	require.NoError(t, err)
	rslt, err := model.Fit()
	require.NoError(t, err)

	score := make([]float64, 2)
	model.Score(rslt.Params(), score)
	for _, s := range score {
		if math.Abs(s) > 1e-6 {
			t.Errorf("score at the estimate: %v", score)
		}
	}
}

func TestHessianNumeric(t *testing.T) {

	y, x := data1()
	model, err := NewGeom(y, x, nil, nil)
	require.NoError(t, err)

	nvar := model.NumParams()
	scorefn := func(score, params []float64) {
		model.Score(params, score)
	}

	for _, params := range diffParams {

		hess := make([]float64, nvar*nvar)
		model.Hessian(params, statmodel.ObsHess, hess)

		nhess := mat.NewDense(nvar, nvar, nil)
		fd.Jacobian(nhess, scorefn, params, &fd.JacobianSettings{Formula: fd.Central})

		if !relClose(hess, nhess.RawMatrix().Data, 1e-5) {
			t.Errorf("observed Hessian at %v: analytic %v, numeric %v", params, hess, nhess.RawMatrix().Data)
		}
	}
}

func TestExpectedHessian(t *testing.T) {

	y, x := data1()
	model, err := NewGeom(y, x, nil, nil)
	require.NoError(t, err)

	n, nvar := x.Dims()

	for _, params := range diffParams {

		hess := make([]float64, nvar*nvar)
		model.Hessian(params, statmodel.ExpHess, hess)

		// -X' diag((mu - 1) / mu) X
		want := make([]float64, nvar*nvar)
		for i := 0; i < n; i++ {
			eta := params[0]*x.At(i, 0) + params[1]*x.At(i, 1)
			mu := math.Exp(eta) + 1
			w := (mu - 1) / mu
			for j1 := 0; j1 < nvar; j1++ {
				for j2 := 0; j2 < nvar; j2++ {
					want[j1*nvar+j2] -= w * x.At(i, j1) * x.At(i, j2)
				}
			}
		}

		if !relClose(hess, want, 1e-10) {
			t.Errorf("expected Hessian at %v: got %v, want %v", params, hess, want)
		}
	}
}
