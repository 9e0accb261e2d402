package geom

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/kshedden/geomreg/statmodel"
)

// GeomResults describes the results of a fitted geometric GLM.  It is
// not modified after Fit returns, and its methods return copies.
type GeomResults struct {
	statmodel.BaseResults

	// The outcome
	y []float64

	// The linear predictor, mean, variance and IWLS weights at the
	// fitted coefficients.
	linpred []float64
	fitted  []float64
	va      []float64
	wgt     []float64
	prob    []float64

	resid       []float64
	pearson     []float64
	stdPearson  []float64
	lc          []float64
	devResid    []float64
	stdDevResid []float64
	leverage    []float64
	hscale      []float64
	cooks       []float64
	deviance    float64
	dfResid     int
	iterations  int
	scoreNorm   float64
	x           *mat.Dense
	vcovMat     *mat.SymDense
	numObs      int
	numParams   int
}

// Fit estimates the coefficients of the model using IWLS and returns
// a results value.  ErrSingularMatrix is returned if X'WX can not be
// inverted, and ErrNonConvergence if the iterations do not converge
// within the configured limit.  No partial results are returned.
func (g *Geom) Fit() (*GeomResults, error) {

	params, iter, snorm, err := g.fitIRLS()
	if err != nil {
		return nil, err
	}

	n := g.NumObs()
	nvar := g.NumParams()

	rslt := &GeomResults{
		y:          g.y,
		linpred:    make([]float64, n),
		fitted:     make([]float64, n),
		va:         make([]float64, n),
		wgt:        make([]float64, n),
		prob:       make([]float64, n),
		iterations: iter,
		scoreNorm:  snorm,
		x:          g.x,
		numObs:     n,
		numParams:  nvar,
	}

	g.linearPredictor(params, rslt.linpred)
	GeomLink.InvLink(rslt.linpred, rslt.fitted)
	GeomVariance.Var(rslt.fitted, rslt.va)
	irlsWeights(rslt.fitted, rslt.va, rslt.wgt)
	for i, m := range rslt.fitted {
		rslt.prob[i] = 1 / m
	}

	xtx := make([]float64, nvar*nvar)
	g.weightedXprod(rslt.wgt, xtx)
	vcov, err := invertXprod(xtx, nvar)
	if err != nil {
		return nil, singular(-1, err)
	}
	rslt.vcovMat = vcov

	rslt.leverage = hatDiag(g.x, vcov, rslt.wgt)
	rslt.hscale = make([]float64, n)
	for i, h := range rslt.leverage {
		rslt.hscale[i] = math.Sqrt(1 - h)
	}

	rslt.resid = make([]float64, n)
	floats.SubTo(rslt.resid, g.y, rslt.fitted)

	rslt.pearson = make([]float64, n)
	floats.DivTo(rslt.pearson, rslt.resid, rslt.va)
	rslt.stdPearson = make([]float64, n)
	floats.DivTo(rslt.stdPearson, rslt.pearson, rslt.hscale)

	rslt.lc = make([]float64, n)
	devianceTerm(g.y, rslt.fitted, rslt.lc)
	ud := make([]float64, n)
	unitDeviance(g.y, rslt.fitted, rslt.lc, ud)
	rslt.deviance = 2 * floats.Sum(ud)

	rslt.devResid = make([]float64, n)
	for i, u := range ud {
		rslt.devResid[i] = sign(rslt.resid[i]) * math.Sqrt(u)
	}
	rslt.stdDevResid = make([]float64, n)
	floats.DivTo(rslt.stdDevResid, rslt.devResid, rslt.hscale)

	rslt.cooks = make([]float64, n)
	for i, h := range rslt.leverage {
		r := rslt.stdPearson[i]
		rslt.cooks[i] = r * r * h / (1 - h) / float64(nvar)
	}

	rslt.dfResid = n - nvar

	vc := make([]float64, nvar*nvar)
	for j1 := 0; j1 < nvar; j1++ {
		for j2 := 0; j2 < nvar; j2++ {
			vc[j1*nvar+j2] = vcov.At(j1, j2)
		}
	}

	ll := geomLogLike(g.y, rslt.fitted)
	rslt.BaseResults = statmodel.NewBaseResults(g, ll, params, g.xnames, vc)

	return rslt, nil
}

// hatDiag returns the diagonal of X C X' W, where C = (X'WX)^-1.
func hatDiag(x *mat.Dense, c *mat.SymDense, w []float64) []float64 {

	n, _ := x.Dims()

	var xc mat.Dense
	xc.Mul(x, c)

	h := make([]float64, n)
	for i := range h {
		h[i] = w[i] * mat.Dot(xc.RowView(i), x.RowView(i))
	}

	return h
}

// sign returns -1, 0 or 1 according to the sign of x.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// NumObs returns the number of observations used in the fit.
func (rslt *GeomResults) NumObs() int {
	return rslt.numObs
}

// NumParams returns the number of coefficients, p.
func (rslt *GeomResults) NumParams() int {
	return rslt.numParams
}

// DFResid returns the residual degrees of freedom, n - p.
func (rslt *GeomResults) DFResid() int {
	return rslt.dfResid
}

// Deviance returns the deviance, 2 * sum(lc + y log(fitted / y)).
func (rslt *GeomResults) Deviance() float64 {
	return rslt.deviance
}

// AIC returns the Akaike information criterion, -2 * loglike + 2 * p.
func (rslt *GeomResults) AIC() float64 {
	return -2*rslt.LogLike() + 2*float64(rslt.numParams)
}

// Iterations returns the number of IWLS iterations that were run.
func (rslt *GeomResults) Iterations() int {
	return rslt.iterations
}

// ScoreNorm returns the sum of the absolute values of the score
// vector at the final iteration.
func (rslt *GeomResults) ScoreNorm() float64 {
	return rslt.scoreNorm
}

// Y returns the outcome variable.
func (rslt *GeomResults) Y() []float64 {
	return slices.Clone(rslt.y)
}

// FittedValues returns the fitted means, exp(eta) + 1.
func (rslt *GeomResults) FittedValues() []float64 {
	return slices.Clone(rslt.fitted)
}

// LinearPredictor returns the fitted linear predictor X * params.
func (rslt *GeomResults) LinearPredictor() []float64 {
	return slices.Clone(rslt.linpred)
}

// Variance returns the variance function at the fitted means.
func (rslt *GeomResults) Variance() []float64 {
	return slices.Clone(rslt.va)
}

// Weights returns the IWLS weights at the fitted means.
func (rslt *GeomResults) Weights() []float64 {
	return slices.Clone(rslt.wgt)
}

// Prob returns the fitted success probabilities, 1 / fitted.
func (rslt *GeomResults) Prob() []float64 {
	return slices.Clone(rslt.prob)
}

// Resid returns the raw residuals y - fitted.
func (rslt *GeomResults) Resid() []float64 {
	return slices.Clone(rslt.resid)
}

// PearsonResid returns the raw residuals divided by the variance.
func (rslt *GeomResults) PearsonResid() []float64 {
	return slices.Clone(rslt.pearson)
}

// StdPearsonResid returns the Pearson residuals divided by
// sqrt(1 - leverage).
func (rslt *GeomResults) StdPearsonResid() []float64 {
	return slices.Clone(rslt.stdPearson)
}

// DevianceTerm returns lc = (y - 1) log((y - 1) / (fitted - 1)) for
// each observation, with non-finite values set to zero.
func (rslt *GeomResults) DevianceTerm() []float64 {
	return slices.Clone(rslt.lc)
}

// DevianceResid returns the signed square roots of
// lc + y log(fitted / y).
func (rslt *GeomResults) DevianceResid() []float64 {
	return slices.Clone(rslt.devResid)
}

// StdDevianceResid returns the deviance residuals divided by
// sqrt(1 - leverage).
func (rslt *GeomResults) StdDevianceResid() []float64 {
	return slices.Clone(rslt.stdDevResid)
}

// Leverage returns the diagonal of the hat matrix.
func (rslt *GeomResults) Leverage() []float64 {
	return slices.Clone(rslt.leverage)
}

// LeverageScale returns sqrt(1 - leverage), the factor used to
// standardize residuals.
func (rslt *GeomResults) LeverageScale() []float64 {
	return slices.Clone(rslt.hscale)
}

// CooksDistance returns Cook's distance for each observation.
func (rslt *GeomResults) CooksDistance() []float64 {
	return slices.Clone(rslt.cooks)
}

// VCovMat returns the covariance matrix of the coefficients,
// (X'WX)^-1 at the fitted values.
func (rslt *GeomResults) VCovMat() *mat.SymDense {
	return mat.NewSymDense(rslt.numParams, rslt.VCov())
}

// HatMatrix returns the n x n hat matrix X (X'WX)^-1 X' W.
func (rslt *GeomResults) HatMatrix() *mat.Dense {

	n, _ := rslt.x.Dims()

	var xc, h mat.Dense
	xc.Mul(rslt.x, rslt.vcovMat)
	h.Mul(&xc, rslt.x.T())

	col := make([]float64, n)
	for j := 0; j < n; j++ {
		mat.Col(col, j, &h)
		floats.Scale(rslt.wgt[j], col)
		h.SetCol(j, col)
	}

	return &h
}

// PredictMean returns the mean exp(X * params) + 1 for each row of
// the covariate matrix x.
func (rslt *GeomResults) PredictMean(x mat.Matrix) []float64 {

	_, p := x.Dims()
	if p != rslt.numParams {
		panic(mat.ErrShape)
	}

	var lp mat.VecDense
	lp.MulVec(x, mat.NewVecDense(p, rslt.Params()))

	mn := make([]float64, lp.Len())
	GeomLink.InvLink(lp.RawVector().Data, mn)

	return mn
}
