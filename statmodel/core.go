package statmodel

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"
)

type Dtype = float64

// HessType indicates the type of a Hessian matrix for a log-likelihood.
type HessType int

// ObsHess (observed Hessian) and ExpHess (expected Hessian) are the two type of log-likelihood
// Hessian matrices
const (
	ObsHess HessType = iota
	ExpHess
)

// RegFitter is a regression model that can be fit to data.
type RegFitter interface {

	// Number of parameters in the model.
	NumParams() int

	// Number of observations in the data set
	NumObs() int

	// The log-likelihood function
	LogLike([]float64) float64
}

// BaseResults contains the results after fitting a model to data.
// All derived quantities are computed when the value is constructed,
// so a BaseResults is never modified after NewBaseResults returns.
// The slice accessors return copies.
type BaseResults struct {
	model   RegFitter
	loglike float64
	params  []float64
	xnames  []string
	vcov    []float64
	stderr  []float64
	zscores []float64
	pvalues []float64
}

// NewBaseResults returns a BaseResults corresponding to the given fitted model.
// The covariance matrix vcov is vectorized in row-major order.  If vcov is nil,
// the standard errors, Z-scores and p-values are nil as well.
func NewBaseResults(model RegFitter, loglike float64, params []float64, xnames []string, vcov []float64) BaseResults {

	rslt := BaseResults{
		model:   model,
		loglike: loglike,
		params:  slices.Clone(params),
		xnames:  slices.Clone(xnames),
		vcov:    slices.Clone(vcov),
	}

	if vcov == nil {
		return rslt
	}

	p := len(params)
	if len(vcov) != p*p {
		msg := fmt.Sprintf("vcov has length %d, expected %d\n", len(vcov), p*p)
		panic(msg)
	}

	rslt.stderr = make([]float64, p)
	rslt.zscores = make([]float64, p)
	rslt.pvalues = make([]float64, p)
	for i := range params {
		rslt.stderr[i] = math.Sqrt(vcov[i*p+i])
		rslt.zscores[i] = params[i] / rslt.stderr[i]
		rslt.pvalues[i] = 2 * distuv.UnitNormal.CDF(-math.Abs(rslt.zscores[i]))
	}

	return rslt
}

// Model produces the model value used to produce the results.
func (rslt *BaseResults) Model() RegFitter {
	return rslt.model
}

// Names returns the covariate names for the variables in the model.
func (rslt *BaseResults) Names() []string {
	return slices.Clone(rslt.xnames)
}

// Params returns the point estimates for the parameters in the model.
func (rslt *BaseResults) Params() []float64 {
	return slices.Clone(rslt.params)
}

// VCov returns the sampling variance/covariance model for the parameters in the model.
// The matrix is vetorized to one dimension.
func (rslt *BaseResults) VCov() []float64 {
	return slices.Clone(rslt.vcov)
}

// LogLike returns the log-likelihood or objective function value for the fitted model.
func (rslt *BaseResults) LogLike() float64 {
	return rslt.loglike
}

// StdErr returns the standard errors for the parameters in the model.
func (rslt *BaseResults) StdErr() []float64 {
	return slices.Clone(rslt.stderr)
}

// ZScores returns the Z-scores (the parameter estimates divided by the standard errors).
func (rslt *BaseResults) ZScores() []float64 {
	return slices.Clone(rslt.zscores)
}

// PValues returns the p-values for the null hypothesis that each parameter's population
// value is equal to zero.
func (rslt *BaseResults) PValues() []float64 {
	return slices.Clone(rslt.pvalues)
}
