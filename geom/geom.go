package geom

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/kshedden/geomreg/statmodel"
)

// Config defines configuration parameters for a geometric GLM.
type Config struct {

	// Starting values for the coefficients, optional.  If nil, the
	// fit starts from the zero vector.
	Start []float64

	// The IWLS iterations stop once the sum of the absolute values
	// of the score vector is no larger than Tol.
	Tol float64

	// The maximum number of IWLS iterations.  ErrNonConvergence is
	// returned if the score has not reached Tol after this many
	// iterations.
	MaxIter int

	// If not nil, write log messages here
	Log *log.Logger
}

// DefaultConfig returns default configuration values for a geometric GLM.
func DefaultConfig() *Config {
	return &Config{
		Tol:     1e-6,
		MaxIter: 100,
	}
}

// Geom is a generalized linear model for a geometric outcome.
type Geom struct {

	// The outcome variable
	y []float64

	// The covariates, stored by column
	xdat [][]float64

	// The design matrix
	x *mat.Dense

	// Names of the covariates
	xnames []string

	// Starting values
	start []float64

	tol     float64
	maxiter int

	// If not nil, write log messages here
	log *log.Logger
}

// NewGeom validates the data and returns a model that can be fit by
// calling Fit.  The rows of x are the observations, aligned with y.
// If xnames is nil the covariates are named x1, x2, ...  If config is
// nil, DefaultConfig is used.  The returned model holds its own copies
// of y and x.
func NewGeom(y []float64, x *mat.Dense, xnames []string, config *Config) (*Geom, error) {

	if config == nil {
		config = DefaultConfig()
	}
	if !(config.Tol >= 0) || config.MaxIter < 0 {
		return nil, invalid(ErrInvalidDomain, "Tol (%v) and MaxIter (%d) must be non-negative",
			config.Tol, config.MaxIter)
	}

	start, err := Validate(y, x, config.Start)
	if err != nil {
		return nil, err
	}

	_, p := x.Dims()
	if xnames == nil {
		for j := 0; j < p; j++ {
			xnames = append(xnames, fmt.Sprintf("x%d", j+1))
		}
	} else if len(xnames) != p {
		return nil, invalid(ErrDimensionMismatch, "%d covariate names for %d columns", len(xnames), p)
	}

	g := &Geom{
		y:       append([]float64(nil), y...),
		x:       mat.DenseCopyOf(x),
		xnames:  append([]string(nil), xnames...),
		start:   append([]float64(nil), start...),
		tol:     config.Tol,
		maxiter: config.MaxIter,
		log:     config.Log,
	}

	if g.tol == 0 {
		g.tol = 1e-6
	}
	if g.maxiter == 0 {
		g.maxiter = 100
	}

	g.xdat = make([][]float64, p)
	for j := range g.xdat {
		g.xdat[j] = mat.Col(nil, j, g.x)
	}

	return g, nil
}

// NewGeomFromDataset returns a model for the outcome and covariates
// named in the dataset.
func NewGeomFromDataset(data statmodel.Dataset, config *Config) (*Geom, error) {

	y := data.Y()
	if y == nil {
		return nil, invalid(ErrMissingArgument, "outcome variable '%s' not found", data.YName())
	}

	xnames := data.XNames()
	if len(xnames) == 0 {
		return nil, invalid(ErrMissingArgument, "no covariates specified")
	}

	n := len(y)
	if n == 0 {
		return nil, invalid(ErrInvalidType, "outcome variable '%s' is empty", data.YName())
	}

	x := mat.NewDense(n, len(xnames), nil)
	for j, col := range data.X() {
		if col == nil {
			return nil, invalid(ErrMissingArgument, "covariate '%s' not found", xnames[j])
		}
		if len(col) != n {
			return nil, invalid(ErrDimensionMismatch, "covariate '%s' has length %d, outcome has length %d",
				xnames[j], len(col), n)
		}
		x.SetCol(j, col)
	}

	return NewGeom(y, x, xnames, config)
}

// NumParams returns the number of covariates in the model.
func (g *Geom) NumParams() int {
	return len(g.xdat)
}

// NumObs returns the number of observations in the model.
func (g *Geom) NumObs() int {
	return len(g.y)
}

// Names returns the covariate names.
func (g *Geom) Names() []string {
	return g.xnames
}

// linearPredictor computes X * params into linpred.
func (g *Geom) linearPredictor(params, linpred []float64) {
	zero(linpred)
	for j, x := range g.xdat {
		floats.AddScaled(linpred, params[j], x)
	}
}

// LogLike returns the log-likelihood value for the model at the
// given coefficients.
func (g *Geom) LogLike(params []float64) float64 {

	n := g.NumObs()
	linpred := make([]float64, n)
	mn := make([]float64, n)

	g.linearPredictor(params, linpred)
	GeomLink.InvLink(linpred, mn)

	return geomLogLike(g.y, mn)
}

// Score computes the score vector (gradient of the log-likelihood)
// at the given coefficients, placing it into score.
func (g *Geom) Score(params []float64, score []float64) {

	n := g.NumObs()
	linpred := make([]float64, n)
	mn := make([]float64, n)
	deriv := make([]float64, n)
	va := make([]float64, n)
	fac := make([]float64, n)

	g.linearPredictor(params, linpred)
	GeomLink.InvLink(linpred, mn)
	GeomLink.Deriv(mn, deriv)
	GeomVariance.Var(mn, va)

	for i, y := range g.y {
		fac[i] = (y - mn[i]) / (deriv[i] * va[i])
	}

	for j, x := range g.xdat {
		score[j] = floats.Dot(fac, x)
	}
}

// Hessian computes the Hessian matrix of the log-likelihood at the
// given coefficients.  The Hessian is returned in vectorized
// (row-major) form.  Either the observed or expected Hessian can be
// calculated.
func (g *Geom) Hessian(params []float64, ht statmodel.HessType, hess []float64) {

	n := g.NumObs()
	nvar := g.NumParams()
	linpred := make([]float64, n)
	mn := make([]float64, n)
	va := make([]float64, n)
	fac := make([]float64, n)

	g.linearPredictor(params, linpred)
	GeomLink.InvLink(linpred, mn)

	switch ht {
	case statmodel.ExpHess:
		GeomVariance.Var(mn, va)
		irlsWeights(mn, va, fac)
	case statmodel.ObsHess:
		for i, y := range g.y {
			fac[i] = y * (mn[i] - 1) / (mn[i] * mn[i])
		}
	default:
		panic("geom: unknown Hessian type")
	}

	xtx := make([]float64, nvar*nvar)
	g.weightedXprod(fac, xtx)
	for i := range xtx {
		hess[i] = -xtx[i]
	}
}
