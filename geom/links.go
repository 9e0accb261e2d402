package geom

import (
	"math"
)

// VecFunc is a function with two float64 array arguments.
type VecFunc func([]float64, []float64)

// Link specifies the functions used to move between the linear
// predictor and the mean for a geometric outcome.
type Link struct {
	Name string

	// Link maps the mean to the linear predictor, eta = log(mu - 1).
	Link VecFunc

	// InvLink maps the linear predictor to the mean, mu = exp(eta) + 1.
	InvLink VecFunc

	// Deriv calculates the derivative of the link function,
	// 1 / (mu - 1).
	Deriv VecFunc
}

// Variance represents the geometric variance function.
type Variance struct {
	Name string
	Var  VecFunc
}

// GeomLink is the shifted log link for outcomes on 1, 2, ...
var GeomLink = Link{
	Name:    "ShiftedLog",
	Link:    shiftLogFunc,
	InvLink: shiftExpFunc,
	Deriv:   shiftLogDerivFunc,
}

// GeomVariance is the variance function (mu - 1) * mu.
var GeomVariance = Variance{
	Name: "Geometric",
	Var:  geomVar,
}

func shiftLogFunc(x []float64, y []float64) {
	for i, v := range x {
		y[i] = math.Log(v - 1)
	}
}

func shiftExpFunc(x []float64, y []float64) {
	for i, v := range x {
		y[i] = math.Exp(v) + 1
	}
}

func shiftLogDerivFunc(x []float64, y []float64) {
	for i, v := range x {
		y[i] = 1 / (v - 1)
	}
}

func geomVar(mn []float64, v []float64) {
	for i, m := range mn {
		v[i] = (m - 1) * m
	}
}

// irlsWeights computes the IWLS weights (mu - 1)^2 / V.  This is
// algebraically (mu - 1) / mu, but is evaluated in the long form.
func irlsWeights(mn, va, w []float64) {
	for i, m := range mn {
		w[i] = (m - 1) * (m - 1) / va[i]
	}
}

// adjustedResponse computes the working response
// z = eta + (y - mu) / (mu - 1).
func adjustedResponse(y, linpred, mn, z []float64) {
	for i := range y {
		z[i] = linpred[i] + (y[i]-mn[i])/(mn[i]-1)
	}
}

// zero sets all elements of the slice to 0
func zero(x []float64) {
	for i := range x {
		x[i] = 0
	}
}

// one sets all elements of the slice to 1
func one(x []float64) {
	for i := range x {
		x[i] = 1
	}
}
