package geom

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// geomLogLike returns the geometric log-likelihood
//
//	sum_i (y_i - 1) log(1 - pi_i) + log(pi_i),  pi_i = 1 / mu_i.
func geomLogLike(y, mn []float64) float64 {
	var ll float64
	for i := range y {
		pr := 1 / mn[i]
		ll += (y[i]-1)*math.Log(1-pr) + math.Log(pr)
	}
	return ll
}

// devianceTerm computes lc = (y - 1) log((y - 1) / (mu - 1)).  Any
// value that is not finite, which happens when y = 1, is set to zero.
func devianceTerm(y, mn, lc []float64) {
	for i := range y {
		v := (y[i] - 1) * math.Log((y[i]-1)/(mn[i]-1))
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		lc[i] = v
	}
}

// unitDeviance computes half of each observation's deviance
// contribution, lc + y log(mu / y).
func unitDeviance(y, mn, lc, ud []float64) {
	for i := range y {
		ud[i] = lc[i] + y[i]*math.Log(mn[i]/y[i])
	}
}

// geomDeviance returns the deviance 2 * sum(lc + y log(mu / y)).
func geomDeviance(y, mn []float64) float64 {
	lc := make([]float64, len(y))
	ud := make([]float64, len(y))
	devianceTerm(y, mn, lc)
	unitDeviance(y, mn, lc, ud)
	return 2 * floats.Sum(ud)
}
