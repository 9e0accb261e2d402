package diagplot

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Lowess returns the locally weighted linear regression smooth of y
// on x, evaluated at each element of x.  frac is the proportion of
// the data used in each local fit, and iter is the number of
// robustifying iterations that downweight points with large
// residuals.  The result is aligned with x, which need not be sorted.
func Lowess(x, y []float64, frac float64, iter int) []float64 {

	n := len(x)
	if len(y) != n {
		panic("Lowess: x and y must have the same length")
	}
	if frac <= 0 || frac > 1 {
		panic("Lowess: frac must be in (0, 1]")
	}

	fit := make([]float64, n)
	if n == 0 {
		return fit
	}

	k := int(math.Ceil(frac * float64(n)))
	if k < 2 {
		k = 2
	}
	if k > n {
		k = n
	}

	rwt := make([]float64, n)
	for i := range rwt {
		rwt[i] = 1
	}

	dist := make([]float64, n)
	sdist := make([]float64, n)
	wgt := make([]float64, n)
	resid := make([]float64, n)

	for it := 0; it <= iter; it++ {

		for i, x0 := range x {

			for j, v := range x {
				dist[j] = math.Abs(v - x0)
			}
			copy(sdist, dist)
			sort.Float64s(sdist)
			h := sdist[k-1]

			for j, d := range dist {
				switch {
				case h == 0 && d == 0:
					wgt[j] = rwt[j]
				case h == 0 || d >= h:
					wgt[j] = 0
				default:
					wgt[j] = tricube(d/h) * rwt[j]
				}
			}

			fit[i] = localLinear(x, y, wgt, x0)
		}

		if it == iter {
			break
		}

		// Bisquare robustness weights
		floats.SubTo(resid, y, fit)
		for i, r := range resid {
			resid[i] = math.Abs(r)
		}
		copy(sdist, resid)
		sort.Float64s(sdist)
		s := stat.Quantile(0.5, stat.Empirical, sdist, nil)
		if s <= 1e-12*(1+floats.Norm(y, math.Inf(1))) {
			break
		}
		for i, r := range resid {
			rwt[i] = bisquare(r / (6 * s))
		}
	}

	return fit
}

// localLinear returns the weighted least squares line through (x, y),
// evaluated at x0.  If the weighted x values do not vary, the weighted
// mean of y is returned.
func localLinear(x, y, w []float64, x0 float64) float64 {

	if floats.Sum(w) == 0 {
		return math.NaN()
	}

	if !spread(x, w) {
		return stat.Mean(y, w)
	}

	alpha, beta := stat.LinearRegression(x, y, w, false)
	return alpha + beta*x0
}

// spread reports whether the x values with positive weight are not
// all equal.
func spread(x, w []float64) bool {
	first := math.NaN()
	for i, v := range x {
		if w[i] <= 0 {
			continue
		}
		if math.IsNaN(first) {
			first = v
		} else if v != first {
			return true
		}
	}
	return false
}

func tricube(u float64) float64 {
	if u >= 1 {
		return 0
	}
	v := 1 - u*u*u
	return v * v * v
}

func bisquare(u float64) float64 {
	if u >= 1 {
		return 0
	}
	v := 1 - u*u
	return v * v
}
