package geom

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kshedden/geomreg/statmodel"
)

// Simulate generates n observations from a geometric GLM with the
// given coefficients.  The first coefficient is the intercept, the
// remaining coefficients multiply independent standard normal
// covariates named x1, x2, ...  The outcome is named y.
func Simulate(n int, coeff []float64, src rand.Source) statmodel.Dataset {

	if len(coeff) == 0 {
		panic("Simulate: at least one coefficient is required")
	}

	nvar := len(coeff)
	data := make([][]float64, nvar+1)
	varnames := []string{"y", "icept"}
	xnames := []string{"icept"}

	icept := make([]float64, n)
	one(icept)
	data[1] = icept

	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	for j := 2; j <= nvar; j++ {
		x := make([]float64, n)
		for i := range x {
			x[i] = norm.Rand()
		}
		data[j] = x
		na := fmt.Sprintf("x%d", j-1)
		varnames = append(varnames, na)
		xnames = append(xnames, na)
	}

	linpred := make([]float64, n)
	for j := 1; j <= nvar; j++ {
		for i, v := range data[j] {
			linpred[i] += coeff[j-1] * v
		}
	}

	mn := make([]float64, n)
	GeomLink.InvLink(linpred, mn)

	// If E is exponential with rate log(mu / (mu - 1)), then 1 + floor(E)
	// is geometric on 1, 2, ... with success probability 1 / mu.
	y := make([]float64, n)
	for i, m := range mn {
		ex := distuv.Exponential{Rate: math.Log(m / (m - 1)), Src: src}
		y[i] = 1 + math.Floor(ex.Rand())
	}
	data[0] = y

	return statmodel.NewDataset(data, varnames, "y", xnames)
}
