package geom

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestSimulateData(t *testing.T) {

	data := Simulate(200, []float64{0.5, -0.2, 0.1}, rand.NewPCG(1, 2))

	assert.Equal(t, []string{"y", "icept", "x1", "x2"}, data.Names())
	assert.Equal(t, []string{"icept", "x1", "x2"}, data.XNames())
	assert.Equal(t, 200, data.NumObs())

	for _, v := range data.Y() {
		assert.GreaterOrEqual(t, v, 1.0)
		assert.Equal(t, math.Trunc(v), v)
	}

	icept, ok := data.Column("icept")
	require.True(t, ok)
	assert.Equal(t, 200.0, floats.Sum(icept))

	// The same seed gives the same data.
	again := Simulate(200, []float64{0.5, -0.2, 0.1}, rand.NewPCG(1, 2))
	assert.Equal(t, data.Data(), again.Data())

	assert.Panics(t, func() { Simulate(10, nil, rand.NewPCG(1, 2)) })
}

func TestSimulateFit(t *testing.T) {

	for _, coeff := range [][]float64{
		{0.5},
		{1, 0.3},
		{0.2, -0.5, 0.25},
	} {
		data := Simulate(5000, coeff, rand.NewPCG(3, 4))

		model, err := NewGeomFromDataset(data, nil)
		require.NoError(t, err)
		rslt, err := model.Fit()
		require.NoError(t, err)

		for j, b := range rslt.Params() {
			assert.InDelta(t, coeff[j], b, 0.1, "coefficient %d of %v", j, coeff)
			se := rslt.StdErr()[j]
			assert.Less(t, math.Abs(b-coeff[j]), 5*se)
		}
	}
}

func TestSimulateInterceptOnly(t *testing.T) {

	data := Simulate(1000, []float64{0.8}, rand.NewPCG(5, 6))
	model, err := NewGeomFromDataset(data, nil)
	require.NoError(t, err)
	rslt, err := model.Fit()
	require.NoError(t, err)

	// The MLE of the intercept is log(mean(y) - 1).
	y := data.Y()
	mean := floats.Sum(y) / float64(len(y))
	assert.InDelta(t, math.Log(mean-1), rslt.Params()[0], 1e-8)
}
