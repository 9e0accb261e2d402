package dataio

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
)

// Description holds summary statistics of a variable.
type Description struct {
	N        int
	Mean     float64
	Median   float64
	Variance float64
	Min      float64
	Max      float64
}

// Describe returns summary statistics of y.  The variance is the
// sample variance.
func Describe(y []float64) (Description, error) {

	var desc Description
	data := stats.Float64Data(y)

	mean, err := stats.Mean(data)
	if err != nil {
		return desc, err
	}

	median, err := stats.Median(data)
	if err != nil {
		return desc, err
	}

	min, err := stats.Min(data)
	if err != nil {
		return desc, err
	}

	max, err := stats.Max(data)
	if err != nil {
		return desc, err
	}

	// The sample variance needs two observations.
	var va float64
	if len(y) > 1 {
		va, err = stats.SampleVariance(data)
		if err != nil {
			return desc, err
		}
	}

	desc = Description{
		N:        len(y),
		Mean:     mean,
		Median:   median,
		Variance: va,
		Min:      min,
		Max:      max,
	}

	return desc, nil
}

// String returns a one-line-per-statistic rendering of the description.
func (d Description) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "N:         %d\n", d.N)
	fmt.Fprintf(&b, "Mean:      %.4f\n", d.Mean)
	fmt.Fprintf(&b, "Median:    %.4f\n", d.Median)
	fmt.Fprintf(&b, "Variance:  %.4f\n", d.Variance)
	fmt.Fprintf(&b, "Min:       %.4f\n", d.Min)
	fmt.Fprintf(&b, "Max:       %.4f\n", d.Max)
	return b.String()
}
