package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/kshedden/geomreg/dataio"
	"github.com/kshedden/geomreg/geom"
)

func newSimulateCmd() *cobra.Command {

	var (
		n     int
		coeff []float64
		seed  uint64
		out   string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate data from a geometric regression model",
		Long: `Simulate data from a geometric regression model and write it as CSV.

The first coefficient is the intercept.  Each further coefficient
multiplies an independent standard normal covariate, named x1, x2, ...

Example: geomfit simulate --n 500 --coeff 0.5,0.3 --seed 1 --out sim.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return fmt.Errorf("--n must be positive, got %d", n)
			}
			if len(coeff) == 0 {
				return fmt.Errorf("at least one coefficient is required")
			}
			return runSimulate(cmd.OutOrStdout(), n, coeff, seed, out)
		},
	}

	cmd.Flags().IntVar(&n, "n", 100, "Number of observations")
	cmd.Flags().Float64SliceVar(&coeff, "coeff", []float64{0.5}, "Coefficients, starting with the intercept")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default: standard output)")

	return cmd
}

func runSimulate(stdout io.Writer, n int, coeff []float64, seed uint64, out string) error {

	data := geom.Simulate(n, coeff, rand.NewPCG(seed, seed))

	if out == "" {
		return dataio.WriteCSV(stdout, data)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}

	if err := dataio.WriteCSV(f, data); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
