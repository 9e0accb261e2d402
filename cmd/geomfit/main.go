// Command geomfit fits geometric regression models to data in CSV or
// Excel files, and simulates data from such models.
//
// Defaults for some flags are taken from the environment, which may be
// populated from a .env file in the working directory:
//
//	GEOMFIT_TOL      convergence tolerance for the score (default 1e-6)
//	GEOMFIT_MAXITER  maximum number of IWLS iterations (default 100)
//	GEOMFIT_PLOTS    directory for diagnostic plots (default none)
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("geomfit: reading .env: %v", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {

	rootCmd := &cobra.Command{
		Use:           "geomfit",
		Short:         "Geometric regression fitted by IWLS",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newFitCmd(),
		newSimulateCmd(),
	)

	return rootCmd
}

func envFloat(name string, dflt float64) float64 {
	if s, ok := os.LookupEnv(name); ok {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
		log.Printf("geomfit: ignoring %s=%q", name, s)
	}
	return dflt
}

func envInt(name string, dflt int) int {
	if s, ok := os.LookupEnv(name); ok {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
		log.Printf("geomfit: ignoring %s=%q", name, s)
	}
	return dflt
}
