package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kshedden/geomreg/dataio"
	"github.com/kshedden/geomreg/geom"
	"github.com/kshedden/geomreg/geom/diagplot"
	"github.com/kshedden/geomreg/statmodel"
)

type fitOptions struct {
	data        string
	yname       string
	xnames      []string
	noIntercept bool
	sheet       string
	tol         float64
	maxiter     int
	plots       string
	format      string
	exp         bool
	verbose     bool
}

func newFitCmd() *cobra.Command {

	var opts fitOptions

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a geometric regression model",
		Long: `Fit a geometric regression model with the shifted log link.

The data are read from a CSV file with a header row, or from a sheet
of an Excel workbook if the file name ends in .xlsx.  The outcome must
contain positive integers.

Example: geomfit fit --data visits.csv --y visits --x age,dose --plots diag`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFit(cmd.OutOrStdout(), cmd.ErrOrStderr(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.data, "data", "", "CSV or XLSX file containing the data")
	cmd.Flags().StringVar(&opts.yname, "y", "", "Name of the outcome variable")
	cmd.Flags().StringSliceVar(&opts.xnames, "x", nil, "Covariate names (default: all other columns)")
	cmd.Flags().BoolVar(&opts.noIntercept, "no-intercept", false, "Do not add an intercept")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "Sheet name for XLSX files (default: first sheet)")
	cmd.Flags().Float64Var(&opts.tol, "tol", envFloat("GEOMFIT_TOL", 1e-6), "Convergence tolerance for the score")
	cmd.Flags().IntVar(&opts.maxiter, "maxiter", envInt("GEOMFIT_MAXITER", 100), "Maximum number of IWLS iterations")
	cmd.Flags().StringVar(&opts.plots, "plots", os.Getenv("GEOMFIT_PLOTS"), "Directory for diagnostic plots")
	cmd.Flags().StringVar(&opts.format, "format", "png", "File format of the plots (png, pdf, svg)")
	cmd.Flags().BoolVar(&opts.exp, "exp", false, "Report exponentiated coefficients")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Log the IWLS iterations")

	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}

func loadData(opts *fitOptions) (statmodel.Dataset, error) {

	intercept := !opts.noIntercept

	if strings.EqualFold(filepath.Ext(opts.data), ".xlsx") {
		return dataio.ReadXLSX(opts.data, opts.sheet, opts.yname, opts.xnames, intercept)
	}

	f, err := os.Open(opts.data)
	if err != nil {
		return statmodel.Dataset{}, err
	}
	defer f.Close()

	return dataio.ReadCSV(f, opts.yname, opts.xnames, intercept)
}

func runFit(out, errw io.Writer, opts *fitOptions) error {

	data, err := loadData(opts)
	if err != nil {
		return err
	}

	desc, err := dataio.Describe(data.Y())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Outcome: %s\n%s\n", data.YName(), desc)

	config := geom.DefaultConfig()
	config.Tol = opts.tol
	config.MaxIter = opts.maxiter
	if opts.verbose {
		config.Log = log.New(errw, "geomfit: ", 0)
	}

	model, err := geom.NewGeomFromDataset(data, config)
	if err != nil {
		return err
	}

	rslt, err := model.Fit()
	if err != nil {
		return err
	}

	summary := rslt.Summary()
	if opts.exp {
		summary = summary.SetScale(math.Exp, "Parameters are exponentiated")
	}
	fmt.Fprintln(out, summary.String())

	if opts.plots != "" {
		pc := diagplot.DefaultConfig()
		pc.Format = opts.format
		fnames, err := diagplot.Save(rslt, opts.plots, pc)
		if err != nil {
			return err
		}
		for _, fn := range fnames {
			fmt.Fprintf(out, "Wrote %s\n", fn)
		}
	}

	return nil
}
