// Package diagplot draws diagnostic plots for a fitted geometric GLM.
package diagplot

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/kshedden/geomreg/geom"
)

// Config controls the size and file format of the plots.
type Config struct {

	// Width and Height of each plot, in inches
	Width  float64
	Height float64

	// Format is the file extension passed to gonum/plot, e.g. "png",
	// "pdf" or "svg".
	Format string

	// The span and number of robustifying iterations of the
	// LOWESS smooth.
	Frac float64
	Iter int
}

// DefaultConfig returns the default plot configuration.
func DefaultConfig() *Config {
	return &Config{
		Width:  6,
		Height: 4,
		Format: "png",
		Frac:   2.0 / 3.0,
		Iter:   3,
	}
}

// Figure is a named diagnostic plot.
type Figure struct {
	Name string
	Plot *plot.Plot
}

// Build constructs the diagnostic plots for a fitted model.  Points
// with non-finite coordinates are not drawn.
func Build(rslt *geom.GeomResults, config *Config) ([]Figure, error) {

	if config == nil {
		config = DefaultConfig()
	}

	index := make([]float64, rslt.NumObs())
	for i := range index {
		index[i] = float64(i + 1)
	}

	dr := rslt.DevianceResid()
	lev := rslt.Leverage()
	cooks := rslt.CooksDistance()

	var figs []Figure
	add := func(name string, p *plot.Plot, err error) error {
		if err != nil {
			return fmt.Errorf("diagplot: %s: %w", name, err)
		}
		figs = append(figs, Figure{Name: name, Plot: p})
		return nil
	}

	p, err := residLinpred(rslt.LinearPredictor(), dr, config)
	if err := add("resid_linpred", p, err); err != nil {
		return nil, err
	}

	p, err = qqPlot(dr)
	if err := add("resid_qq", p, err); err != nil {
		return nil, err
	}

	p, err = scatter(index, dr, "Deviance residuals", "Observation", "Deviance residual")
	if err := add("resid_index", p, err); err != nil {
		return nil, err
	}

	p, err = scatter(index, cooks, "Cook's distance", "Observation", "Cook's distance")
	if err := add("cooks_index", p, err); err != nil {
		return nil, err
	}

	p, err = scatter(lev, rslt.StdPearsonResid(), "Residuals vs leverage", "Leverage",
		"Standardized Pearson residual")
	if err := add("resid_leverage", p, err); err != nil {
		return nil, err
	}

	p, err = scatter(lev, cooks, "Cook's distance vs leverage", "Leverage", "Cook's distance")
	if err := add("cooks_leverage", p, err); err != nil {
		return nil, err
	}

	return figs, nil
}

// Save writes the diagnostic plots for a fitted model to files in
// dir, creating dir if needed.  The names of the files are returned.
func Save(rslt *geom.GeomResults, dir string, config *Config) ([]string, error) {

	if config == nil {
		config = DefaultConfig()
	}

	figs, err := Build(rslt, config)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	w := vg.Length(config.Width) * vg.Inch
	h := vg.Length(config.Height) * vg.Inch

	var fnames []string
	for _, f := range figs {
		fname := filepath.Join(dir, fmt.Sprintf("%s.%s", f.Name, config.Format))
		if err := f.Plot.Save(w, h, fname); err != nil {
			return fnames, fmt.Errorf("diagplot: %w", err)
		}
		fnames = append(fnames, fname)
	}

	return fnames, nil
}

// points pairs x and y, dropping pairs in which either value is not
// finite.
func points(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(x))
	for i := range x {
		if finite(x[i]) && finite(y[i]) {
			pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
		}
	}
	return pts
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	return p
}

func scatter(x, y []float64, title, xlabel, ylabel string) (*plot.Plot, error) {

	p := newPlot(title, xlabel, ylabel)
	if err := plotutil.AddScatters(p, points(x, y)); err != nil {
		return nil, err
	}

	return p, nil
}

// residLinpred plots the deviance residuals against the linear
// predictor, with a LOWESS smooth.
func residLinpred(lp, resid []float64, config *Config) (*plot.Plot, error) {

	p, err := scatter(lp, resid, "Residuals vs linear predictor", "Linear predictor", "Deviance residual")
	if err != nil {
		return nil, err
	}

	pts := points(lp, resid)
	if len(pts) < 2 {
		return p, nil
	}

	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
	x := make([]float64, len(pts))
	y := make([]float64, len(pts))
	for i, pt := range pts {
		x[i] = pt.X
		y[i] = pt.Y
	}

	sm := points(x, Lowess(x, y, config.Frac, config.Iter))
	line, err := plotter.NewLine(sm)
	if err != nil {
		return nil, err
	}
	line.Color = plotutil.Color(1)
	p.Add(line)

	return p, nil
}

// qqPlot plots the sorted deviance residuals against standard normal
// quantiles, with a line through the mean of the residuals having
// slope equal to their standard deviation.
func qqPlot(resid []float64) (*plot.Plot, error) {

	var r []float64
	for _, v := range resid {
		if finite(v) {
			r = append(r, v)
		}
	}
	sort.Float64s(r)

	n := len(r)
	q := make([]float64, n)
	for i := range q {
		q[i] = distuv.UnitNormal.Quantile((float64(i) + 0.5) / float64(n))
	}

	p, err := scatter(q, r, "Normal Q-Q plot", "Normal quantile", "Deviance residual")
	if err != nil {
		return nil, err
	}

	if n < 2 {
		return p, nil
	}

	m, s := stat.MeanStdDev(r, nil)
	ref := plotter.XYs{
		{X: q[0], Y: m + s*q[0]},
		{X: q[n-1], Y: m + s*q[n-1]},
	}
	line, err := plotter.NewLine(ref)
	if err != nil {
		return nil, err
	}
	line.Color = plotutil.Color(1)
	line.Dashes = plotutil.Dashes(1)
	p.Add(line)

	return p, nil
}
