package geom

import (
	"fmt"

	"github.com/kshedden/geomreg/statmodel"
)

// GeomSummary summarizes a fitted geometric GLM.
type GeomSummary struct {

	// The results structure
	results *GeomResults

	// Transform the parameters with this function.  If nil,
	// no transformation is applied.  If paramXform is provided,
	// the standard error and Z-score are not shown.
	paramXform func(float64) float64

	// Messages that are appended to the table
	messages []string
}

// Summary returns a summary of the model results, suitable for
// printing.
func (rslt *GeomResults) Summary() *GeomSummary {
	return &GeomSummary{
		results: rslt,
	}
}

// SetScale sets the scale on which the parameter results are
// displayed in the summary.  'xf' is a function that maps
// parameters and confidence limits from the linear scale to
// the desired scale.  'msg' is a message that is appended
// to the summary table.
func (gs *GeomSummary) SetScale(xf func(float64) float64, msg string) *GeomSummary {
	gs.paramXform = xf
	gs.messages = append(gs.messages, msg)
	return gs
}

// String returns a string representation of a summary table for the model.
func (gs *GeomSummary) String() string {

	rslt := gs.results

	xf := func(x float64) float64 {
		return x
	}
	if gs.paramXform != nil {
		xf = gs.paramXform
	}

	sum := &statmodel.SummaryTable{
		Title: "Geometric regression analysis (IWLS)",
		Msg:   gs.messages,
	}

	sum.Top = []string{
		fmt.Sprintf("Link:        %s", GeomLink.Name),
		fmt.Sprintf("Variance:    %s", GeomVariance.Name),
		fmt.Sprintf("Num obs:     %d", rslt.NumObs()),
		fmt.Sprintf("Num params:  %d", rslt.NumParams()),
		fmt.Sprintf("Df resid:    %d", rslt.DFResid()),
		fmt.Sprintf("Deviance:    %.4f", rslt.Deviance()),
		fmt.Sprintf("Log like:    %.4f", rslt.LogLike()),
		fmt.Sprintf("AIC:         %.4f", rslt.AIC()),
		fmt.Sprintf("Iterations:  %d", rslt.Iterations()),
	}

	// Create estimate and CI for the parameters
	var par, lcb, ucb []float64
	se := rslt.StdErr()
	for j, p := range rslt.Params() {
		par = append(par, xf(p))
		lcb = append(lcb, xf(p-2*se[j]))
		ucb = append(ucb, xf(p+2*se[j]))
	}

	if gs.paramXform == nil {
		sum.ColNames = []string{"Variable   ", "Parameter", "SE", "LCB", "UCB", "Z-score", "P-value"}
		sum.ColFmt = []statmodel.Fmter{statmodel.StringFmt, statmodel.FloatFmt, statmodel.FloatFmt,
			statmodel.FloatFmt, statmodel.FloatFmt, statmodel.FloatFmt, statmodel.FloatFmt}
		sum.Cols = []interface{}{
			rslt.Names(),
			par,
			se,
			lcb,
			ucb,
			rslt.ZScores(),
			rslt.PValues(),
		}
	} else {
		sum.ColNames = []string{"Variable   ", "Parameter", "LCB", "UCB", "P-value"}
		sum.ColFmt = []statmodel.Fmter{statmodel.StringFmt, statmodel.FloatFmt, statmodel.FloatFmt,
			statmodel.FloatFmt, statmodel.FloatFmt}
		sum.Cols = []interface{}{
			rslt.Names(),
			par,
			lcb,
			ucb,
			rslt.PValues(),
		}
	}

	return sum.String()
}
