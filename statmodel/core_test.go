package statmodel

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func data1() ([]string, [][]Dtype) {
	x := [][]Dtype{
		{2, 1, 3, 2, 1, 1, 5},
		{1, 1, 1, 1, 1, 1, 1},
		{4, 1, -1, 3, 5, -5, 3},
	}
	return []string{"y", "x1", "x2"}, x
}

// A mock model for testing
type Mock struct {
	data Dataset
}

func (m *Mock) LogLike(params []float64) float64 {
	return 0
}

func (m *Mock) NumParams() int {
	return len(m.data.XNames())
}

func (m *Mock) NumObs() int {
	return m.data.NumObs()
}

func TestResult1(t *testing.T) {

	na, da := data1()
	ds := NewDataset(da, na, "y", []string{"x1", "x2"})
	model := &Mock{data: ds}

	params := []float64{1, 2}
	vcov := []float64{4, 1, 1, 0.25}

	r := NewBaseResults(model, -3, params, ds.XNames(), vcov)

	assert.Equal(t, []float64{2, 0.5}, r.StdErr())
	assert.Equal(t, []float64{0.5, 4}, r.ZScores())
	assert.InDelta(t, 0.617075, r.PValues()[0], 1e-6)
	assert.InDelta(t, 6.334248e-5, r.PValues()[1], 1e-9)
	assert.Equal(t, -3.0, r.LogLike())
	assert.Equal(t, model, r.Model())
}

func TestResultsNotShared(t *testing.T) {

	na, da := data1()
	ds := NewDataset(da, na, "y", []string{"x1", "x2"})

	params := []float64{1, 2}
	vcov := []float64{4, 1, 1, 0.25}
	r := NewBaseResults(&Mock{data: ds}, 0, params, ds.XNames(), vcov)

	// Changes to the inputs or to returned slices do not reach the results.
	params[0] = 100
	vcov[0] = 100
	r.Params()[1] = 100
	r.StdErr()[0] = 100
	r.Names()[0] = "z"

	assert.Equal(t, []float64{1, 2}, r.Params())
	assert.Equal(t, []float64{4, 1, 1, 0.25}, r.VCov())
	assert.Equal(t, []float64{2, 0.5}, r.StdErr())
	assert.Equal(t, []string{"x1", "x2"}, r.Names())
}

func TestNoVCov(t *testing.T) {

	na, da := data1()
	ds := NewDataset(da, na, "y", []string{"x1", "x2"})
	r := NewBaseResults(&Mock{data: ds}, 0, []float64{1, 1}, ds.XNames(), nil)

	assert.Nil(t, r.StdErr())
	assert.Nil(t, r.ZScores())
	assert.Nil(t, r.PValues())
}

func TestDataset(t *testing.T) {

	na, da := data1()
	ds := NewDataset(da, na, "y", []string{"x2", "x1"})

	require.Equal(t, 7, ds.NumObs())
	assert.Equal(t, da[0], ds.Y())

	x := ds.X()
	require.Len(t, x, 2)
	assert.Equal(t, da[2], x[0])
	assert.Equal(t, da[1], x[1])

	_, ok := ds.Column("z")
	assert.False(t, ok)

	assert.Panics(t, func() { NewDataset(da, []string{"y"}, "y", nil) })
}

func TestSummaryTable(t *testing.T) {

	tab := &SummaryTable{
		Title:    "Test table",
		Top:      []string{"Num obs: 7", "Df: 5", "Deviance: 1.0"},
		ColNames: []string{"Variable", "Estimate"},
		ColFmt:   []Fmter{StringFmt, FloatFmt},
		Cols:     []interface{}{[]string{"a", "bcd"}, []float64{1, math.Pi}},
		Msg:      []string{"a message"},
	}

	s := tab.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")

	assert.Equal(t, "Test table", strings.TrimSpace(lines[0]))
	assert.True(t, strings.HasPrefix(lines[1], "==="))
	assert.Contains(t, s, "3.1416")
	assert.Contains(t, s, "Deviance: 1.0")
	assert.Equal(t, "a message", lines[len(lines)-1])
}
