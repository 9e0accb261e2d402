package dataio

import (
	"bytes"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kshedden/geomreg/geom"
)

const csv1 = `y,x1,x2,z
1,0.5,2,a
3,1.2,-1,b
2,-0.3,0,c
`

func TestReadCSV(t *testing.T) {

	data, err := ReadCSV(strings.NewReader(csv1), "y", []string{"x2", "x1"}, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"y", "icept", "x2", "x1"}, data.Names())
	assert.Equal(t, []string{"icept", "x2", "x1"}, data.XNames())
	assert.Equal(t, "y", data.YName())
	assert.Equal(t, 3, data.NumObs())

	assert.Equal(t, []float64{1, 3, 2}, data.Y())
	assert.Equal(t, [][]float64{{1, 1, 1}, {2, -1, 0}, {0.5, 1.2, -0.3}}, data.X())
}

func TestReadCSVNoIntercept(t *testing.T) {

	data, err := ReadCSV(strings.NewReader(csv1), "y", []string{"x1"}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"y", "x1"}, data.Names())
	assert.Equal(t, []string{"x1"}, data.XNames())
}

func TestReadCSVErrors(t *testing.T) {

	// Column z is not numeric, and it is used by default.
	_, err := ReadCSV(strings.NewReader(csv1), "y", nil, true)
	assert.ErrorIs(t, err, geom.ErrInvalidType)

	_, err = ReadCSV(strings.NewReader(csv1), "y", []string{"x3"}, true)
	assert.ErrorIs(t, err, geom.ErrMissingArgument)

	_, err = ReadCSV(strings.NewReader(csv1), "w", []string{"x1"}, true)
	assert.ErrorIs(t, err, geom.ErrMissingArgument)

	_, err = ReadCSV(strings.NewReader("y,x1\n"), "y", []string{"x1"}, true)
	assert.ErrorIs(t, err, geom.ErrMissingArgument)

	// An empty cell is a missing value, text is not a number.
	_, err = ReadCSV(strings.NewReader("y,x1\n1,\n"), "y", []string{"x1"}, true)
	assert.ErrorIs(t, err, geom.ErrNonFiniteInput)

	_, err = ReadCSV(strings.NewReader("y,x1\n1,abc\n"), "y", []string{"x1"}, true)
	assert.ErrorIs(t, err, geom.ErrInvalidType)

	_, err = ReadCSV(strings.NewReader("y,icept,x1\n1,1,2\n"), "y", []string{"icept", "x1"}, true)
	assert.ErrorIs(t, err, geom.ErrInvalidType)
}

func TestReadCSVInterceptColumn(t *testing.T) {

	const text = `y,icept,x1
1,1,0.5
3,1,1.2
2,1,-0.3
`

	// An existing intercept column is replaced, not duplicated.
	data, err := ReadCSV(strings.NewReader(text), "y", nil, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "icept", "x1"}, data.Names())
	assert.Equal(t, []string{"icept", "x1"}, data.XNames())

	data, err = ReadCSV(strings.NewReader(text), "y", nil, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"icept", "x1"}, data.XNames())
	assert.Equal(t, [][]float64{{1, 1, 1}, {0.5, 1.2, -0.3}}, data.X())
}

func TestCSVRoundTrip(t *testing.T) {

	data := geom.Simulate(50, []float64{0.3, 0.5}, rand.NewPCG(7, 8))

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, data))

	// The simulated data already has an intercept column.
	back, err := ReadCSV(&buf, "y", data.XNames(), false)
	require.NoError(t, err)

	assert.Equal(t, data.Names(), back.Names())
	assert.Equal(t, data.Data(), back.Data())
}

func TestReadXLSX(t *testing.T) {

	f := excelize.NewFile()
	sheet := "Data"
	f.SetSheetName(f.GetSheetName(0), sheet)

	rows := [][]interface{}{
		{"y", "x1"},
		{1, 0.5},
		{4, 1.5},
		{2, -0.5},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	fname := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, f.SaveAs(fname))

	for _, sh := range []string{"", sheet} {
		data, err := ReadXLSX(fname, sh, "y", []string{"x1"}, true)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 4, 2}, data.Y())
		assert.Equal(t, [][]float64{{1, 1, 1}, {0.5, 1.5, -0.5}}, data.X())
	}

	_, err := ReadXLSX(fname, "Missing", "y", []string{"x1"}, true)
	assert.Error(t, err)

	_, err = ReadXLSX(filepath.Join(t.TempDir(), "none.xlsx"), "", "y", nil, true)
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {

	desc, err := Describe([]float64{1, 3, 2, 5, 1, 2, 4, 1, 7, 2})
	require.NoError(t, err)

	assert.Equal(t, 10, desc.N)
	assert.InDelta(t, 2.8, desc.Mean, 1e-12)
	assert.InDelta(t, 2.0, desc.Median, 1e-12)
	assert.InDelta(t, 3.955555555555556, desc.Variance, 1e-12)
	assert.Equal(t, 1.0, desc.Min)
	assert.Equal(t, 7.0, desc.Max)
	assert.Contains(t, desc.String(), "Mean:      2.8000")

	desc, err = Describe([]float64{3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, desc.Variance)

	_, err = Describe(nil)
	assert.Error(t, err)
}

func TestReadXLSXMissingCell(t *testing.T) {

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "y"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "x1"))
	require.NoError(t, f.SetCellValue(sheet, "A2", 2))
	require.NoError(t, f.SetCellValue(sheet, "B2", 0.5))
	require.NoError(t, f.SetCellValue(sheet, "A3", 3))

	fname := filepath.Join(t.TempDir(), "missing.xlsx")
	require.NoError(t, f.SaveAs(fname))

	_, err := ReadXLSX(fname, "", "y", []string{"x1"}, true)
	assert.ErrorIs(t, err, geom.ErrNonFiniteInput)
}
