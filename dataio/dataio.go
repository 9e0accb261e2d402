// Package dataio reads and writes data sets for geometric regression,
// and describes the outcome variable.
package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kshedden/geomreg/geom"
	"github.com/kshedden/geomreg/statmodel"
)

// InterceptName is the name given to the column of ones that is added
// when an intercept is requested.
const InterceptName = "icept"

// ReadCSV reads a data set from CSV text with a header row.  The
// returned dataset contains the outcome yname and the covariates
// xnames, in that order.  If xnames is nil, every column other than
// yname is used as a covariate.  If intercept is true, a column of
// ones named "icept" is added as the first covariate, replacing any
// "icept" column in the data.  Empty cells are reported as
// geom.ErrNonFiniteInput and other unparseable cells as
// geom.ErrInvalidType.
func ReadCSV(r io.Reader, yname string, xnames []string, intercept bool) (statmodel.Dataset, error) {

	rdr := csv.NewReader(r)
	rdr.TrimLeadingSpace = true
	rows, err := rdr.ReadAll()
	if err != nil {
		return statmodel.Dataset{}, fmt.Errorf("dataio: reading CSV: %w", err)
	}

	return fromRows(rows, yname, xnames, intercept)
}

// ReadXLSX reads a data set from a sheet of an Excel workbook.  If
// sheet is empty the first sheet is used.  The layout of the sheet
// and the meaning of the other arguments are as in ReadCSV.
func ReadXLSX(path, sheet, yname string, xnames []string, intercept bool) (statmodel.Dataset, error) {

	f, err := excelize.OpenFile(path)
	if err != nil {
		return statmodel.Dataset{}, fmt.Errorf("dataio: opening %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return statmodel.Dataset{}, fmt.Errorf("dataio: reading sheet %q: %w", sheet, err)
	}

	return fromRows(rows, yname, xnames, intercept)
}

// fromRows builds a dataset from a header row followed by data rows.
func fromRows(rows [][]string, yname string, xnames []string, intercept bool) (statmodel.Dataset, error) {

	if len(rows) < 2 {
		return statmodel.Dataset{}, fmt.Errorf("dataio: %w: a header row and at least one data row are required",
			geom.ErrMissingArgument)
	}

	pos := make(map[string]int)
	for j, na := range rows[0] {
		pos[strings.TrimSpace(na)] = j
	}

	if xnames == nil {
		for _, na := range rows[0] {
			na = strings.TrimSpace(na)
			if na == yname || (intercept && na == InterceptName) {
				continue
			}
			xnames = append(xnames, na)
		}
	} else if intercept {
		for _, na := range xnames {
			if na == InterceptName {
				return statmodel.Dataset{}, fmt.Errorf("dataio: %w: covariate %q duplicates the intercept",
					geom.ErrInvalidType, na)
			}
		}
	}

	names := append([]string{yname}, xnames...)
	data := make([][]float64, len(names))
	nobs := len(rows) - 1

	for k, na := range names {
		j, ok := pos[na]
		if !ok {
			return statmodel.Dataset{}, fmt.Errorf("dataio: %w: column %q not found", geom.ErrMissingArgument, na)
		}

		col := make([]float64, nobs)
		for i, row := range rows[1:] {
			var cell string
			if j < len(row) {
				cell = strings.TrimSpace(row[j])
			}
			if cell == "" {
				return statmodel.Dataset{}, fmt.Errorf("dataio: %w: column %q, row %d: missing value",
					geom.ErrNonFiniteInput, na, i+2)
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return statmodel.Dataset{}, fmt.Errorf("dataio: %w: column %q, row %d: cannot parse %q",
					geom.ErrInvalidType, na, i+2, cell)
			}
			col[i] = v
		}
		data[k] = col
	}

	if intercept {
		icept := make([]float64, nobs)
		for i := range icept {
			icept[i] = 1
		}
		data = append([][]float64{data[0], icept}, data[1:]...)
		names = append([]string{yname, InterceptName}, xnames...)
		xnames = append([]string{InterceptName}, xnames...)
	}

	return statmodel.NewDataset(data, names, yname, xnames), nil
}

// WriteCSV writes all variables of the dataset as CSV, with a header
// row of variable names.
func WriteCSV(w io.Writer, data statmodel.Dataset) error {

	wtr := csv.NewWriter(w)

	if err := wtr.Write(data.Names()); err != nil {
		return err
	}

	cols := data.Data()
	row := make([]string, len(cols))
	for i := 0; i < data.NumObs(); i++ {
		for j, col := range cols {
			row[j] = strconv.FormatFloat(col[i], 'g', -1, 64)
		}
		if err := wtr.Write(row); err != nil {
			return err
		}
	}

	wtr.Flush()
	return wtr.Error()
}
