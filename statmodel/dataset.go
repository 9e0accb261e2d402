package statmodel

import "fmt"

// Dataset holds column-major data for a regression model, together
// with the names of all variables, the outcome variable, and the
// covariates.
type Dataset struct {
	data     [][]Dtype
	varnames []string
	yname    string
	xnames   []string
}

// NewDataset returns a Dataset.  data[j] holds the values of the
// variable named varnames[j].  yname and xnames must be elements of
// varnames.
func NewDataset(data [][]Dtype, varnames []string, yname string, xnames []string) Dataset {

	if len(data) != len(varnames) {
		msg := fmt.Sprintf("NewDataset: %d columns but %d names\n", len(data), len(varnames))
		panic(msg)
	}

	return Dataset{
		data:     data,
		varnames: varnames,
		yname:    yname,
		xnames:   xnames,
	}
}

// Data returns all columns of the dataset.
func (ds Dataset) Data() [][]Dtype {
	return ds.data
}

// Names returns the names of all variables in the dataset.
func (ds Dataset) Names() []string {
	return ds.varnames
}

// YName returns the name of the outcome variable.
func (ds Dataset) YName() string {
	return ds.yname
}

// XNames returns the names of the covariates.
func (ds Dataset) XNames() []string {
	return ds.xnames
}

// NumObs returns the number of observations (rows).
func (ds Dataset) NumObs() int {
	if len(ds.data) == 0 {
		return 0
	}
	return len(ds.data[0])
}

// Column returns the data for the variable with the given name.
func (ds Dataset) Column(name string) ([]Dtype, bool) {
	for j, na := range ds.varnames {
		if na == name {
			return ds.data[j], true
		}
	}
	return nil, false
}

// Y returns the outcome variable, or nil if it is not present.
func (ds Dataset) Y() []Dtype {
	y, _ := ds.Column(ds.yname)
	return y
}

// X returns the covariate columns in the order of XNames.  A name
// that is not present yields a nil column.
func (ds Dataset) X() [][]Dtype {
	x := make([][]Dtype, len(ds.xnames))
	for j, na := range ds.xnames {
		x[j], _ = ds.Column(na)
	}
	return x
}
