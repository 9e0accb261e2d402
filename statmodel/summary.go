package statmodel

import (
	"fmt"
	"strings"
)

// Fmter formats the elements of an array of values.  The second
// argument is the column heading.
type Fmter func(interface{}, string) []string

// SummaryTable holds the summary values for a fitted model.
type SummaryTable struct {

	// Title
	Title string

	// Column names
	ColNames []string

	// Formatters for the column values
	ColFmt []Fmter

	// Cols[j] is the j^th column.  It's concrete type should
	// be an array, e.g. of numbers or strings.
	Cols []interface{}

	// Values at the top of the summary
	Top []string

	// Messages displayed below the table
	Msg []string

	// Total width of the table
	tw int
}

// StringFmt left-justifies a column of strings to a common width.
func StringFmt(x interface{}, h string) []string {
	y := x.([]string)
	m := len(h)
	for _, s := range y {
		if len(s) > m {
			m = len(s)
		}
	}
	z := make([]string, len(y))
	for i, s := range y {
		z[i] = fmt.Sprintf("%-*s", m, s)
	}
	return z
}

// FloatFmt formats a column of numbers with four decimal places.
func FloatFmt(x interface{}, h string) []string {
	y := x.([]float64)
	z := make([]string, len(y))
	for i, v := range y {
		z[i] = fmt.Sprintf("%10.4f", v)
	}
	return z
}

// line draws a rule of the given character across the table.
func (s *SummaryTable) line(c string) string {
	return strings.Repeat(c, s.tw) + "\n"
}

// top lays out the header fields in two columns, separated by gap spaces.
func (s *SummaryTable) top(gap int) string {

	var w [2]int
	for j, x := range s.Top {
		if len(x) > w[j%2] {
			w[j%2] = len(x)
		}
	}

	var b strings.Builder
	for j, x := range s.Top {
		fmt.Fprintf(&b, "%-*s", w[j%2], x)
		if j%2 == 1 {
			b.WriteString("\n")
		} else {
			b.WriteString(strings.Repeat(" ", gap))
		}
	}

	if len(s.Top)%2 == 1 {
		b.WriteString("\n")
	}

	return b.String()
}

// String returns the table as a string.
func (s *SummaryTable) String() string {

	gap := 10

	var tab [][]string
	var wx []int
	for j, c := range s.Cols {
		u := s.ColFmt[j](c, s.ColNames[j])
		tab = append(tab, u)
		w := len(s.ColNames[j])
		if len(u) > 0 && len(u[0]) > w {
			w = len(u[0])
		}
		wx = append(wx, w+1)
	}

	// Total width of the table
	s.tw = len(s.Title)
	var cw int
	for _, w := range wx {
		cw += w
	}
	if cw > s.tw {
		s.tw = cw
	}
	var tw [2]int
	for j, x := range s.Top {
		if len(x) > tw[j%2] {
			tw[j%2] = len(x)
		}
	}
	if tw[0]+tw[1]+gap > s.tw {
		s.tw = tw[0] + tw[1] + gap
	}

	var b strings.Builder

	// Center the title
	kr := (s.tw - len(s.Title)) / 2
	if kr < 0 {
		kr = 0
	}
	b.WriteString(strings.Repeat(" ", kr))
	b.WriteString(s.Title + "\n")

	b.WriteString(s.line("="))
	if len(s.Top) > 0 {
		b.WriteString(s.top(gap))
		b.WriteString(s.line("-"))
	}

	for j, c := range s.ColNames {
		fmt.Fprintf(&b, "%*s", wx[j], c)
	}
	b.WriteString("\n")
	b.WriteString(s.line("-"))

	if len(tab) > 0 {
		for i := range tab[0] {
			for j := range tab {
				fmt.Fprintf(&b, "%*s", wx[j], tab[j][i])
			}
			b.WriteString("\n")
		}
	}
	b.WriteString(s.line("-"))

	for _, msg := range s.Msg {
		b.WriteString(msg + "\n")
	}

	return b.String()
}
