// Package value - LaTeX and plot rendering of computed values.
package value

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders a float the way the document layer expects:
// integral values print without a decimal part, everything else as
// 5-decimal fixed point.
func FormatFloat(d float64) string {
	if _, frac := math.Modf(d); frac == 0 {
		return strconv.FormatInt(int64(d), 10)
	}
	return strconv.FormatFloat(d, 'f', 5, 64)
}

// String renders the value as the LaTeX fragment spliced into a document:
// a formatted float with its unit tail for Numbers, a pmatrix block for
// Matrices, the word "function" for Functions.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return FormatFloat(v.num) + v.dim.Latex()
	case KindMatrix:
		var b strings.Builder
		b.WriteString("\\begin{pmatrix}\n")
		for i, row := range v.mat {
			if i > 0 {
				b.WriteString("\\\\\n")
			}
			for j, cell := range row {
				if j > 0 {
					b.WriteString(" & ")
				}
				b.WriteString(cell.String())
			}
		}
		b.WriteString("\\end{pmatrix}")
		return b.String()
	default:
		return "function"
	}
}

// PlotString renders a two-column point matrix as one "(x,y)" pair per
// line, the shape the plotting collaborator consumes. Non-matrix values
// render as "".
func (v Value) PlotString() string {
	if !v.IsMatrix() || v.Cols() < 2 {
		return ""
	}
	var b strings.Builder
	for _, row := range v.mat {
		b.WriteString("(")
		b.WriteString(FormatFloat(row[0].num))
		b.WriteString(",")
		b.WriteString(FormatFloat(row[1].num))
		b.WriteString(")\n")
	}
	return b.String()
}
