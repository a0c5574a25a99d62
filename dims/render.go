// Package dims - LaTeX rendering of unit tails.
package dims

import (
	"strconv"
	"strings"
)

// Latex renders the dimension as the LaTeX tail appended after a number.
//
// A dimensionless vector renders as "". Positive-only vectors render as a
// "\cdot"-separated product, e.g. " \cdot m \cdot s^2". As soon as any
// exponent is negative the whole tail becomes a fraction,
// " \cdot \frac{num}{den}", with "1" as the numerator when no positive
// exponent exists. Single powers omit the exponent.
func (d Dim) Latex() string {
	if d.IsZero() {
		return ""
	}
	hasNeg := false
	for _, e := range d {
		if e < 0 {
			hasNeg = true
			break
		}
	}
	if !hasNeg {
		var b strings.Builder
		for i, e := range d {
			if e == 0 {
				continue
			}
			b.WriteString(" \\cdot ")
			b.WriteString(powTerm(Axis(i), e))
		}
		return b.String()
	}

	num := side(d, 1)
	den := side(d, -1)
	if num == "" {
		num = "1"
	}
	return " \\cdot \\frac{" + num + "}{" + den + "}"
}

// side renders the product of all exponents of the given sign, with the
// exponent magnitudes (denominators render positive powers).
func side(d Dim, sign int) string {
	var b strings.Builder
	for i, e := range d {
		if e == 0 || (e > 0) != (sign > 0) {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" \\cdot ")
		}
		if e < 0 {
			e = -e
		}
		b.WriteString(powTerm(Axis(i), e))
	}
	return b.String()
}

// powTerm renders one unit factor, omitting the "^1" suffix.
func powTerm(a Axis, e int) string {
	if e == 1 {
		return a.Name()
	}
	return a.Name() + "^" + strconv.Itoa(e)
}
