// Package value - arithmetic over Numbers and Matrices.
package value

import (
	"math"

	"github.com/katalvlaran/unitex/diag"
	"github.com/katalvlaran/unitex/token"
)

// Add implements a + b.
//
// Numbers demand equal dimensions; the result keeps the common vector.
// Matrices demand identical shape and add cell by cell. Any other pairing
// is a type violation.
func Add(l, r Value, pos token.Coordinate) (Value, error) {
	switch {
	case l.IsNumber() && r.IsNumber():
		if l.dim != r.dim {
			return Value{}, diag.Newf(pos, diag.ErrUnit, "addition of different dimensions")
		}
		return NumDim(l.num+r.num, l.dim), nil
	case l.IsMatrix() && r.IsMatrix():
		return zipMatrices(l, r, pos, Add)
	default:
		return Value{}, diag.Newf(pos, diag.ErrType, "addition cannot be done on %s and %s", l.kind, r.kind)
	}
}

// Sub implements a - b with the same pairing rules as Add.
func Sub(l, r Value, pos token.Coordinate) (Value, error) {
	switch {
	case l.IsNumber() && r.IsNumber():
		if l.dim != r.dim {
			return Value{}, diag.Newf(pos, diag.ErrUnit, "subtraction of different dimensions")
		}
		return NumDim(l.num-r.num, l.dim), nil
	case l.IsMatrix() && r.IsMatrix():
		return zipMatrices(l, r, pos, Sub)
	default:
		return Value{}, diag.Newf(pos, diag.ErrType, "subtraction cannot be done on %s and %s", l.kind, r.kind)
	}
}

// Neg implements unary minus; the dimension is preserved.
func Neg(v Value, pos token.Coordinate) (Value, error) {
	switch v.kind {
	case KindNumber:
		return NumDim(-v.num, v.dim), nil
	case KindMatrix:
		return mapMatrix(v, pos, Neg)
	default:
		return Value{}, diag.Newf(pos, diag.ErrType, "negation cannot be done on a %s", v.kind)
	}
}

// Abs implements |a| on Numbers; the dimension is preserved.
func Abs(v Value, pos token.Coordinate) (Value, error) {
	d, dim, err := v.number("absolute value", pos)
	if err != nil {
		return Value{}, err
	}
	return NumDim(math.Abs(d), dim), nil
}

// Mul implements a * b.
//
//   - number * number: exponents add.
//   - number * matrix (either order): cells scale.
//   - matrix * matrix: the general product when inner dimensions agree;
//     two equal-length row vectors or two equal-length column vectors
//     collapse to their dot product.
func Mul(l, r Value, pos token.Coordinate) (Value, error) {
	switch {
	case l.IsNumber() && r.IsNumber():
		return NumDim(l.num*r.num, l.dim.Add(r.dim)), nil
	case l.IsNumber() && r.IsMatrix():
		return mapMatrix(r, pos, func(cell Value, p token.Coordinate) (Value, error) {
			return Mul(l, cell, p)
		})
	case l.IsMatrix() && r.IsNumber():
		return Mul(r, l, pos)
	case l.IsMatrix() && r.IsMatrix():
		return mulMatrices(l, r, pos)
	default:
		return Value{}, diag.Newf(pos, diag.ErrType, "multiplication cannot be done on %s and %s", l.kind, r.kind)
	}
}

// mulMatrices handles the matrix-by-matrix cases of Mul.
func mulMatrices(l, r Value, pos token.Coordinate) (Value, error) {
	lr, lc := l.Rows(), l.Cols()
	rr, rc := r.Rows(), r.Cols()

	if lc == rr {
		rows := make([][]Value, lr)
		for i := 0; i < lr; i++ {
			rows[i] = make([]Value, rc)
			for j := 0; j < rc; j++ {
				acc, err := Mul(l.mat[i][0], r.mat[0][j], pos)
				if err != nil {
					return Value{}, err
				}
				for k := 1; k < rr; k++ {
					term, err := Mul(l.mat[i][k], r.mat[k][j], pos)
					if err != nil {
						return Value{}, err
					}
					if acc, err = Add(acc, term, pos); err != nil {
						return Value{}, err
					}
				}
				rows[i][j] = acc
			}
		}
		return matrixOf(rows), nil
	}

	// Dot-product collapses: row.row multiplies against the transposed
	// right operand, column.column against the transposed left one.
	if lr == 1 && rr == 1 {
		rt, err := Transpose(r, pos)
		if err != nil {
			return Value{}, err
		}
		prod, err := Mul(l, rt, pos)
		if err != nil {
			return Value{}, err
		}
		return prod.mat[0][0], nil
	}
	if lc == 1 && rc == 1 {
		lt, err := Transpose(l, pos)
		if err != nil {
			return Value{}, err
		}
		prod, err := Mul(lt, r, pos)
		if err != nil {
			return Value{}, err
		}
		return prod.mat[0][0], nil
	}

	return Value{}, diag.Newf(pos, diag.ErrShape, "matrix/vector dimensions mismatch: %dx%d * %dx%d", lr, lc, rr, rc)
}

// Div implements a / b.
//
// Number by number subtracts exponents; matrix by number scales cell by
// cell. Dividing by zero is a domain violation; dividing by a matrix a
// type one.
func Div(l, r Value, pos token.Coordinate) (Value, error) {
	if r.IsMatrix() {
		return Value{}, diag.Newf(pos, diag.ErrType, "division by matrix")
	}
	switch {
	case l.IsNumber() && r.IsNumber():
		if r.num == 0 {
			return Value{}, diag.Newf(pos, diag.ErrDomain, "division by zero")
		}
		return NumDim(l.num/r.num, l.dim.Sub(r.dim)), nil
	case l.IsMatrix() && r.IsNumber():
		if r.num == 0 {
			return Value{}, diag.Newf(pos, diag.ErrDomain, "division by zero")
		}
		return mapMatrix(l, pos, func(cell Value, p token.Coordinate) (Value, error) {
			return Div(cell, r, p)
		})
	default:
		return Value{}, diag.Newf(pos, diag.ErrType, "division cannot be done on %s and %s", l.kind, r.kind)
	}
}

// Pow implements a ^ b.
//
// The exponent must be a dimensionless Number. A dimensional base
// additionally demands an integral exponent; the result scales the base's
// exponents by it. A dimensionless base accepts any real exponent.
func Pow(l, r Value, pos token.Coordinate) (Value, error) {
	e, edim, err := r.number("power", pos)
	if err != nil {
		return Value{}, err
	}
	if !edim.IsZero() {
		return Value{}, diag.Newf(pos, diag.ErrUnit, "exponent must be dimensionless")
	}
	b, bdim, err := l.number("power", pos)
	if err != nil {
		return Value{}, err
	}
	if bdim.IsZero() {
		return Num(math.Pow(b, e)), nil
	}
	if _, frac := math.Modf(e); frac != 0 {
		return Value{}, diag.Newf(pos, diag.ErrUnit, "power of float number is not allowed on a dimensional base")
	}
	return NumDim(math.Pow(b, e), bdim.Scale(int(e))), nil
}

// zipMatrices applies op cell by cell over two identically shaped matrices.
func zipMatrices(l, r Value, pos token.Coordinate, op func(Value, Value, token.Coordinate) (Value, error)) (Value, error) {
	if l.Rows() != r.Rows() || l.Cols() != r.Cols() {
		return Value{}, diag.Newf(pos, diag.ErrShape, "matrix dimensions mismatch: %dx%d vs %dx%d",
			l.Rows(), l.Cols(), r.Rows(), r.Cols())
	}
	rows := make([][]Value, l.Rows())
	for i := range l.mat {
		rows[i] = make([]Value, l.Cols())
		for j := range l.mat[i] {
			cell, err := op(l.mat[i][j], r.mat[i][j], pos)
			if err != nil {
				return Value{}, err
			}
			rows[i][j] = cell
		}
	}
	return matrixOf(rows), nil
}

// mapMatrix applies op to every cell.
func mapMatrix(m Value, pos token.Coordinate, op func(Value, token.Coordinate) (Value, error)) (Value, error) {
	rows := make([][]Value, m.Rows())
	for i := range m.mat {
		rows[i] = make([]Value, m.Cols())
		for j := range m.mat[i] {
			cell, err := op(m.mat[i][j], pos)
			if err != nil {
				return Value{}, err
			}
			rows[i][j] = cell
		}
	}
	return matrixOf(rows), nil
}
