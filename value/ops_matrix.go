// Package value - transpose, checked indexing and cell assignment.
package value

import (
	"github.com/katalvlaran/unitex/diag"
	"github.com/katalvlaran/unitex/token"
)

// Transpose swaps rows and columns of a rectangular matrix.
func Transpose(v Value, pos token.Coordinate) (Value, error) {
	if !v.IsMatrix() {
		return Value{}, diag.Newf(pos, diag.ErrType, "transposition cannot be done on a %s", v.kind)
	}
	rows := make([][]Value, v.Cols())
	for i := 0; i < v.Cols(); i++ {
		rows[i] = make([]Value, v.Rows())
		for j := 0; j < v.Rows(); j++ {
			rows[i][j] = v.mat[j][i]
		}
	}
	return matrixOf(rows), nil
}

// Index reads a cell through the surface indexing rules and returns a copy
// of it.
//
// One index selects the column of a row vector or the row of a column
// vector; a single index into a wider matrix is a shape violation. Two
// indices select (row, column). Indices must be non-negative and in range.
func Index(v Value, idx []int, pos token.Coordinate) (Value, error) {
	i, j, err := resolveIndex(v, idx, pos)
	if err != nil {
		return Value{}, err
	}
	return v.mat[i][j].Clone(), nil
}

// SetCell overwrites one cell in place, following the same index rules.
// This is the single mutating operation of the package; it backs
// assignment to an indexed identifier.
func SetCell(v Value, idx []int, nv Value, pos token.Coordinate) error {
	i, j, err := resolveIndex(v, idx, pos)
	if err != nil {
		return err
	}
	v.mat[i][j] = nv.Clone()
	return nil
}

// resolveIndex maps surface indices onto (row, column) and validates them.
func resolveIndex(v Value, idx []int, pos token.Coordinate) (int, int, error) {
	if !v.IsMatrix() {
		return 0, 0, diag.Newf(pos, diag.ErrType, "indexing cannot be done on a %s", v.kind)
	}
	for _, k := range idx {
		if k < 0 {
			return 0, 0, diag.Newf(pos, diag.ErrShape, "negative index")
		}
	}

	var i, j int
	switch len(idx) {
	case 1:
		i = idx[0]
		if v.Rows() == 1 {
			// Row vector: the single index walks the columns.
			j, i = i, 0
		} else if v.Cols() != 1 {
			return 0, 0, diag.Newf(pos, diag.ErrShape, "can't use vector index for matrix")
		}
	case 2:
		i, j = idx[0], idx[1]
	default:
		return 0, 0, diag.Newf(pos, diag.ErrShape, "bad index arity: %d", len(idx))
	}

	if i >= v.Rows() || j >= v.Cols() {
		return 0, 0, diag.Newf(pos, diag.ErrShape, "index is out of range")
	}
	return i, j, nil
}
