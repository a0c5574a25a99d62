// Package value - the three-variant value type, constructors and copies.
package value

import (
	"github.com/katalvlaran/unitex/ast"
	"github.com/katalvlaran/unitex/diag"
	"github.com/katalvlaran/unitex/dims"
	"github.com/katalvlaran/unitex/token"
)

// Kind discriminates the three value variants.
type Kind uint8

const (
	// KindNumber is a float64 with a dimension vector.
	KindNumber Kind = iota
	// KindMatrix is a rectangular grid of Values.
	KindMatrix
	// KindFunction is a callable with a captured scope.
	KindFunction
)

// String returns the variant name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindMatrix:
		return "matrix"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// NameTable maps identifiers to Values. The global table and per-call
// local tables are both NameTables; the scope package implements the
// lookup and definition policy over them.
type NameTable map[string]Value

// Clone returns a deep copy: every bound Value is cloned.
func (t NameTable) Clone() NameTable {
	if t == nil {
		return nil
	}
	dup := make(NameTable, len(t))
	for name, v := range t {
		dup[name] = v.Clone()
	}
	return dup
}

// Func is the payload of a function value: positional parameter names, the
// scope snapshot taken at definition time, and the deep-copied body.
type Func struct {
	Params   []string
	Captured NameTable
	Body     *ast.Node
}

// clone deep-copies the payload so that activations of one function value
// never observe another's bindings.
func (f *Func) clone() *Func {
	dup := &Func{
		Params:   make([]string, len(f.Params)),
		Captured: f.Captured.Clone(),
		Body:     f.Body.Clone(),
	}
	copy(dup.Params, f.Params)
	return dup
}

// Value is the tagged sum. The zero Value is the dimensionless number 0.
type Value struct {
	kind Kind
	num  float64
	dim  dims.Dim
	mat  [][]Value
	fn   *Func
}

// Num builds a dimensionless number.
func Num(d float64) Value {
	return Value{kind: KindNumber, num: d}
}

// NumDim builds a number carrying the given dimension vector.
func NumDim(d float64, dim dims.Dim) Value {
	return Value{kind: KindNumber, num: d, dim: dim}
}

// Bool builds the dimensionless numbers 1 (true) or 0 (false).
func Bool(b bool) Value {
	if b {
		return Num(1)
	}
	return Num(0)
}

// NewMatrix validates rectangularity (all rows of equal length, at least
// 1x1) and wraps the grid. The grid is adopted, not copied.
func NewMatrix(rows [][]Value, pos token.Coordinate) (Value, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Value{}, diag.Newf(pos, diag.ErrShape, "matrix must be at least 1x1")
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return Value{}, diag.Newf(pos, diag.ErrShape, "matrix rows have unequal length")
		}
	}
	return Value{kind: KindMatrix, mat: rows}, nil
}

// matrixOf wraps a grid already known to be rectangular.
func matrixOf(rows [][]Value) Value {
	return Value{kind: KindMatrix, mat: rows}
}

// NewFunc builds a function value. The captured table and the body are
// adopted as given; callers snapshot and deep-copy before constructing.
func NewFunc(params []string, captured NameTable, body *ast.Node) Value {
	return Value{kind: KindFunction, fn: &Func{Params: params, Captured: captured, Body: body}}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNumber reports whether v is a Number.
func (v Value) IsNumber() bool { return v.kind == KindNumber }

// IsMatrix reports whether v is a Matrix.
func (v Value) IsMatrix() bool { return v.kind == KindMatrix }

// IsFunction reports whether v is a Function.
func (v Value) IsFunction() bool { return v.kind == KindFunction }

// Float returns the numeric payload; meaningful only for Numbers.
func (v Value) Float() float64 { return v.num }

// Dim returns the dimension vector; meaningful only for Numbers.
func (v Value) Dim() dims.Dim { return v.dim }

// IsDimensionless reports whether a Number carries the zero vector.
func (v Value) IsDimensionless() bool { return v.dim.IsZero() }

// Rows returns the row count of a Matrix (0 otherwise).
func (v Value) Rows() int { return len(v.mat) }

// Cols returns the column count of a Matrix (0 otherwise).
func (v Value) Cols() int {
	if len(v.mat) == 0 {
		return 0
	}
	return len(v.mat[0])
}

// At returns the cell (i, j) of a Matrix. Bounds are the caller's duty;
// use Index for checked access.
func (v Value) At(i, j int) Value { return v.mat[i][j] }

// Fn returns the function payload, or nil for other variants.
func (v Value) Fn() *Func { return v.fn }

// Clone returns a deep copy. Numbers copy trivially; matrices copy cell by
// cell; functions copy their parameter list, captured table and body.
func (v Value) Clone() Value {
	switch v.kind {
	case KindMatrix:
		rows := make([][]Value, len(v.mat))
		for i, row := range v.mat {
			rows[i] = make([]Value, len(row))
			for j, cell := range row {
				rows[i][j] = cell.Clone()
			}
		}
		return matrixOf(rows)
	case KindFunction:
		return Value{kind: KindFunction, fn: v.fn.clone()}
	default:
		return v
	}
}

// number unwraps a Number operand or reports a type diagnostic naming the
// operation.
func (v Value) number(op string, pos token.Coordinate) (float64, dims.Dim, error) {
	if v.kind != KindNumber {
		return 0, dims.Zero, diag.Newf(pos, diag.ErrType, "%s cannot be done on a %s", op, v.kind)
	}
	return v.num, v.dim, nil
}
