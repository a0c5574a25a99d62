// Package value - comparison and logic.
package value

import (
	"github.com/katalvlaran/unitex/token"
)

// Eq implements a == b as a total predicate: it never fails, it answers 0.
//
// Differing variants are unequal. Numbers compare their floats bit by bit;
// dimensions are deliberately ignored here - the analyzer already rejects
// programs that compare mismatched dimensions, and the runtime keeps a
// total false answer for anything that slips through. Matrices are equal
// iff the shapes match and every cell is equal. Functions never compare
// equal.
func Eq(l, r Value) Value {
	if l.kind != r.kind {
		return Bool(false)
	}
	switch l.kind {
	case KindNumber:
		return Bool(l.num == r.num)
	case KindMatrix:
		if l.Rows() != r.Rows() || l.Cols() != r.Cols() {
			return Bool(false)
		}
		for i := range l.mat {
			for j := range l.mat[i] {
				if Eq(l.mat[i][j], r.mat[i][j]).num == 0 {
					return Bool(false)
				}
			}
		}
		return Bool(true)
	default:
		return Bool(false)
	}
}

// Neq implements a != b as the negation of Eq.
func Neq(l, r Value) Value {
	return Bool(Eq(l, r).num == 0)
}

// Lt implements a < b over Numbers; everything else is a type violation.
func Lt(l, r Value, pos token.Coordinate) (Value, error) {
	ld, rd, err := orderingPair(l, r, pos)
	if err != nil {
		return Value{}, err
	}
	return Bool(ld < rd), nil
}

// Le implements a <= b over Numbers.
func Le(l, r Value, pos token.Coordinate) (Value, error) {
	ld, rd, err := orderingPair(l, r, pos)
	if err != nil {
		return Value{}, err
	}
	return Bool(ld <= rd), nil
}

// Gt implements a > b over Numbers.
func Gt(l, r Value, pos token.Coordinate) (Value, error) {
	ld, rd, err := orderingPair(l, r, pos)
	if err != nil {
		return Value{}, err
	}
	return Bool(ld > rd), nil
}

// Ge implements a >= b over Numbers.
func Ge(l, r Value, pos token.Coordinate) (Value, error) {
	ld, rd, err := orderingPair(l, r, pos)
	if err != nil {
		return Value{}, err
	}
	return Bool(ld >= rd), nil
}

// And implements logical conjunction; Numbers coerce nonzero to true.
func And(l, r Value, pos token.Coordinate) (Value, error) {
	ld, rd, err := orderingPair(l, r, pos)
	if err != nil {
		return Value{}, err
	}
	return Bool(ld != 0 && rd != 0), nil
}

// Or implements logical disjunction.
func Or(l, r Value, pos token.Coordinate) (Value, error) {
	ld, rd, err := orderingPair(l, r, pos)
	if err != nil {
		return Value{}, err
	}
	return Bool(ld != 0 || rd != 0), nil
}

// Not implements logical negation: 1 when the operand equals the
// dimensionless zero, 0 otherwise.
func Not(v Value) Value {
	return Eq(v, Num(0))
}

// orderingPair unwraps two Number operands for ordering and logic.
func orderingPair(l, r Value, pos token.Coordinate) (float64, float64, error) {
	ld, _, err := l.number("comparison", pos)
	if err != nil {
		return 0, 0, err
	}
	rd, _, err := r.number("comparison", pos)
	if err != nil {
		return 0, 0, err
	}
	return ld, rd, nil
}
