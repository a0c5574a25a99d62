// Package analyzer - the dimensional semantic pass.
package analyzer

import (
	"github.com/katalvlaran/unitex/ast"
	"github.com/katalvlaran/unitex/diag"
	"github.com/katalvlaran/unitex/dims"
	"github.com/katalvlaran/unitex/token"
)

// Analyze validates root and every descendant, returning the first
// violation as a *diag.Error, or nil for a well-dimensioned program.
func Analyze(root *ast.Node) error {
	return check(root)
}

// check applies the node-kind rule, then recurses structurally.
func check(n *ast.Node) error {
	if n == nil {
		return nil
	}

	switch n.Tag {
	case token.SUM:
		if d := n.FirstDimension(); d != nil {
			return diag.Newf(d.Pos, diag.ErrUnit, "lower or higher bound of sum is not allowed to be dimensional")
		}
	case token.PRODUCT:
		if d := n.FirstDimension(); d != nil {
			return diag.Newf(d.Pos, diag.ErrUnit, "element of product is not allowed to be dimensional")
		}
	case token.DIMENSION:
		if _, ok := dims.Lookup(n.Label); !ok {
			return diag.Newf(n.Pos, diag.ErrUnit, "this unit is not basic: %s", n.Label)
		}
	case token.POW:
		if d := n.Right.FirstDimension(); d != nil {
			return diag.Newf(d.Pos, diag.ErrUnit, "power of dimensional number is not defined")
		}
	case token.ADD, token.SUB:
		if err := rejectFunctionOperand(n, "additive operator"); err != nil {
			return err
		}
		if err := matchSignatures(n); err != nil {
			return err
		}
	case token.EQ, token.NEQ, token.LT, token.GT, token.LEQ, token.GEQ:
		if err := matchSignatures(n); err != nil {
			return err
		}
	case token.MUL:
		if err := rejectFunctionOperand(n, "multiplication"); err != nil {
			return err
		}
	case token.DIV, token.FRAC:
		if n.Right.KindProbe() == ast.ProbeMatrix {
			return diag.Newf(n.Pos, diag.ErrType, "division by matrix")
		}
		if err := rejectFunctionOperand(n, "division"); err != nil {
			return err
		}
	case token.USUB:
		if err := rejectFunctionOperand(n, "negation"); err != nil {
			return err
		}
	}

	if err := check(n.Left); err != nil {
		return err
	}
	if err := check(n.Right); err != nil {
		return err
	}
	if err := check(n.Cond); err != nil {
		return err
	}
	for _, f := range n.Fields {
		if err := check(f); err != nil {
			return err
		}
	}
	return nil
}

// rejectFunctionOperand forbids function-typed subtrees under arithmetic.
func rejectFunctionOperand(n *ast.Node, op string) error {
	if n.Left.KindProbe() == ast.ProbeFunction || n.Right.KindProbe() == ast.ProbeFunction {
		return diag.Newf(n.Pos, diag.ErrType, "function operand under %s", op)
	}
	return nil
}

// matchSignatures compares the structural dimension signatures of the two
// operands of an additive or comparative operator.
func matchSignatures(n *ast.Node) error {
	var left, right dims.Dim
	signature(n.Left, 1, &left)
	signature(n.Right, 1, &right)
	if left == right {
		return nil
	}

	switch n.Tag {
	case token.ADD:
		return diag.Newf(n.Pos, diag.ErrUnit, "addition of different dimensions")
	case token.SUB:
		return diag.Newf(n.Pos, diag.ErrUnit, "subtraction of different dimensions")
	default:
		return diag.Newf(n.Pos, diag.ErrUnit, "comparison of different dimensions")
	}
}

// signature accumulates the exponent contributions of DIMENSION leaves.
// The sign flips beneath the right side of a division; unknown unit
// spellings contribute nothing here and are rejected by the DIMENSION rule
// during the recursion.
func signature(n *ast.Node, sign int, acc *dims.Dim) {
	if n == nil {
		return
	}
	switch n.Tag {
	case token.DIMENSION:
		if axis, ok := dims.Lookup(n.Label); ok {
			acc[axis] += sign
		}
	case token.MUL:
		signature(n.Left, sign, acc)
		signature(n.Right, sign, acc)
	case token.DIV, token.FRAC:
		signature(n.Left, sign, acc)
		signature(n.Right, -sign, acc)
	default:
		signature(n.Left, sign, acc)
		signature(n.Right, sign, acc)
		for _, f := range n.Fields {
			signature(f, sign, acc)
		}
	}
}
