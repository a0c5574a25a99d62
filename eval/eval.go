// Package eval - the recursive tree walk.
package eval

import (
	"strconv"

	"github.com/katalvlaran/unitex/ast"
	"github.com/katalvlaran/unitex/builtin"
	"github.com/katalvlaran/unitex/diag"
	"github.com/katalvlaran/unitex/dims"
	"github.com/katalvlaran/unitex/scope"
	"github.com/katalvlaran/unitex/token"
	"github.com/katalvlaran/unitex/value"
)

// eval dispatches on the node tag. local is nil at the top level and the
// activation table inside a function body.
func (in *Interp) eval(n *ast.Node, local value.NameTable) (value.Value, error) {
	switch n.Tag {
	case token.NUMBER:
		d, err := strconv.ParseFloat(n.Label, 64)
		if err != nil {
			return value.Value{}, diag.Newf(n.Pos, diag.ErrDefinition, "malformed numeric literal %q", n.Label)
		}
		return value.Num(d), nil

	case token.IDENT:
		return in.evalIdent(n, local)

	case token.FUNC:
		return in.evalCall(n, local)

	case token.UADD, token.LPAREN:
		return in.eval(n.Right, local)

	case token.USUB:
		r, err := in.eval(n.Right, local)
		if err != nil {
			return value.Value{}, err
		}
		return value.Neg(r, n.Pos)

	case token.NOT:
		r, err := in.eval(n.Right, local)
		if err != nil {
			return value.Value{}, err
		}
		return value.Not(r), nil

	case token.ABS:
		r, err := in.eval(n.Right, local)
		if err != nil {
			return value.Value{}, err
		}
		return value.Abs(r, n.Pos)

	case token.SET:
		return in.evalSet(n, local)

	case token.ADD, token.SUB, token.MUL, token.DIV, token.FRAC, token.POW,
		token.LT, token.GT, token.LEQ, token.GEQ, token.AND, token.OR:
		return in.evalBinary(n, local)

	case token.EQ:
		return in.evalEq(n, local)

	case token.NEQ:
		l, err := in.eval(n.Left, local)
		if err != nil {
			return value.Value{}, err
		}
		r, err := in.eval(n.Right, local)
		if err != nil {
			return value.Value{}, err
		}
		return value.Neq(l, r), nil

	case token.ROOT, token.BEGINB:
		return in.evalBlock(n, local)

	case token.BEGINM:
		return in.evalMatrixLiteral(n, local)

	case token.BEGINC:
		return in.evalCases(n, local)

	case token.IF:
		return in.evalIf(n, local)

	case token.WHILE:
		return in.evalLoop(n, local, false)

	case token.PRODUCT:
		return in.evalLoop(n, local, in.opts.ProductOfRange)

	case token.TRANSP:
		l, err := in.eval(n.Left, local)
		if err != nil {
			return value.Value{}, err
		}
		return value.Transpose(l, n.Pos)

	case token.RANGE:
		return in.evalRange(n, local)

	case token.GRAPHIC:
		return in.evalGraphic(n, local)

	case token.KEYWORD:
		return in.evalKeyword(n, local)

	case token.DIMENSION:
		base, ok := dims.Base(n.Label)
		if !ok {
			return value.Value{}, diag.Newf(n.Pos, diag.ErrUnit, "this unit is not basic: %s", n.Label)
		}
		return value.NumDim(1, base), nil

	default:
		// SUM and PLACEHOLDER reach here on purpose: a sum node carries
		// no executable semantics and a bare placeholder has no value of
		// its own. Both yield the neutral dimensionless zero.
		return value.Num(0), nil
	}
}

// evalNumber evaluates n and demands a Number result.
func (in *Interp) evalNumber(n *ast.Node, local value.NameTable, what string) (value.Value, error) {
	v, err := in.eval(n, local)
	if err != nil {
		return value.Value{}, err
	}
	if !v.IsNumber() {
		return value.Value{}, diag.Newf(n.Pos, diag.ErrType, "%s must be a number, got %s", what, v.Kind())
	}
	return v, nil
}

// evalIdent resolves a variable, applying the surface indexing rules when
// the identifier carries index fields.
func (in *Interp) evalIdent(n *ast.Node, local value.NameTable) (value.Value, error) {
	v, err := scope.Lookup(in.globals, local, n.Label, n.Pos)
	if err != nil {
		return value.Value{}, err
	}
	if len(n.Fields) == 0 {
		return v, nil
	}
	idx, err := in.evalIndices(n.Fields, local)
	if err != nil {
		return value.Value{}, err
	}
	return value.Index(v, idx, n.Pos)
}

// evalIndices evaluates index expressions to truncated integers.
func (in *Interp) evalIndices(fields []*ast.Node, local value.NameTable) ([]int, error) {
	idx := make([]int, len(fields))
	for i, f := range fields {
		v, err := in.evalNumber(f, local, "index")
		if err != nil {
			return nil, err
		}
		idx[i] = int(v.Float())
	}
	return idx, nil
}

// evalCall invokes a user-defined function: arguments evaluate in the
// caller's scope, then bind into a fresh copy of the captured table, so
// mutations of that table never escape the activation. Assignments to a
// name the global table already binds still go global (see scope.Define).
func (in *Interp) evalCall(n *ast.Node, local value.NameTable) (value.Value, error) {
	fv, err := scope.Lookup(in.globals, local, n.Label, n.Pos)
	if err != nil {
		return value.Value{}, err
	}
	fn := fv.Fn()
	if fn == nil {
		return value.Value{}, diag.Newf(n.Pos, diag.ErrType, "call of a non-function: %s", n.Label)
	}
	if len(n.Fields) != len(fn.Params) {
		return value.Value{}, diag.Newf(n.Pos, diag.ErrName, "wrong argument number: %s takes %d, got %d",
			n.Label, len(fn.Params), len(n.Fields))
	}
	args := make([]value.Value, len(n.Fields))
	for i, f := range n.Fields {
		if args[i], err = in.eval(f, local); err != nil {
			return value.Value{}, err
		}
	}
	return in.apply(fn, args)
}

// apply binds positional arguments into an activation table and runs the
// body.
func (in *Interp) apply(fn *value.Func, args []value.Value) (value.Value, error) {
	activation := fn.Captured.Clone()
	if activation == nil {
		activation = make(value.NameTable)
	}
	for i, p := range fn.Params {
		activation[p] = args[i].Clone()
	}
	return in.eval(fn.Body, activation)
}

// evalSet dispatches on the left-hand side: plain identifier, indexed
// cell, or function header.
func (in *Interp) evalSet(n *ast.Node, local value.NameTable) (value.Value, error) {
	switch {
	case n.Left.Tag == token.IDENT && len(n.Left.Fields) == 0:
		v, err := in.eval(n.Right, local)
		if err != nil {
			return value.Value{}, err
		}
		scope.Define(in.globals, local, n.Left.Label, v)
		in.log.Debug().Str("name", n.Left.Label).Stringer("pos", n.Pos).Msg("define")
		return value.Num(0), nil

	case n.Left.Tag == token.IDENT:
		return in.evalSetCell(n, local)

	case n.Left.Tag == token.FUNC:
		return in.evalDefineFunc(n, local)

	default:
		return value.Value{}, diag.Newf(n.Pos, diag.ErrDefinition, "can't define this")
	}
}

// evalSetCell mutates one cell of a matrix already bound to the name. The
// write goes into whichever table currently binds the matrix.
func (in *Interp) evalSetCell(n *ast.Node, local value.NameTable) (value.Value, error) {
	name := n.Left.Label
	tbl, ok := scope.Resolve(in.globals, local, name)
	if !ok {
		return value.Value{}, diag.Newf(n.Left.Pos, diag.ErrName, "undefined variable reference: %s", name)
	}
	idx, err := in.evalIndices(n.Left.Fields, local)
	if err != nil {
		return value.Value{}, err
	}
	rv, err := in.eval(n.Right, local)
	if err != nil {
		return value.Value{}, err
	}
	if err := value.SetCell(tbl[name], idx, rv, n.Pos); err != nil {
		return value.Value{}, err
	}
	return value.Num(0), nil
}

// evalDefineFunc builds a function value: bare identifier parameters, no
// duplicates, a deep-copied body and a by-value scope snapshot.
func (in *Interp) evalDefineFunc(n *ast.Node, local value.NameTable) (value.Value, error) {
	header := n.Left
	params := make([]string, 0, len(header.Fields))
	for _, p := range header.Fields {
		if p.Tag != token.IDENT || len(p.Fields) != 0 {
			return value.Value{}, diag.Newf(n.Pos, diag.ErrDefinition, "can't define function: parameter is not an identifier")
		}
		for _, seen := range params {
			if seen == p.Label {
				return value.Value{}, diag.Newf(p.Pos, diag.ErrDefinition, "duplicate function argument: %s", p.Label)
			}
		}
		params = append(params, p.Label)
	}

	// The body must outlive this statement: the host discards the tree
	// after each preprocessing block.
	body := n.Right.Clone()
	captured := scope.Snapshot(in.globals, local)
	scope.Define(in.globals, local, header.Label, value.NewFunc(params, captured, body))
	in.log.Debug().Str("name", header.Label).Int("params", len(params)).Msg("define function")
	return value.Num(0), nil
}

// evalBinary handles the operators that map 1:1 onto the value algebra.
func (in *Interp) evalBinary(n *ast.Node, local value.NameTable) (value.Value, error) {
	l, err := in.eval(n.Left, local)
	if err != nil {
		return value.Value{}, err
	}
	r, err := in.eval(n.Right, local)
	if err != nil {
		return value.Value{}, err
	}
	switch n.Tag {
	case token.ADD:
		return value.Add(l, r, n.Pos)
	case token.SUB:
		return value.Sub(l, r, n.Pos)
	case token.MUL:
		return value.Mul(l, r, n.Pos)
	case token.DIV, token.FRAC:
		return value.Div(l, r, n.Pos)
	case token.POW:
		return value.Pow(l, r, n.Pos)
	case token.LT:
		return value.Lt(l, r, n.Pos)
	case token.GT:
		return value.Gt(l, r, n.Pos)
	case token.LEQ:
		return value.Le(l, r, n.Pos)
	case token.GEQ:
		return value.Ge(l, r, n.Pos)
	case token.AND:
		return value.And(l, r, n.Pos)
	default: // token.OR
		return value.Or(l, r, n.Pos)
	}
}

// evalEq handles == including its placeholder-binding forms.
//
//	expr = \placeholder              records eval(expr)
//	expr = \placeholder \cdot unit   records eval(expr) / eval(unit)
//
// Both record at the placeholder's own coordinate and yield 1: the
// equation is declared satisfied by construction. Anything else is an
// ordinary total comparison.
func (in *Interp) evalEq(n *ast.Node, local value.NameTable) (value.Value, error) {
	l, err := in.eval(n.Left, local)
	if err != nil {
		return value.Value{}, err
	}

	if n.Right.Tag == token.PLACEHOLDER {
		in.reps.Bind(n.Right.Pos, l)
		in.log.Debug().Stringer("pos", n.Right.Pos).Msg("placeholder bound")
		return value.Num(1), nil
	}
	if n.Right.Left != nil && n.Right.Left.Tag == token.PLACEHOLDER {
		unit, err := in.eval(n.Right.Right, local)
		if err != nil {
			return value.Value{}, err
		}
		stripped, err := value.Div(l, unit, n.Pos)
		if err != nil {
			return value.Value{}, err
		}
		in.reps.Bind(n.Right.Left.Pos, stripped)
		in.log.Debug().Stringer("pos", n.Right.Left.Pos).Msg("placeholder bound with unit")
		return value.Num(1), nil
	}

	r, err := in.eval(n.Right, local)
	if err != nil {
		return value.Value{}, err
	}
	return value.Eq(l, r), nil
}

// evalBlock runs statements in order; the last value wins.
func (in *Interp) evalBlock(n *ast.Node, local value.NameTable) (value.Value, error) {
	res := value.Num(0)
	for _, stmt := range n.Fields {
		v, err := in.eval(stmt, local)
		if err != nil {
			return value.Value{}, err
		}
		res = v
	}
	return res, nil
}

// evalMatrixLiteral builds a matrix row by row, cell by cell.
func (in *Interp) evalMatrixLiteral(n *ast.Node, local value.NameTable) (value.Value, error) {
	rows := make([][]value.Value, len(n.Fields))
	for i, rowNode := range n.Fields {
		rows[i] = make([]value.Value, len(rowNode.Fields))
		for j, cell := range rowNode.Fields {
			v, err := in.eval(cell, local)
			if err != nil {
				return value.Value{}, err
			}
			rows[i][j] = v
		}
	}
	return value.NewMatrix(rows, n.Pos)
}

// evalCases returns the first branch whose condition is absent or
// nonzero; a fully guarded block with no taken branch yields 0.
func (in *Interp) evalCases(n *ast.Node, local value.NameTable) (value.Value, error) {
	for _, branch := range n.Fields {
		if branch.Cond == nil {
			return in.eval(branch.Right, local)
		}
		c, err := in.evalNumber(branch.Cond, local, "case condition")
		if err != nil {
			return value.Value{}, err
		}
		if c.Float() != 0 {
			return in.eval(branch.Right, local)
		}
	}
	return value.Num(0), nil
}

// evalIf evaluates the conditional with an optional else arm.
func (in *Interp) evalIf(n *ast.Node, local value.NameTable) (value.Value, error) {
	c, err := in.evalNumber(n.Cond, local, "condition")
	if err != nil {
		return value.Value{}, err
	}
	if c.Float() != 0 {
		return in.eval(n.Right, local)
	}
	if n.Left != nil {
		return in.eval(n.Left, local)
	}
	return value.Num(0), nil
}

// evalLoop implements WHILE and both PRODUCT modes. The legacy mode
// (multiply == false) yields the last body value, 0 when the body never
// ran; product mode folds the body values by multiplication starting from
// the neutral 1.
func (in *Interp) evalLoop(n *ast.Node, local value.NameTable, multiply bool) (value.Value, error) {
	res := value.Num(0)
	if multiply {
		res = value.Num(1)
	}
	iterations := 0
	for {
		c, err := in.evalNumber(n.Cond, local, "loop condition")
		if err != nil {
			return value.Value{}, err
		}
		if c.Float() == 0 {
			return res, nil
		}
		iterations++
		if in.opts.MaxIterations > 0 && iterations > in.opts.MaxIterations {
			return value.Value{}, diag.Newf(n.Pos, ErrIterationLimit,
				"loop exceeded %d iterations", in.opts.MaxIterations)
		}
		body, err := in.eval(n.Right, local)
		if err != nil {
			return value.Value{}, err
		}
		if multiply {
			if res, err = value.Mul(res, body, n.Pos); err != nil {
				return value.Value{}, err
			}
		} else {
			res = body
		}
	}
}

// evalRange samples left..=right inclusively and packs the samples into a
// one-row matrix of dimensionless numbers.
func (in *Interp) evalRange(n *ast.Node, local value.NameTable) (value.Value, error) {
	from, err := in.evalNumber(n.Left, local, "range bound")
	if err != nil {
		return value.Value{}, err
	}
	to, err := in.evalNumber(n.Right, local, "range bound")
	if err != nil {
		return value.Value{}, err
	}
	step := in.opts.RangeStep
	if n.Cond != nil {
		sv, err := in.evalNumber(n.Cond, local, "range step")
		if err != nil {
			return value.Value{}, err
		}
		step = sv.Float()
	}
	if step <= 0 {
		return value.Value{}, diag.Newf(n.Pos, diag.ErrShape, "range step must be positive")
	}

	var row []value.Value
	for x := from.Float(); x <= to.Float(); x += step {
		row = append(row, value.Num(x))
	}
	if len(row) == 0 {
		return value.Value{}, diag.Newf(n.Pos, diag.ErrShape, "empty range")
	}
	return value.NewMatrix([][]value.Value{row}, n.Pos)
}

// evalGraphic plots a named function against its single RANGE argument
// and records the two-column point matrix in the registry.
func (in *Interp) evalGraphic(n *ast.Node, local value.NameTable) (value.Value, error) {
	fv, err := scope.Lookup(in.globals, local, n.Label, n.Pos)
	if err != nil {
		return value.Value{}, err
	}
	fn := fv.Fn()
	if fn == nil {
		return value.Value{}, diag.Newf(n.Pos, diag.ErrType, "graphic of a non-function: %s", n.Label)
	}
	if len(n.Fields) != len(fn.Params) {
		return value.Value{}, diag.Newf(n.Pos, diag.ErrName, "wrong argument number: %s takes %d, got %d",
			n.Label, len(fn.Params), len(n.Fields))
	}

	args := make([]value.Value, len(n.Fields))
	varying := -1
	for i, f := range n.Fields {
		if f.Tag == token.RANGE {
			if varying >= 0 {
				return value.Value{}, diag.Newf(f.Pos, diag.ErrShape, "more than one parameter range")
			}
			varying = i
			continue
		}
		if args[i], err = in.eval(f, local); err != nil {
			return value.Value{}, err
		}
	}
	if varying < 0 {
		return value.Value{}, diag.Newf(n.Pos, diag.ErrShape, "no range parameter")
	}

	samples, err := in.eval(n.Fields[varying], local)
	if err != nil {
		return value.Value{}, err
	}

	points := make([][]value.Value, 0, samples.Cols())
	for j := 0; j < samples.Cols(); j++ {
		x := samples.At(0, j)
		args[varying] = x
		fx, err := in.apply(fn, args)
		if err != nil {
			return value.Value{}, err
		}
		if !fx.IsNumber() {
			return value.Value{}, diag.Newf(n.Pos, diag.ErrType, "plotted function must yield a number, got %s", fx.Kind())
		}
		points = append(points, []value.Value{x.Clone(), value.Num(fx.Float())})
	}

	plot, err := value.NewMatrix(points, n.Pos)
	if err != nil {
		return value.Value{}, err
	}
	in.reps.Bind(n.Pos, plot)
	in.log.Debug().Stringer("pos", n.Pos).Int("points", len(points)).Msg("graphic bound")
	return value.Num(0), nil
}

// evalKeyword resolves a control sequence: a constant, or a registered
// unary/binary function applied to Number arguments.
func (in *Interp) evalKeyword(n *ast.Node, local value.NameTable) (value.Value, error) {
	if c, ok := builtin.Constant(n.Label); ok {
		return c, nil
	}
	arity, ok := builtin.Arity(n.Label)
	if !ok {
		return value.Value{}, diag.Newf(n.Pos, diag.ErrName, "keyword is not defined: %s", n.Label)
	}
	if len(n.Fields) != arity {
		return value.Value{}, diag.Newf(n.Pos, diag.ErrName, "wrong argument number: %s takes %d, got %d",
			n.Label, arity, len(n.Fields))
	}
	args := make([]value.Value, arity)
	for i, f := range n.Fields {
		v, err := in.evalNumber(f, local, "argument")
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}

	if arity == 1 {
		kernel, _ := builtin.Unary(n.Label)
		if n.Label != builtin.Floor && !args[0].IsDimensionless() {
			return value.Value{}, diag.Newf(n.Pos, diag.ErrUnit, "%s gets only dimensionless argument", n.Label)
		}
		return value.NumDim(kernel(args[0].Float()), args[0].Dim()), nil
	}

	kernel, _ := builtin.Binary(n.Label)
	if !args[0].IsDimensionless() || !args[1].IsDimensionless() {
		return value.Value{}, diag.Newf(n.Pos, diag.ErrUnit, "%s gets only dimensionless arguments", n.Label)
	}
	return value.Num(kernel(args[0].Float(), args[1].Float())), nil
}
