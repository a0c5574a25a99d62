package eval_test

import (
	"testing"

	"github.com/katalvlaran/unitex/ast"
	"github.com/katalvlaran/unitex/eval"
	"github.com/katalvlaran/unitex/token"
)

// benchEval runs one prepared tree b.N times on a fresh interpreter.
func benchEval(b *testing.B, build func() *ast.Node) {
	b.Helper()
	prog := build()
	in, err := eval.New()
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := in.Eval(prog); err != nil {
			b.Fatalf("Eval failed: %v", err)
		}
	}
}

// BenchmarkEval_Arithmetic exercises the scalar fast path.
func BenchmarkEval_Arithmetic(b *testing.B) {
	benchEval(b, func() *ast.Node {
		// ((1+2)*3 - 4) / 5
		return bin(token.DIV,
			bin(token.SUB,
				bin(token.MUL, bin(token.ADD, num(1), num(2)), num(3)),
				num(4)),
			num(5))
	})
}

// BenchmarkEval_MatrixProduct multiplies two 8x8 literals.
func BenchmarkEval_MatrixProduct(b *testing.B) {
	benchEval(b, func() *ast.Node {
		grid := func() *ast.Node {
			rows := make([][]*ast.Node, 8)
			for i := range rows {
				rows[i] = make([]*ast.Node, 8)
				for j := range rows[i] {
					rows[i][j] = num(float64(i*8 + j + 1))
				}
			}
			return matrixLit(rows...)
		}
		return bin(token.MUL, grid(), grid())
	})
}

// BenchmarkEval_FunctionCall measures activation setup and teardown.
func BenchmarkEval_FunctionCall(b *testing.B) {
	prog := root(
		set(
			&ast.Node{Tag: token.FUNC, Pos: pos(), Label: "f", Fields: []*ast.Node{ident("x")}},
			bin(token.POW, ident("x"), num(2)),
		),
		call("f", num(3)),
	)
	in, err := eval.New()
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := in.Eval(prog); err != nil {
			b.Fatalf("Eval failed: %v", err)
		}
	}
}
