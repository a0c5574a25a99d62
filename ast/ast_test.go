package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitex/ast"
	"github.com/katalvlaran/unitex/token"
)

// recorder captures Skeleton calls for assertions.
type recorder struct {
	pos   []token.Coordinate
	tags  []token.Tag
	spans [][2]int
}

func (r *recorder) Skeleton(pos token.Coordinate, tag token.Tag, begin, end int) {
	r.pos = append(r.pos, pos)
	r.tags = append(r.tags, tag)
	r.spans = append(r.spans, [2]int{begin, end})
}

// TestNew_Label picks raw text for literal kinds and the normalized
// spelling otherwise.
func TestNew_Label(t *testing.T) {
	n := ast.New(&token.Token{Tag: token.NUMBER, Raw: "3.5", Ident: "x"}, nil)
	assert.Equal(t, "3.5", n.Label)

	n = ast.New(&token.Token{Tag: token.ADD, Raw: "+", Ident: "+"}, nil)
	assert.Equal(t, "+", n.Label)
}

// TestNew_PlaceholderSkeleton registers the token-tail span.
func TestNew_PlaceholderSkeleton(t *testing.T) {
	rec := &recorder{}
	tok := &token.Token{
		Tag:   token.PLACEHOLDER,
		Start: token.Position{Coord: token.Coordinate{Line: 2, Column: 7}, Index: 30},
		End:   token.Position{Coord: token.Coordinate{Line: 2, Column: 20}, Index: 43},
	}
	n := ast.New(tok, rec)

	require.Len(t, rec.pos, 1)
	assert.Equal(t, n.Pos, rec.pos[0])
	assert.Equal(t, token.PLACEHOLDER, rec.tags[0])
	assert.Equal(t, [2]int{41, 43}, rec.spans[0], "span covers (end-2, end)")
}

// TestNew_GraphicSkeleton registers the full call span.
func TestNew_GraphicSkeleton(t *testing.T) {
	rec := &recorder{}
	tok := &token.Token{
		Tag:   token.GRAPHIC,
		Start: token.Position{Coord: token.Coordinate{Line: 4, Column: 1}, Index: 100},
		End:   token.Position{Coord: token.Coordinate{Line: 4, Column: 30}, Index: 129},
	}
	ast.New(tok, rec)

	require.Len(t, rec.spans, 1)
	assert.Equal(t, [2]int{100, 129}, rec.spans[0])
}

// TestNew_NilRecorder must not panic for a placeholder.
func TestNew_NilRecorder(t *testing.T) {
	assert.NotPanics(t, func() {
		ast.New(&token.Token{Tag: token.PLACEHOLDER}, nil)
	})
}

// TestClone produces an isolated deep copy.
func TestClone(t *testing.T) {
	orig := &ast.Node{
		Tag:   token.ADD,
		Label: "+",
		Left:  &ast.Node{Tag: token.NUMBER, Label: "1"},
		Right: &ast.Node{Tag: token.NUMBER, Label: "2"},
		Fields: []*ast.Node{
			{Tag: token.IDENT, Label: "i"},
		},
	}
	dup := orig.Clone()

	require.NotSame(t, orig, dup)
	require.NotSame(t, orig.Left, dup.Left)
	assert.Equal(t, orig.Left.Label, dup.Left.Label)

	dup.Left.Label = "changed"
	assert.Equal(t, "1", orig.Left.Label, "clone mutation must not leak")

	var nilNode *ast.Node
	assert.Nil(t, nilNode.Clone())
}

// TestFirstDimension finds a unit leaf nested below the right child and
// reports nil for a unit-free tree.
func TestFirstDimension(t *testing.T) {
	dim := &ast.Node{Tag: token.DIMENSION, Label: "m", Pos: token.Coordinate{Line: 9, Column: 9}}
	tree := &ast.Node{
		Tag:  token.MUL,
		Left: &ast.Node{Tag: token.NUMBER, Label: "3"},
		Right: &ast.Node{
			Tag:    token.LPAREN,
			Right:  dim,
			Fields: nil,
		},
	}
	got := tree.FirstDimension()
	require.NotNil(t, got)
	assert.Equal(t, dim.Pos, got.Pos)

	clean := &ast.Node{Tag: token.ADD,
		Left:  &ast.Node{Tag: token.IDENT, Label: "a"},
		Right: &ast.Node{Tag: token.IDENT, Label: "b"},
	}
	assert.Nil(t, clean.FirstDimension())
}

// TestKindProbe reports functions and indexed identifiers, first hit wins.
func TestKindProbe(t *testing.T) {
	callNode := &ast.Node{Tag: token.FUNC, Label: "f"}
	indexed := &ast.Node{Tag: token.IDENT, Label: "M", Fields: []*ast.Node{{Tag: token.NUMBER, Label: "0"}}}
	plain := &ast.Node{Tag: token.IDENT, Label: "x"}

	assert.Equal(t, ast.ProbeFunction, callNode.KindProbe())
	assert.Equal(t, ast.ProbeMatrix, indexed.KindProbe())
	assert.Equal(t, ast.ProbeNone, plain.KindProbe())

	tree := &ast.Node{Tag: token.ADD, Left: plain, Right: indexed}
	assert.Equal(t, ast.ProbeMatrix, tree.KindProbe())

	both := &ast.Node{Tag: token.ADD, Left: callNode, Right: indexed}
	assert.Equal(t, ast.ProbeFunction, both.KindProbe(), "left-to-right, first match wins")
}
