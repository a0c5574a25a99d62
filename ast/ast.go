// Package ast - node construction, deep copy and structural probes.
package ast

import "github.com/katalvlaran/unitex/token"

// Recorder receives skeleton notifications for nodes that materialise a
// document replacement (placeholders and graphics). The replacement
// registry implements it; passing it explicitly keeps the side channel out
// of package state.
type Recorder interface {
	Skeleton(pos token.Coordinate, tag token.Tag, begin, end int)
}

// Node is one AST vertex.
//
//	Left, Right, Cond - fixed-position children (operators, loops, IF)
//	Fields            - variadic children: matrix rows, argument lists,
//	                    index expressions, case branches, statements
//	Label             - literal text, identifier, keyword or unit spelling
type Node struct {
	Tag    token.Tag
	Pos    token.Coordinate
	Label  string
	Left   *Node
	Right  *Node
	Cond   *Node
	Fields []*Node
}

// New builds a node from a lexer token. Placeholders register a skeleton
// replacement covering the token tail (end-2, end); graphics register one
// covering the whole call span.
func New(t *token.Token, rec Recorder) *Node {
	n := &Node{
		Tag:   t.Tag,
		Pos:   t.Start.Coord,
		Label: t.Label(),
	}
	if rec != nil {
		switch t.Tag {
		case token.PLACEHOLDER:
			rec.Skeleton(n.Pos, t.Tag, t.End.Index-2, t.End.Index)
		case token.GRAPHIC:
			rec.Skeleton(n.Pos, t.Tag, t.Start.Index, t.End.Index)
		}
	}
	return n
}

// Clone returns a deep copy of the subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dup := &Node{
		Tag:   n.Tag,
		Pos:   n.Pos,
		Label: n.Label,
		Left:  n.Left.Clone(),
		Right: n.Right.Clone(),
		Cond:  n.Cond.Clone(),
	}
	if len(n.Fields) > 0 {
		dup.Fields = make([]*Node, len(n.Fields))
		for i, f := range n.Fields {
			dup.Fields[i] = f.Clone()
		}
	}
	return dup
}

// FirstDimension returns the first DIMENSION node in a depth-first
// left-to-right walk (left, right, cond, fields), or nil when the subtree
// is free of unit leaves.
func (n *Node) FirstDimension() *Node {
	if n == nil {
		return nil
	}
	if n.Tag == token.DIMENSION {
		return n
	}
	if d := n.Left.FirstDimension(); d != nil {
		return d
	}
	if d := n.Right.FirstDimension(); d != nil {
		return d
	}
	if d := n.Cond.FirstDimension(); d != nil {
		return d
	}
	for _, f := range n.Fields {
		if d := f.FirstDimension(); d != nil {
			return d
		}
	}
	return nil
}

// Probe classifies a subtree for the analyzer's operand checks.
type Probe int

const (
	// ProbeNone means neither a function call nor an indexed identifier
	// was found.
	ProbeNone Probe = iota
	// ProbeFunction means the subtree contains a FUNC invocation.
	ProbeFunction
	// ProbeMatrix means the subtree contains an identifier with index
	// fields, i.e. a matrix access.
	ProbeMatrix
)

// KindProbe reports the first function-call or indexed-identifier hit in a
// left-to-right walk (self, left, right, fields). The first match wins; a
// subtree holding both reports whichever appears first.
func (n *Node) KindProbe() Probe {
	if n == nil {
		return ProbeNone
	}
	switch {
	case n.Tag == token.FUNC:
		return ProbeFunction
	case n.Tag == token.IDENT && len(n.Fields) > 0:
		return ProbeMatrix
	}
	if p := n.Left.KindProbe(); p != ProbeNone {
		return p
	}
	if p := n.Right.KindProbe(); p != ProbeNone {
		return p
	}
	for _, f := range n.Fields {
		if p := f.KindProbe(); p != ProbeNone {
			return p
		}
	}
	return ProbeNone
}
