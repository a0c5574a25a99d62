// Package ast defines the abstract syntax tree consumed by the semantic
// analyzer and the evaluator.
//
// Nodes are produced from lexer tokens by New and are immutable from the
// core's point of view, with one exception: function definitions deep-copy
// their body subtree via Clone, because a defined function outlives the
// statement (and the tree) it was defined in.
//
// Placeholder and graphic nodes announce themselves to a Recorder at
// construction time so the replacement registry can allocate a skeleton
// entry spanning the right byte range of the source text.
package ast
