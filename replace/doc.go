// Package replace implements the replacement registry: the evaluator's
// only output channel besides its return value.
//
// Skeleton entries are allocated while the AST is built (placeholders and
// graphics announce their source spans); Bind fills the computed value
// during evaluation. A post-processing collaborator iterates the registry
// in insertion order and splices the rendered values back into the
// document. The core itself never reads back what it wrote.
package replace
