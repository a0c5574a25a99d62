// Package eval implements the tree-walking evaluator of the core.
//
// An Interp owns the process-wide global name table, the replacement
// registry and the evaluation policy. Evaluation is single-threaded,
// strictly left-to-right and depth-first; the only side channels are the
// global table (assignments) and the registry (placeholder and graphic
// bindings).
//
// The evaluator re-checks operand kinds, shapes and indices at runtime,
// together with the dimension rules of addition, subtraction, powers and
// built-in functions, even where the semantic pass already rejected the
// program shape, because identifiers can carry any value at runtime.
// Comparisons compare magnitudes only; their dimension rule is enforced by
// the semantic pass alone.
//
// Policy knobs live in Options: an iteration cap for runaway loops (a
// safety valve outside the language contract), the default range step,
// and the PRODUCT loop semantics switch (see Options.ProductOfRange for
// the history of that quirk).
package eval
