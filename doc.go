// Package unitex is the evaluation core of a small expression language
// embedded in LaTeX-like documents: assignments, function definitions,
// matrices, control constructs, plots and placeholder holes, all checked
// against a seven-axis SI unit discipline.
//
// What unitex does:
//
//   - Validates: a structural semantic pass rejects programs whose
//     additive and comparative operators mix dimensions, whose exponents
//     or loop bounds carry units, or whose arithmetic touches functions.
//   - Evaluates: a tree-walking interpreter produces Number, Matrix and
//     Function values under nested lexical scopes, honouring the unit
//     rules at runtime.
//   - Reports: computed placeholder values and plotted point matrices are
//     recorded in a replacement registry a rendering collaborator splices
//     back into the document.
//
// Everything is organised as one package per concern:
//
//	token/    - tags, coordinates, the lexer token record
//	ast/      - tree nodes, deep copies, structural probes
//	diag/     - positioned errors with sentinel kinds
//	dims/     - the 7-axis dimension vector and unit registry
//	value/    - the Number/Matrix/Function value algebra
//	scope/    - two-tier name resolution
//	replace/  - the Coordinate-keyed replacement registry
//	builtin/  - constants and built-in function registries
//	analyzer/ - the pre-execution dimensional pass
//	eval/     - the interpreter and its policy options
//
// Lexing, parsing and document splicing live in external collaborators;
// unitex consumes an already-built AST and hands results back through
// values and the registry.
package unitex
