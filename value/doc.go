// Package value implements the runtime value domain of the core: a tagged
// sum of exactly three variants.
//
//   - Number   - a float64 with a seven-axis dimension vector
//   - Matrix   - a rectangular (>=1x1) grid whose cells are Values
//   - Function - parameter names, a by-value captured scope and a body AST
//
// Every operation is a package-level function taking the operator's source
// coordinate, so a failed precondition surfaces as a *diag.Error at the
// right place. Operations never mutate their operands; the single
// deliberate exception is SetCell, which writes one cell of a matrix bound
// in a scope table.
//
// Dimensional rules follow the SI discipline: addition and subtraction
// demand equal dimensions; multiplication and division add and subtract
// exponents; powers demand a dimensionless exponent and, on a dimensional
// base, an integral one. Equality and ordering compare magnitudes only and
// do not check dimensions; the semantic pass enforces that rule.
package value
