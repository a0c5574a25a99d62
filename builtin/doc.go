// Package builtin holds the registries of constants and built-in
// functions the evaluator dispatches KEYWORD nodes through.
//
// Registries are keyed by the LaTeX control sequence including the
// backslash; arity is part of the registry. Every unary function except
// \floor demands a dimensionless argument - the evaluator enforces that
// rule, the registry only names the exception.
package builtin
