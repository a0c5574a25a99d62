// Package diag defines the diagnostic error model of the evaluation core.
//
// Every failure the analyzer or evaluator reports is a *Error carrying a
// one-based source Coordinate, a human-readable message, and one of six
// sentinel kinds. Callers branch on the kind with errors.Is and render the
// position with Error().
package diag
