// Package dims implements the seven-axis SI dimension vector attached to
// every numeric value in the core, the registry of base units, and the
// LaTeX rendering of unit tails.
//
// A Dim is a fixed array of seven signed exponents over the SI base units
// in the order m, kg, s, A, K, mol, cd. Arithmetic on dimensions is plain
// elementwise addition and subtraction; equality is elementwise.
package dims
