// Package builtin - constant and function registries.
package builtin

import (
	"math"

	"github.com/katalvlaran/unitex/value"
)

// Floor is the one unary built-in that accepts a dimensional argument and
// preserves its dimension.
const Floor = `\floor`

// constants maps control sequences to their numeric values.
var constants = map[string]float64{
	`\pi`: math.Pi,
	`\e`:  math.E,
}

// unary maps one-argument control sequences to their kernels.
var unary = map[string]func(float64) float64{
	`\sin`:   math.Sin,
	`\cos`:   math.Cos,
	`\tan`:   math.Tan,
	`\log`:   math.Log10,
	`\ln`:    math.Log,
	`\exp`:   math.Exp,
	`\sqrt`:  math.Sqrt,
	`\floor`: math.Floor,
}

// binary maps two-argument control sequences to their kernels.
var binary = map[string]func(float64, float64) float64{
	`\max`:  math.Max,
	`\min`:  math.Min,
	`\logb`: func(base, x float64) float64 { return math.Log(x) / math.Log(base) },
}

// Constant returns the registered constant as a dimensionless Number.
func Constant(name string) (value.Value, bool) {
	c, ok := constants[name]
	if !ok {
		return value.Value{}, false
	}
	return value.Num(c), true
}

// Unary returns the one-argument kernel for name.
func Unary(name string) (func(float64) float64, bool) {
	f, ok := unary[name]
	return f, ok
}

// Binary returns the two-argument kernel for name.
func Binary(name string) (func(float64, float64) float64, bool) {
	f, ok := binary[name]
	return f, ok
}

// Arity reports the registered argument count of a function keyword. The
// second result is false for constants and unknown names.
func Arity(name string) (int, bool) {
	if _, ok := unary[name]; ok {
		return 1, true
	}
	if _, ok := binary[name]; ok {
		return 2, true
	}
	return 0, false
}
