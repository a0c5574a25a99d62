// Package diag - sentinel error kinds and the positioned error record.
package diag

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/unitex/token"
)

// Sentinel kinds for every diagnostic the core can raise. All diagnostics
// MUST be created through Newf so that errors.Is(err, Err...) matches.
var (
	// ErrUnit flags dimensional rule violations: unknown units, mismatched
	// dimensions under additive or comparative operators, dimensional loop
	// bounds or exponents.
	ErrUnit = errors.New("unitex: unit error")

	// ErrType flags a wrong value variant: functions in arithmetic,
	// matrices as divisors, non-numbers under ordering comparisons.
	ErrType = errors.New("unitex: type error")

	// ErrShape flags matrix shape violations: mismatched shapes, bad index
	// arity, out-of-range or negative indices, empty ranges.
	ErrShape = errors.New("unitex: shape error")

	// ErrName flags undefined identifiers, unknown keywords and wrong
	// argument counts.
	ErrName = errors.New("unitex: name error")

	// ErrDefinition flags malformed definitions: non-identifier function
	// parameters, duplicate parameters, unassignable left-hand sides.
	ErrDefinition = errors.New("unitex: definition error")

	// ErrDomain flags numeric domain violations, i.e. division by zero.
	ErrDomain = errors.New("unitex: domain error")
)

// Error is a diagnostic pinned to a source coordinate. It unwraps to its
// Kind sentinel.
type Error struct {
	Pos  token.Coordinate
	Kind error
	Msg  string
}

// Newf builds a positioned diagnostic of the given kind.
func Newf(pos token.Coordinate, kind error, format string, args ...any) *Error {
	return &Error{Pos: pos, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Error renders "line:column: message".
func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// Unwrap exposes the sentinel kind to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }
