package diag_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitex/diag"
	"github.com/katalvlaran/unitex/token"
)

// TestNewf_RendersPosition pins the "line:column: message" shape.
func TestNewf_RendersPosition(t *testing.T) {
	err := diag.Newf(token.Coordinate{Line: 12, Column: 3}, diag.ErrUnit, "unit %q unknown", "km")
	assert.Equal(t, `12:3: unit "km" unknown`, err.Error())
}

// TestUnwrap_MatchesKind lets callers branch with errors.Is.
func TestUnwrap_MatchesKind(t *testing.T) {
	err := diag.Newf(token.Coordinate{Line: 1, Column: 1}, diag.ErrShape, "ragged matrix")

	assert.ErrorIs(t, err, diag.ErrShape)
	assert.NotErrorIs(t, err, diag.ErrUnit)

	var de *diag.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 1, de.Pos.Line)
}

// TestKinds_AreDistinct guards against sentinel aliasing.
func TestKinds_AreDistinct(t *testing.T) {
	kinds := []error{
		diag.ErrUnit, diag.ErrType, diag.ErrShape,
		diag.ErrName, diag.ErrDefinition, diag.ErrDomain,
	}
	for i, a := range kinds {
		for j, b := range kinds {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}
