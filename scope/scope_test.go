package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitex/diag"
	"github.com/katalvlaran/unitex/scope"
	"github.com/katalvlaran/unitex/token"
	"github.com/katalvlaran/unitex/value"
)

var at = token.Coordinate{Line: 2, Column: 5}

// TestLookup_LocalWins resolves the local binding before the global one.
func TestLookup_LocalWins(t *testing.T) {
	global := value.NameTable{"x": value.Num(1)}
	local := value.NameTable{"x": value.Num(2)}

	v, err := scope.Lookup(global, local, "x", at)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.Float())

	v, err = scope.Lookup(global, nil, "x", at)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.Float())
}

// TestLookup_Undefined reports a name diagnostic with the coordinate.
func TestLookup_Undefined(t *testing.T) {
	_, err := scope.Lookup(value.NameTable{}, nil, "ghost", at)
	require.ErrorIs(t, err, diag.ErrName)

	var de *diag.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, at, de.Pos)
}

// TestDefine_GlobalShadowPolicy pins the surprising placement rule: a
// pre-existing global captures assignments made inside an activation.
func TestDefine_GlobalShadowPolicy(t *testing.T) {
	global := value.NameTable{"g": value.Num(1)}
	local := value.NameTable{}

	// Fresh name inside an activation goes local.
	scope.Define(global, local, "x", value.Num(10))
	assert.Contains(t, local, "x")
	assert.NotContains(t, global, "x")

	// A name already global is reassigned globally, not shadowed.
	scope.Define(global, local, "g", value.Num(99))
	assert.NotContains(t, local, "g")
	assert.Equal(t, 99.0, global["g"].Float())

	// Without a local table everything goes global.
	scope.Define(global, nil, "y", value.Num(3))
	assert.Equal(t, 3.0, global["y"].Float())
}

// TestDefine_CopiesValue verifies bindings never alias the source value.
func TestDefine_CopiesValue(t *testing.T) {
	m, err := value.NewMatrix([][]value.Value{{value.Num(1), value.Num(2)}}, at)
	require.NoError(t, err)

	global := value.NameTable{}
	scope.Define(global, nil, "M", m)

	require.NoError(t, value.SetCell(m, []int{0}, value.Num(42), at))
	assert.Equal(t, 1.0, global["M"].At(0, 0).Float(), "table binding must not alias the assigned value")
}

// TestResolve finds the owning table for in-place cell mutation.
func TestResolve(t *testing.T) {
	global := value.NameTable{"g": value.Num(1)}
	local := value.NameTable{"l": value.Num(2)}

	tbl, ok := scope.Resolve(global, local, "l")
	require.True(t, ok)
	assert.Contains(t, tbl, "l")

	tbl, ok = scope.Resolve(global, local, "g")
	require.True(t, ok)
	assert.Contains(t, tbl, "g")

	_, ok = scope.Resolve(global, local, "missing")
	assert.False(t, ok)
}

// TestSnapshot_DoesNotAlias pins by-value capture semantics.
func TestSnapshot_DoesNotAlias(t *testing.T) {
	global := value.NameTable{"a": value.Num(1)}

	snap := scope.Snapshot(global, nil)
	global["a"] = value.Num(2)
	assert.Equal(t, 1.0, snap["a"].Float(), "snapshot must be a copy, not a view")

	local := value.NameTable{"b": value.Num(5)}
	snap = scope.Snapshot(global, local)
	assert.Contains(t, snap, "b")
	assert.NotContains(t, snap, "a", "local snapshot covers only the local table")
}
