// Package scope - lookup, definition and snapshot over name tables.
package scope

import (
	"github.com/katalvlaran/unitex/diag"
	"github.com/katalvlaran/unitex/token"
	"github.com/katalvlaran/unitex/value"
)

// Lookup resolves name against the local table first, then the global
// one. A miss in both is a name diagnostic at pos.
func Lookup(global, local value.NameTable, name string, pos token.Coordinate) (value.Value, error) {
	if local != nil {
		if v, ok := local[name]; ok {
			return v, nil
		}
	}
	if v, ok := global[name]; ok {
		return v, nil
	}
	return value.Value{}, diag.Newf(pos, diag.ErrName, "undefined variable reference: %s", name)
}

// Define binds name to a deep copy of v.
//
// The binding goes into the local table only when a local table is active
// AND the global table does not already bind the name; otherwise it goes
// global. An existing global therefore shadows the activation: assigning
// to it from inside a function mutates the global, not a fresh local.
func Define(global, local value.NameTable, name string, v value.Value) {
	if local != nil {
		if _, exists := global[name]; !exists {
			local[name] = v.Clone()
			return
		}
	}
	global[name] = v.Clone()
}

// Resolve returns the table that currently binds name, preferring the
// local one. Cell assignment mutates through the returned table directly,
// bypassing the Define placement policy on purpose: the matrix already
// lives somewhere.
func Resolve(global, local value.NameTable, name string) (value.NameTable, bool) {
	if local != nil {
		if _, ok := local[name]; ok {
			return local, true
		}
	}
	if _, ok := global[name]; ok {
		return global, true
	}
	return nil, false
}

// Snapshot deep-copies the table currently in force: the local one inside
// an activation, the global one at the top level. Function definitions
// capture through it so the closure never aliases a live table.
func Snapshot(global, local value.NameTable) value.NameTable {
	if local != nil {
		return local.Clone()
	}
	return global.Clone()
}
