// Package scope implements the two-tier name resolution policy of the
// core: a long-lived global table plus an optional per-activation local
// table.
//
// Lookup prefers the local table. Define is deliberately asymmetric:
// inside an activation a name goes local ONLY when no global of that name
// already exists - a pre-existing global always wins the assignment. This
// mirrors the source language exactly and is covered by tests; see the
// Define doc comment before relying on it.
package scope
