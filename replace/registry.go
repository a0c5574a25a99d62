// Package replace - the Coordinate-keyed replacement registry.
package replace

import (
	"github.com/katalvlaran/unitex/token"
	"github.com/katalvlaran/unitex/value"
)

// Replacement records one document hole: the node kind that produced it,
// the byte span to overwrite, and the value to splice once evaluation
// fills it.
type Replacement struct {
	Tag   token.Tag
	Begin int
	End   int
	Value value.Value
}

// Entry pairs a Replacement with the coordinate it is keyed by.
type Entry struct {
	Coord token.Coordinate
	Rep   Replacement
}

// Registry maps source coordinates to Replacements, preserving insertion
// order for the post-processor.
type Registry struct {
	order []token.Coordinate
	reps  map[token.Coordinate]Replacement
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{reps: make(map[token.Coordinate]Replacement)}
}

// Skeleton allocates an empty record for pos spanning (begin, end).
// Re-registering a coordinate keeps its place in the order and resets the
// record. Skeleton implements ast.Recorder.
func (r *Registry) Skeleton(pos token.Coordinate, tag token.Tag, begin, end int) {
	if _, seen := r.reps[pos]; !seen {
		r.order = append(r.order, pos)
	}
	r.reps[pos] = Replacement{Tag: tag, Begin: begin, End: end}
}

// Bind stores a deep copy of v into the record at pos, creating the record
// when evaluation reaches a hole the builder never announced.
func (r *Registry) Bind(pos token.Coordinate, v value.Value) {
	rep, seen := r.reps[pos]
	if !seen {
		r.order = append(r.order, pos)
	}
	rep.Value = v.Clone()
	r.reps[pos] = rep
}

// Get returns the record at pos.
func (r *Registry) Get(pos token.Coordinate) (Replacement, bool) {
	rep, ok := r.reps[pos]
	return rep, ok
}

// Len reports the number of records.
func (r *Registry) Len() int { return len(r.reps) }

// All returns the records in insertion order. The slice is fresh; the
// contained values are shared and must be treated as read-only.
func (r *Registry) All() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, pos := range r.order {
		out = append(out, Entry{Coord: pos, Rep: r.reps[pos]})
	}
	return out
}
