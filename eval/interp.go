// Package eval - the interpreter facade.
package eval

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/unitex/analyzer"
	"github.com/katalvlaran/unitex/ast"
	"github.com/katalvlaran/unitex/replace"
	"github.com/katalvlaran/unitex/value"
)

// Interp evaluates program units against a persistent global scope and a
// replacement registry. It is not safe for concurrent use; the language
// is single-threaded by design.
type Interp struct {
	opts    Options
	globals value.NameTable
	reps    *replace.Registry
	log     zerolog.Logger
}

// New builds an interpreter with a fresh global table and registry.
// Invalid options return ErrBadOption.
func New(opts ...Option) (*Interp, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &Interp{
		opts:    o,
		globals: make(value.NameTable),
		reps:    replace.NewRegistry(),
		log:     o.Logger,
	}, nil
}

// Registry exposes the replacement registry; it doubles as the
// ast.Recorder the host passes to ast.New while building the tree.
func (in *Interp) Registry() *replace.Registry { return in.reps }

// Replacements returns the registry records in insertion order, ready for
// the document post-processor.
func (in *Interp) Replacements() []replace.Entry { return in.reps.All() }

// Lookup reads a global binding; used by hosts and tests to observe the
// evaluation outcome.
func (in *Interp) Lookup(name string) (value.Value, bool) {
	v, ok := in.globals[name]
	return v, ok
}

// Analyze runs the dimensional semantic pass over root. Evaluating a tree
// the pass rejected is the host's mistake; Eval re-checks everything it
// needs at runtime anyway.
func (in *Interp) Analyze(root *ast.Node) error {
	if err := analyzer.Analyze(root); err != nil {
		in.log.Debug().Err(err).Msg("semantic pass rejected the program")
		return err
	}
	return nil
}

// Eval executes root at the top level (no local scope) and returns the
// value of the last statement.
func (in *Interp) Eval(root *ast.Node) (value.Value, error) {
	v, err := in.eval(root, nil)
	if err != nil {
		in.log.Debug().Err(err).Msg("evaluation aborted")
		return value.Value{}, err
	}
	in.log.Debug().Stringer("result", v.Kind()).Msg("unit evaluated")
	return v, nil
}
