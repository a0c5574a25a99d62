// Package eval - YAML form of the evaluation policy.
package eval

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadOptions reads an Options document from r, starting from
// DefaultOptions so absent keys keep their defaults. An empty document
// yields the defaults. The result is validated before being returned.
//
// Document shape:
//
//	max_iterations: 100000
//	range_step: 0.1
//	product_of_range: false
func LoadOptions(r io.Reader) (Options, error) {
	o := DefaultOptions()

	if err := yaml.NewDecoder(r).Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("eval: decoding options: %w", err)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}
