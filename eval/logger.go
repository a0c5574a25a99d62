// Package eval - logging convenience for hosts.
package eval

import (
	"os"

	"github.com/rs/zerolog"
)

// ConsoleLogger returns a human-readable stderr logger suitable for
// WithLogger during interactive runs. Production hosts usually pass their
// own structured logger instead.
func ConsoleLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
