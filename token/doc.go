// Package token defines the lexical vocabulary shared by the front-end and
// the evaluation core: node/token tags, one-based source coordinates, and
// the token record handed over by the lexer.
//
// The core never tokenizes by itself; it consumes Token values produced by
// an external lexer and keys every diagnostic and every placeholder
// replacement by Coordinate.
package token
