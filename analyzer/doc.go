// Package analyzer implements the pre-execution semantic pass over the
// AST.
//
// The pass is purely structural: it never evaluates a value. It walks the
// tree depth-first and aborts at the first violation of the dimensional
// discipline - unknown units, dimensional loop bounds or exponents,
// mismatched dimension signatures under additive and comparative
// operators - or of the operand-kind rules (no functions in arithmetic,
// no matrices as divisors).
//
// The dimension signature of a subtree is an exponent vector accumulated
// from its DIMENSION leaves: +1 on the unit's axis in multiplicative
// position, sign-flipped beneath the right side of a division. Identifier
// references contribute nothing; the signature tracks literal unit
// spellings only.
package analyzer
