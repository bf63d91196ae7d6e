// Package evalend is a reference decision-tree consumer: it walks a
// compiled decisiontree.Tree against a Go value built from the
// conventions below, rather than emitting host-language source the way a
// real code-generating back-end would. It exists to make the compiler's
// correctness law testable end to end without a second language in the
// loop.
package evalend

// Null is the sentinel for the lattice's null literal. undefined is
// represented by a plain Go nil interface value; null needs a distinct,
// non-nil value so the two remain observably different, matching the
// source language's own null/undefined distinction.
type nullType struct{}

var Null any = nullType{}

// Object and Array are the conventions Eval expects for object/record and
// tuple/array values respectively: a string-keyed map for the former, a
// slice for the latter. Values of other primitive kinds are passed as
// plain bool, float64, string, or *big.Int.
type Object = map[string]any
type Array = []any
