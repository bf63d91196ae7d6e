package decisiontree

// pick selects one candidate from a nonempty slice. The compiler's
// semantics do not depend on which one; only compile time and the emitted
// tree's shape do. This implementation is deterministic rather than
// randomized: it picks the first candidate in column order, which biases
// the tree toward testing earlier occurrences first and keeps compilation
// reproducible across runs without a seed to thread through.
func pick(cs []Candidate) Candidate {
	return cs[0]
}
