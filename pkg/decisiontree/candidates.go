package decisiontree

import (
	"matchc/pkg/lattice"
	"matchc/pkg/matchtable"
)

// Candidate is a proposed check: the outer-shape type to test, made
// arguments-unknown, at a given column.
type Candidate struct {
	Type        lattice.Type
	ColumnIndex int
}

// candidateChecks extracts, for each column of m, the minima of that
// column's single-constructor patterns under the pattern-subtype order,
// and yields one candidate per minimum. m must already be single-
// constructor (expand+remove have run); candidateChecks is always called on
// such a table and is never empty on a table with at least one row and one
// column.
func candidateChecks(m matchtable.Table) []Candidate {
	var out []Candidate
	for j := 0; j < m.ColumnCount(); j++ {
		column := make([]lattice.Type, 0, m.RowCount())
		for _, row := range m.PatternRows {
			column = append(column, row[j][0])
		}
		for _, t := range lattice.Minima(column) {
			out = append(out, Candidate{Type: lattice.MakeArgumentsUnknown(t), ColumnIndex: j})
		}
	}
	return out
}

// isSkippable reports whether candidate c is already statically guaranteed
// under m.Input: substituting {c.Type} at the candidate's occurrence would
// not narrow the input any further.
func isSkippable(m matchtable.Table, c Candidate) bool {
	occ := m.Occurrences[c.ColumnIndex]
	narrowed := lattice.ReplaceAt(m.Input, occ, lattice.Union{c.Type})
	return lattice.UnionSubtype(m.Input, narrowed)
}
