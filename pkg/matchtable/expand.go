package matchtable

import "matchc/pkg/lattice"

// Expand replaces union patterns by a Cartesian explosion: every row is
// expanded into one row per combination of its cells' union members, each
// cell now a singleton union. The original case index is repeated across
// the expanded rows. The result contains only single-constructor rows.
func Expand(m Table) Table {
	var outRows [][]lattice.Union
	var outCases []int
	for i, row := range m.PatternRows {
		for _, combo := range cartesian(row) {
			outRows = append(outRows, combo)
			outCases = append(outCases, m.CaseIndices[i])
		}
	}
	return Table{
		Input:       m.Input,
		Occurrences: m.Occurrences,
		CaseIndices: outCases,
		PatternRows: outRows,
	}
}

// cartesian enumerates every combination obtained by picking one type from
// each cell of row, wrapping each pick as a singleton union.
func cartesian(row []lattice.Union) [][]lattice.Union {
	if len(row) == 0 {
		return [][]lattice.Union{{}}
	}
	rest := cartesian(row[1:])
	out := make([][]lattice.Union, 0, len(row[0])*len(rest))
	for _, t := range row[0] {
		for _, tail := range rest {
			combo := make([]lattice.Union, 0, len(row))
			combo = append(combo, lattice.Union{t})
			combo = append(combo, tail...)
			out = append(out, combo)
		}
	}
	return out
}
