package matchtable

import "matchc/pkg/lattice"

// Remove drops row i when some earlier row j < i has every cell a
// superunion of row i's corresponding cell, meaning row i's case is
// statically shadowed and can never fire.
func Remove(m Table) Table {
	var outRows [][]lattice.Union
	var outCases []int
	for i, row := range m.PatternRows {
		shadowed := false
		for j := 0; j < i; j++ {
			if rowShadows(m.PatternRows[j], row) {
				shadowed = true
				break
			}
		}
		if shadowed {
			continue
		}
		outRows = append(outRows, row)
		outCases = append(outCases, m.CaseIndices[i])
	}
	return Table{
		Input:       m.Input,
		Occurrences: m.Occurrences,
		CaseIndices: outCases,
		PatternRows: outRows,
	}
}

// rowShadows reports whether earlier's every cell is a superunion of
// later's corresponding cell, i.e. later[k] <: earlier[k] for all k.
func rowShadows(earlier, later []lattice.Union) bool {
	for k := range later {
		if !lattice.UnionSubtype(later[k], earlier[k]) {
			return false
		}
	}
	return true
}
