// Package matchtable implements the rectangular table of pattern unions
// that the decision-tree compiler specializes, expands and prunes on its
// way from a case list to a decision tree.
package matchtable

import "matchc/pkg/lattice"

// Table is a rectangular grid of pattern unions, one column per occurrence
// into the scrutinee and one row per surviving case. Every Table value is
// immutable once constructed; every operation below returns a fresh Table
// and never mutates its receiver.
type Table struct {
	Input       lattice.Union
	Occurrences []lattice.Occurrence
	CaseIndices []int
	PatternRows [][]lattice.Union
}

// ColumnCount is the number of occurrences (and thus the width of every
// row).
func (m Table) ColumnCount() int { return len(m.Occurrences) }

// RowCount is the number of surviving cases.
func (m Table) RowCount() int { return len(m.PatternRows) }

// IsFail reports whether no rows remain: every value of the input type
// falls through to the fail leaf.
func (m Table) IsFail() bool { return len(m.PatternRows) == 0 }

// SuccessCaseIndex reports the case index of the table's sole row when the
// table has exactly one row of width zero (nothing left to test). The
// second return is false otherwise.
func (m Table) SuccessCaseIndex() (int, bool) {
	if len(m.PatternRows) != 1 || len(m.Occurrences) != 0 {
		return 0, false
	}
	return m.CaseIndices[0], true
}

// NewEntryTable wraps a list of per-case top-level patterns into the
// one-column table the decision-tree compiler's entry point normalizes and
// compiles. caseIndices[i] is the original case number of patterns[i]; a
// sentinel such as -1 is the front-end's convention for the default case.
func NewEntryTable(input lattice.Union, patterns []lattice.Union, caseIndices []int) Table {
	rows := make([][]lattice.Union, len(patterns))
	for i, p := range patterns {
		rows[i] = []lattice.Union{p}
	}
	idx := make([]int, len(caseIndices))
	copy(idx, caseIndices)
	return Table{
		Input:       input,
		Occurrences: []lattice.Occurrence{{}},
		CaseIndices: idx,
		PatternRows: rows,
	}
}

// isSingleConstructorRow reports whether every cell of row is a union of
// length exactly 1, the precondition specializeSuccess and specializeFail
// both require.
func isSingleConstructorRow(row []lattice.Union) bool {
	for _, u := range row {
		if len(u) != 1 {
			return false
		}
	}
	return true
}

// isSingleConstructorTable reports whether every row of m is single-
// constructor.
func isSingleConstructorTable(m Table) bool {
	for _, row := range m.PatternRows {
		if !isSingleConstructorRow(row) {
			return false
		}
	}
	return true
}

func cloneRow(row []lattice.Union) []lattice.Union {
	out := make([]lattice.Union, len(row))
	copy(out, row)
	return out
}
