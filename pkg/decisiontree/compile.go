package decisiontree

import (
	"fmt"

	"matchc/pkg/lattice"
	"matchc/pkg/matchtable"
)

// Compile wraps the per-case top-level patterns into a one-column match
// table, normalizes it once (remove(expand(...))) and compiles it into a
// decision tree whose leaves are Fail or Success(originalCaseIndex).
func Compile(input lattice.Union, patterns []lattice.Union, caseIndices []int) Tree {
	m := matchtable.NewEntryTable(input, patterns, caseIndices)
	m = matchtable.Remove(matchtable.Expand(m))
	return compile(m)
}

// compile is the recursive reducer described by the algorithm: resolve
// immediately on fail or on a sole zero-width row; otherwise choose a
// check, possibly skip straight to its success branch, or split the table
// into success and fail branches and recurse on both.
func compile(m matchtable.Table) Tree {
	if m.IsFail() {
		return Fail()
	}
	if idx, ok := m.SuccessCaseIndex(); ok {
		return Success(idx)
	}

	cs := candidateChecks(m)
	if len(cs) == 0 {
		panic("decisiontree: compile reached a non-fail, non-success table with no candidate checks")
	}

	var skippable []Candidate
	for _, c := range cs {
		if isSkippable(m, c) {
			skippable = append(skippable, c)
		}
	}
	if len(skippable) > 0 {
		c := pick(skippable)
		succ, ok := matchtable.SpecializeSuccess(m, c.Type, c.ColumnIndex)
		if !ok {
			panic(fmt.Sprintf("decisiontree: specializeSuccess undefined for skippable candidate %v at column %d", c.Type, c.ColumnIndex))
		}
		return compile(matchtable.Remove(matchtable.Expand(succ)))
	}

	c := pick(cs)
	succ, ok := matchtable.SpecializeSuccess(m, c.Type, c.ColumnIndex)
	if !ok {
		panic(fmt.Sprintf("decisiontree: specializeSuccess undefined for candidate %v at column %d", c.Type, c.ColumnIndex))
	}
	fail, ok := matchtable.SpecializeFail(m, c.Type, c.ColumnIndex)
	if !ok {
		panic(fmt.Sprintf("decisiontree: specializeFail undefined for candidate %v at column %d", c.Type, c.ColumnIndex))
	}

	s := compile(matchtable.Remove(matchtable.Expand(succ)))
	f := compile(fail)

	return Check(c.Type, m.Occurrences[c.ColumnIndex], s, f)
}
