package matchtable

import "matchc/pkg/lattice"

// SpecializeSuccess restricts m to the case where the value at column j's
// occurrence has outer constructor T. Every row must be single-constructor
// at column j (in fact, all of m is required single-constructor here since
// expand is always run first); the second return is false, a recoverable
// precondition violation, when that does not hold or j is out of range.
func SpecializeSuccess(m Table, T lattice.Type, j int) (Table, bool) {
	if j < 0 || j >= m.ColumnCount() {
		return Table{}, false
	}
	if !isSingleConstructorTable(m) {
		return Table{}, false
	}

	occ := m.Occurrences[j]
	argsT := lattice.GetArguments(T)
	outOccurrences := make([]lattice.Occurrence, 0, m.ColumnCount()-1+len(argsT))
	outOccurrences = append(outOccurrences, m.Occurrences[:j]...)
	for _, arg := range argsT {
		outOccurrences = append(outOccurrences, occ.Extend(arg.Accessor))
	}
	outOccurrences = append(outOccurrences, m.Occurrences[j+1:]...)

	narrowedInput := lattice.ReplaceAt(m.Input, occ, lattice.Union{lattice.MakeArgumentsUnknown(T)})
	newInput := lattice.UnionIntersect(m.Input, narrowedInput)

	var outRows [][]lattice.Union
	var outCases []int
	for i, row := range m.PatternRows {
		p := row[j][0]
		unkT := lattice.MakeArgumentsUnknown(T)
		unkP := lattice.MakeArgumentsUnknown(p)
		// A row survives when its outer constructor is comparable with T:
		// narrower patterns, and more general ones (such as an unknown
		// catch-all) that a value of constructor T can still match.
		if !lattice.IsSubtype(unkP, unkT) && !lattice.IsSubtype(unkT, unkP) {
			continue
		}
		newRow := make([]lattice.Union, 0, len(outOccurrences))
		newRow = append(newRow, row[:j]...)
		for _, arg := range argsT {
			child, ok := lattice.AccessUnion(p, arg.Accessor)
			if !ok {
				newRow = nil
				break
			}
			newRow = append(newRow, child)
		}
		if newRow == nil {
			continue
		}
		newRow = append(newRow, row[j+1:]...)
		outRows = append(outRows, newRow)
		outCases = append(outCases, m.CaseIndices[i])
	}

	return Table{
		Input:       newInput,
		Occurrences: outOccurrences,
		CaseIndices: outCases,
		PatternRows: outRows,
	}, true
}

// SpecializeFail restricts m to rows that could still match even if the
// constructor at column j is not T. Columns and occurrences are untouched;
// a row survives iff its pattern at column j has a different outer
// constructor than T.
func SpecializeFail(m Table, T lattice.Type, j int) (Table, bool) {
	if j < 0 || j >= m.ColumnCount() {
		return Table{}, false
	}
	if !isSingleConstructorTable(m) {
		return Table{}, false
	}

	var outRows [][]lattice.Union
	var outCases []int
	for i, row := range m.PatternRows {
		p := row[j][0]
		if lattice.EqualConstructor(p, T) {
			continue
		}
		outRows = append(outRows, cloneRow(row))
		outCases = append(outCases, m.CaseIndices[i])
	}

	return Table{
		Input:       m.Input,
		Occurrences: m.Occurrences,
		CaseIndices: outCases,
		PatternRows: outRows,
	}, true
}
