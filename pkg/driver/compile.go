package driver

import (
	"fmt"

	"matchc/pkg/decisiontree"
	"matchc/pkg/diag"
	"matchc/pkg/frontend"
	"matchc/pkg/lattice"
)

// DefaultCaseIndex is the case index the compiled tree reports when the
// scrutinee matches none of a manifest's explicit cases. Callers dispatch
// it to the manifest's Default handler, if any.
const DefaultCaseIndex = -1

// CompilationResult is everything compiling a manifest produces: the
// decision tree a back-end walks at runtime, and the case labels it can
// report a match against (by index, with DefaultCaseIndex reserved for
// the implicit default).
type CompilationResult struct {
	Tree    decisiontree.Tree
	Input   lattice.Union
	Handler []string
}

// CompileManifest lowers a manifest's input type and every case pattern
// into the type lattice, then compiles the resulting pattern list into a
// decision tree. It always appends an implicit catch-all case at
// DefaultCaseIndex, so the tree returned never reaches an unreachable
// Fail leaf from a back-end's point of view: a value either matches an
// explicit case or the default.
func CompileManifest(m *Manifest) (*CompilationResult, diag.List, error) {
	var diags diag.List

	inputExpr, err := m.Input.ToTypeExpr()
	if err != nil {
		return nil, diags, fmt.Errorf("driver: input: %w", err)
	}
	inputDiags, input, ok := frontend.Lower(inputExpr)
	diags = append(diags, inputDiags...)
	if !ok {
		return nil, diags, fmt.Errorf("driver: input type could not be lowered")
	}

	patterns := make([]lattice.Union, 0, len(m.Cases)+1)
	caseIndices := make([]int, 0, len(m.Cases)+1)
	handlers := make([]string, len(m.Cases))

	for i, c := range m.Cases {
		patExpr, err := c.Pattern.ToTypeExpr()
		if err != nil {
			return nil, diags, fmt.Errorf("driver: cases[%d]: %w", i, err)
		}
		patDiags, pat, ok := frontend.Lower(patExpr)
		diags = append(diags, patDiags.WithPrefix(fmt.Sprintf("cases[%d]", i))...)
		if !ok {
			continue
		}
		patterns = append(patterns, pat)
		caseIndices = append(caseIndices, i)
		handlers[i] = c.Handler
	}

	if !diags.OK() {
		return nil, diags, fmt.Errorf("driver: manifest has unresolved type diagnostics")
	}

	patterns = append(patterns, lattice.U(lattice.Unk()))
	caseIndices = append(caseIndices, DefaultCaseIndex)

	tree := decisiontree.Compile(input, patterns, caseIndices)

	return &CompilationResult{
		Tree:    tree,
		Input:   input,
		Handler: handlers,
	}, diags, nil
}

// HandlerFor resolves a compiled case index to its manifest handler name,
// falling back to the manifest's default handler for DefaultCaseIndex.
func (m *Manifest) HandlerFor(caseIndex int) string {
	if caseIndex == DefaultCaseIndex {
		return m.Default
	}
	if caseIndex < 0 || caseIndex >= len(m.Cases) {
		return ""
	}
	return m.Cases[caseIndex].Handler
}
