package decisiontree

import (
	"testing"

	"matchc/pkg/lattice"
)

// resolve walks tree against a single concrete type vt, testing each Check
// node by subtyping vt against the node's (arguments-unknown) check type.
// It exercises the tree's shape the same way a real back-end would walk it
// against a runtime value, without needing a runtime value representation.
func resolve(tree Tree, vt lattice.Type) (int, bool) {
	switch tree.Kind() {
	case KindFail:
		return 0, false
	case KindSuccess:
		return tree.CaseIndex(), true
	default:
		if lattice.IsSubtype(vt, tree.CheckType()) {
			return resolve(tree.SuccessBranch(), vt)
		}
		return resolve(tree.FailBranch(), vt)
	}
}

func TestCompileSingleCatchAllIsImmediateSuccess(t *testing.T) {
	tree := Compile(lattice.U(lattice.Unk()), []lattice.Union{lattice.U(lattice.Unk())}, []int{0})
	if tree.Kind() != KindSuccess || tree.CaseIndex() != 0 {
		t.Fatalf("expected an immediate success(0), got kind=%v", tree.Kind())
	}
}

func TestCompileEmptyPatternListIsFail(t *testing.T) {
	tree := Compile(lattice.U(lattice.Unk()), nil, nil)
	if tree.Kind() != KindFail {
		t.Fatalf("expected fail for an empty case list, got kind=%v", tree.Kind())
	}
}

func TestCompileDisjointPrimitivesDispatchesBothCases(t *testing.T) {
	patterns := []lattice.Union{
		lattice.U(lattice.PString()),
		lattice.U(lattice.PNumber()),
	}
	tree := Compile(lattice.U(lattice.PString(), lattice.PNumber()), patterns, []int{0, 1})
	if tree.Kind() != KindCheck {
		t.Fatalf("expected a check node for two disjoint primitive cases, got kind=%v", tree.Kind())
	}
	if idx, ok := resolve(tree, lattice.PString()); !ok || idx != 0 {
		t.Fatalf("expected a string value to resolve to case 0, got idx=%d ok=%v", idx, ok)
	}
	if idx, ok := resolve(tree, lattice.PNumber()); !ok || idx != 1 {
		t.Fatalf("expected a number value to resolve to case 1, got idx=%d ok=%v", idx, ok)
	}
	if _, ok := resolve(tree, lattice.Prim(lattice.PrimBoolean)); ok {
		t.Fatalf("expected a boolean value to fail against two unrelated primitive cases")
	}
}

func TestCompileSkipsRedundantCheckUnderRefinedInput(t *testing.T) {
	// When the static input is already narrowed to exactly string, a check
	// against string must be skippable: no Check node should be emitted.
	tree := Compile(lattice.U(lattice.PString()), []lattice.Union{lattice.U(lattice.PString())}, []int{0})
	if tree.Kind() != KindSuccess {
		t.Fatalf("expected the redundant string check to be skipped, got kind=%v", tree.Kind())
	}
}

func TestCompileShadowedLaterCaseNeverReached(t *testing.T) {
	patterns := []lattice.Union{
		lattice.U(lattice.PString()),
		lattice.U(lattice.LitStr("x")),
	}
	tree := Compile(lattice.U(lattice.PString()), patterns, []int{0, 1})
	if tree.Kind() != KindSuccess || tree.CaseIndex() != 0 {
		t.Fatalf("expected the shadowing case 0 to win outright, got kind=%v case=%d", tree.Kind(), tree.CaseIndex())
	}
}

func TestCompileDefaultSentinelCaseIndexSurvives(t *testing.T) {
	patterns := []lattice.Union{
		lattice.U(lattice.PString()),
		lattice.U(lattice.Unk()),
	}
	tree := Compile(lattice.U(lattice.PString(), lattice.PNumber()), patterns, []int{0, -1})
	if tree.Kind() != KindCheck {
		t.Fatalf("expected a check splitting string from the default, got kind=%v", tree.Kind())
	}
	if idx, ok := resolve(tree, lattice.PNumber()); !ok || idx != -1 {
		t.Fatalf("expected a number value to fall through to the default sentinel -1, got idx=%d ok=%v", idx, ok)
	}
}
