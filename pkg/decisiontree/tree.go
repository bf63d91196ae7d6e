// Package decisiontree compiles a match table into a decision tree: a
// recursive reducer that picks a check, specializes the table along its
// success and fail branches, and recurses until every branch resolves to a
// fixed case or to no case at all.
package decisiontree

import "matchc/pkg/lattice"

// Kind tags the outer constructor of a Tree.
type Kind int

const (
	KindFail Kind = iota
	KindSuccess
	KindCheck
)

// Tree is the decision-tree sum: Fail, Success(caseIndex), or
// Check(type, occurrence, success, fail). Both branches of a Check are
// themselves Trees; Type always has its nested unions made unknown, since a
// Check is an outer-shape-only test.
type Tree struct {
	kind       Kind
	caseIndex  int
	checkType  lattice.Type
	occurrence lattice.Occurrence
	success    *Tree
	fail       *Tree
}

// Fail constructs the fail leaf.
func Fail() Tree { return Tree{kind: KindFail} }

// Success constructs a success leaf for the given case index.
func Success(caseIndex int) Tree { return Tree{kind: KindSuccess, caseIndex: caseIndex} }

// Check constructs a check node. checkType is stored as given; callers
// compiling a tree from scratch should pass lattice.MakeArgumentsUnknown(t)
// so the invariant that a Check never carries a nested structural
// commitment holds.
func Check(checkType lattice.Type, occurrence lattice.Occurrence, success, fail Tree) Tree {
	return Tree{
		kind:       KindCheck,
		checkType:  checkType,
		occurrence: occurrence,
		success:    &success,
		fail:       &fail,
	}
}

// Kind reports which constructor built this tree.
func (t Tree) Kind() Kind { return t.kind }

// CaseIndex is defined when Kind() == KindSuccess.
func (t Tree) CaseIndex() int { return t.caseIndex }

// CheckType, Occurrence, SuccessBranch and FailBranch are defined when
// Kind() == KindCheck.
func (t Tree) CheckType() lattice.Type        { return t.checkType }
func (t Tree) Occurrence() lattice.Occurrence { return t.occurrence }
func (t Tree) SuccessBranch() Tree            { return *t.success }
func (t Tree) FailBranch() Tree               { return *t.fail }
