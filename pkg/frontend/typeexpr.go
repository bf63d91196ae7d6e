// Package frontend lowers a programmatic type description into the
// structural type lattice the match compiler operates on. It is the one
// collaborator a host language's type-intake layer is expected to
// implement against; this package provides a reference implementation
// over a TypeExpr value tree instead of parsing any concrete syntax.
package frontend

import "matchc/pkg/lattice"

// ExprKind tags the outer shape of a TypeExpr.
type ExprKind int

const (
	ExprUnknown ExprKind = iota
	ExprLiteral
	ExprPrimitive
	ExprTuple
	ExprArray
	ExprObject
	ExprRecord
	ExprUnion
	ExprRecursive
	ExprIntersection
)

// FieldExpr is one field of an ExprObject description.
type FieldExpr struct {
	Name     string
	Value    TypeExpr
	Optional bool
}

// TypeExpr is the host front-end's description of a type, before lowering
// into the lattice. ExprUnion holds Members; ExprTuple holds Elements;
// ExprArray and ExprRecord hold Element/Value respectively; ExprObject
// holds Fields. ExprRecursive and ExprIntersection are represented so a
// caller can name a type the lattice cannot express and obtain a
// diagnostic for it, rather than the host program never calling Lower at
// all on types that aren't known to be unsupported ahead of time.
type TypeExpr struct {
	Kind      ExprKind
	Literal   lattice.Literal
	Primitive lattice.Primitive
	Elements  []TypeExpr
	Element   *TypeExpr
	Fields    []FieldExpr
	Value     *TypeExpr
	Members   []TypeExpr
	Name      string // diagnostic label for Recursive/Intersection nodes
}
